// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strconv"
	"strings"

	"opep/internal/config"
	"opep/internal/peps"

	"github.com/spf13/cobra"
)

// completionStore opens the store for completion. Flags are already parsed,
// but PersistentPreRunE does not run for completion requests, so the config
// is loaded here and its errors are ignored.
func completionStore() (*peps.Store, error) {
	if pepsDirFlag == "" {
		if loaded, err := config.LoadConfig(); err == nil {
			cfg = loaded
		}
	}
	return openStore()
}

// pepCompletionFunc provides dynamic completion for PEP numbers, with titles
// as descriptions, plus "random".
func pepCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var suggestions []string
	if strings.HasPrefix(peps.RandomToken, toComplete) {
		suggestions = append(suggestions, peps.RandomToken+"\tA random bundled PEP")
	}

	store, err := completionStore()
	if err != nil {
		// Ignore errors during completion; "random" is still worth offering.
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}

	for _, e := range store.Manifest().Entries {
		number := strconv.Itoa(e.Number)
		if !strings.HasPrefix(number, toComplete) {
			continue
		}
		if e.Title != "" {
			number += "\t" + e.Title
		}
		suggestions = append(suggestions, number)
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
