// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available PEPs (alias: ls)",
	Long:    "Lists the PEPs that can be opened, with their titles.\n\n" + sampleNote,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		store, err := openStore()
		if err != nil {
			return err
		}

		entries := store.Manifest().Entries
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No PEPs found.")
			return nil
		}
		for _, e := range entries {
			title := e.Title
			if title == "" {
				title = dimColor.Sprint("(untitled)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", identifierColor.Sprintf("PEP %4d", e.Number), title)
		}
		if usingBundled() {
			dimColor.Fprintf(cmd.ErrOrStderr(), "\n%d bundled PEPs, an abridged sample. Use --peps-dir for the full set.\n", len(entries))
		}
		return nil
	},
}
