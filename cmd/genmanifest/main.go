// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Command genmanifest writes the manifest.yaml of a PEP bundle directory.
// It runs at packaging time through go generate in internal/peps.
package main

import (
	"fmt"
	"os"
	"time"

	"opep/internal/peps"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	bundleDir    string
	checkOnly    bool
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

var rootCmd = &cobra.Command{
	Use:   "genmanifest",
	Short: "Generate the manifest of a PEP bundle directory",
	Long: `Scans a bundle directory for pep-NNNN.md files and writes manifest.yaml
listing every document with its number and title.

With --check the existing manifest is compared against the directory instead,
and the command fails if it is stale.`,
	Example:       "  genmanifest --dir internal/peps/data\n  genmanifest --dir ~/my-peps --check",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(afero.NewBasePathFs(afero.NewOsFs(), bundleDir))
	},
}

func run(fsys afero.Fs) error {
	var s *spinner.Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Color("cyan")
		s.Suffix = fmt.Sprintf(" Scanning %s...", bundleDir)
		s.Start()
	}
	built, err := peps.BuildManifest(fsys)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	if checkOnly {
		existing, err := peps.LoadManifest(fsys)
		if err != nil {
			return err
		}
		if !sameEntries(existing.Entries, built.Entries) {
			return fmt.Errorf("%s in %s is stale: %d documents listed, %d on disk", peps.ManifestFile, bundleDir, len(existing.Entries), len(built.Entries))
		}
		successColor.Printf("%s is up to date (%d documents)\n", peps.ManifestFile, len(built.Entries))
		return nil
	}

	if err := peps.WriteManifest(fsys, built); err != nil {
		return err
	}
	successColor.Printf("Wrote %s with %d documents\n", peps.ManifestFile, len(built.Entries))
	return nil
}

func sameEntries(a, b []peps.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func init() {
	rootCmd.Flags().StringVar(&bundleDir, "dir", ".", "bundle directory containing pep-NNNN.md files")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "verify the manifest instead of writing it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
