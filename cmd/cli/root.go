// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"opep/internal/config"
	"opep/internal/logger"
	"opep/internal/pager"
	"opep/internal/peps"
	"opep/internal/render"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg             config.Config
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)

	// Flags overriding the config file.
	pagerFlag   string
	styleFlag   string
	widthFlag   int
	plainFlag   bool
	pepsDirFlag string
	verboseFlag bool

	// pagerEnv is replaced in tests.
	pagerEnv = pager.OSEnv
)

const sampleNote = `The bundled PEPs are an abridged sample (see 'opep list'). For the full
set, point --peps-dir (or the peps_dir setting) at a directory of
pep-NNNN.md files and generate its manifest with genmanifest --dir DIR.`

var rootCmd = &cobra.Command{
	Use:   "opep NUMBER",
	Short: "Open PEPs on your terminal",
	Long: `Renders a Python Enhancement Proposal with terminal formatting and shows it
in a pager.

NUMBER is the PEP number (e.g. 8) or 'random' for a random bundled PEP.
The pager is taken from --pager, the config file, $PAGER, or less/more,
in that order. Use --pager builtin for the built-in pager.

` + sampleNote,
	Example:           "  opep 8\n  opep random\n  opep 20 --style light --pager builtin",
	Args:              cobra.MatchAll(cobra.ExactArgs(1), validateNumberArg),
	ValidArgsFunction: pepCompletionFunc,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		if err := logger.InitLogger(logger.Options{ToStderr: verboseFlag, Level: cfg.LogLevel}); err != nil {
			errorColor.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid from here on; runtime failures don't need the usage text.
		cmd.SilenceUsage = true
		return viewPEP(cmd.Context(), args[0])
	},
}

// validateNumberArg rejects anything but an integer or "random" before any file is touched.
func validateNumberArg(cmd *cobra.Command, args []string) error {
	_, err := peps.ValidateNumber(args[0])
	return err
}

// viewPEP runs the whole pipeline for one identifier: resolve, read, render, page.
func viewPEP(ctx context.Context, number string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	doc, err := store.Load(number)
	if err != nil {
		return err
	}
	logger.Info("document loaded", "number", doc.Number, "path", doc.Path, "bytes", len(doc.Content))

	renderer, err := render.New(render.Options{
		Style: firstNonEmpty(styleFlag, cfg.Style),
		Width: firstPositive(widthFlag, cfg.Width),
		Plain: plainFlag,
	})
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(doc.Content)
	if err != nil {
		return err
	}

	pg, err := pager.Select(pager.Options{
		Command: firstNonEmpty(pagerFlag, cfg.Pager),
		Title:   documentTitle(store, doc),
	}, pagerEnv())
	if err != nil {
		return err
	}
	return pg.Page(ctx, string(rendered))
}

// usingBundled reports whether openStore falls back to the bundled PEPs.
func usingBundled() bool {
	return firstNonEmpty(pepsDirFlag, cfg.PepsDir) == ""
}

// openStore returns the store named by --peps-dir or the config, or the bundled one.
func openStore() (*peps.Store, error) {
	dir := firstNonEmpty(pepsDirFlag, cfg.PepsDir)
	if dir == "" {
		return peps.Bundled()
	}
	resolved, err := config.ResolvePath(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("using bundle directory", "dir", resolved)
	return peps.OpenDir(resolved)
}

func documentTitle(store *peps.Store, doc peps.Document) string {
	n, err := strconv.Atoi(doc.Number)
	if err != nil {
		return "PEP " + doc.Number
	}
	title := fmt.Sprintf("PEP %d", n)
	if entry, ok := store.Manifest().Lookup(n); ok && entry.Title != "" {
		title += " -- " + entry.Title
	}
	return title
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func RunCLI() {
	// Only SIGTERM cancels: ^C inside an external pager is the pager's to handle.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&pagerFlag, "pager", "", `pager command line, or "builtin"`)
	flags.StringVar(&styleFlag, "style", "", "rendering style (auto, dark, light, dracula, ...)")
	flags.IntVar(&widthFlag, "width", 0, "word-wrap width (default: terminal width)")
	flags.BoolVar(&plainFlag, "plain", false, "render without colors or other styling")
	flags.StringVar(&pepsDirFlag, "peps-dir", "", "directory of pep-NNNN.md files with a manifest.yaml, instead of the bundled PEPs")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "also write logs to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
