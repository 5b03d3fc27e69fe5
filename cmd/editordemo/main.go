// Command editordemo is a small CLI wrapping the bubbletea adapter: it
// resolves flags and a TOML config file into a core.Mode, opens a
// file in the terminal editor, and writes the edited buffer back on
// exit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/embedx/lineeditor/cmd/editordemo/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:     "editordemo [file]",
		Short:   "A terminal line editor",
		Long:    "editordemo opens a file in a modal-free terminal line editor and saves it back on exit.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			return app.Run(opts)
		},
	}

	root.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a TOML config file")
	root.Flags().IntVar(&opts.Spaces, "spaces", 0, "soft-tab width (overrides config)")
	root.Flags().IntVar(&opts.Rows, "rows", 0, "viewport row count (overrides config)")
	root.Flags().StringVar(&opts.LogPath, "log-file", "", "write structured logs to this file instead of stderr")
	root.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug-level logging")

	return root
}

// version is overridden at build time via -ldflags.
var version = "dev"
