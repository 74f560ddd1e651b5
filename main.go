// ABOUTME: Entry point for song-catalog application
// ABOUTME: Defines the cobra commands and maps run errors to exit codes

// Package main provides the entry point for song-catalog, an interactive
// organizer that groups audio files into songs, editions and file variants.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"song-catalog/catalog"
	"song-catalog/config"
	"song-catalog/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Printf("Interrupted: %v", err)
		case errors.Is(err, tui.ErrAborted):
			log.Printf("Aborted: %v", err)
		case errors.Is(err, catalog.ErrDuplicateVariant):
			log.Printf("Manual intervention needed: %v", err)
		default:
			log.Printf("Error: %v", err)
		}

		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	opts := RunOptions{Threshold: -1}

	rootCmd := &cobra.Command{
		Use:   "song-catalog [flags] [directory]",
		Short: "Group audio files into songs, editions and file variants",
		Long: `Scans a directory of files named "Key - Artists - Title (Version) [Notes].ext",
groups them into songs, editions and file variants, and renames files so every
variant of an edition carries the same name. Ambiguous matches are resolved
interactively. Without a directory the user's music folder is scanned.`,
		Example:       "  song-catalog --playlist all.m3u8 ~/Music/Library",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = xdg.UserDirs.Music
			if len(args) == 1 {
				opts.Dir = args[0]
			}

			if !cmd.Flags().Changed("threshold") {
				opts.Threshold = -1
			}

			return RunCLI(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ./song-catalog.toml or $XDG_CONFIG_HOME/song-catalog/config.toml)")
	flags.BoolVar(&opts.DebugLog, "debug", false, "enable debug logging to "+debugLogFile)
	flags.BoolVar(&opts.DryRun, "dry-run", false, "resolve matches without renaming files")
	flags.BoolVar(&opts.Watch, "watch", false, "keep adding new files after the scan until interrupted")
	flags.StringVar(&opts.PlaylistPath, "playlist", "", "write an M3U8 playlist with one file per edition")
	flags.BoolVar(&opts.Audit, "audit", false, "compare tagged keys with filename keys after the scan")
	flags.IntVar(&opts.Threshold, "threshold", 0, "near match threshold 0-100 (overrides config)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newConfigCmd() *cobra.Command {
	var (
		path          string
		writeDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the config file path, or write the defaults to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.GetConfigPath()
			}

			out := cmd.OutOrStdout()

			if !writeDefaults {
				fmt.Fprintln(out, path)
				return nil
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file %s already exists", path)
			}

			if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
				return err
			}

			fmt.Fprintf(out, "Wrote default config to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "config file path")
	cmd.Flags().BoolVar(&writeDefaults, "init", false, "write the default configuration")

	return cmd
}
