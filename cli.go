// ABOUTME: CLI run of a catalog scan over one directory
// ABOUTME: Wires config, terminal prompts, tag hints, watch mode, audit and playlist export

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"song-catalog/audiotag"
	"song-catalog/catalog"
	"song-catalog/config"
	"song-catalog/playlist"
	"song-catalog/preview"
	"song-catalog/tui"
)

// RunCLI scans opts.Dir and resolves every file into the catalog
func RunCLI(ctx context.Context, opts RunOptions) error {
	if opts.DebugLog {
		if err := SetupDebugLog(debugLogFile); err != nil {
			return err
		}
	}

	cfg, err := loadRunConfig(opts)
	if err != nil {
		return err
	}

	debugf("[CLI] config: %+v", cfg)

	entries, err := ListAudioFiles(opts.Dir, cfg.IsAudio)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d audio files in %s\n", len(entries), opts.Dir)

	if opts.DryRun {
		fmt.Println(color.YellowString("DRY RUN MODE - No files will be renamed"))
	}

	prompter := tui.New(tui.Options{
		Player: preview.New(cfg.PreviewCommand),
		Logger: debugLogger{},
	})

	builder := catalog.NewBuilder(catalog.Options{
		Dir:                  opts.Dir,
		Matcher:              cfg.Matcher(),
		AutoAcceptSingleSong: cfg.AutoAcceptSingleSongMatch,
		PromptNewEdition:     cfg.PromptNewEdition,
		DryRun:               opts.DryRun,
		KeyHint:              audiotag.Hint,
		Logf:                 debugf,
	}, prompter)

	collection, err := builder.Analyse(ctx, entries)
	if err != nil {
		return err
	}

	if opts.Watch {
		fmt.Printf("\nWatching %s for new files (press Ctrl+C to stop)...\n", opts.Dir)

		if err := Watch(ctx, opts.Dir, cfg.IsAudio, builder.Add); err != nil {
			return err
		}

		// Ctrl+C ends watching; the summary, audit and playlist still run
		ctx = context.WithoutCancel(ctx)
	}

	printSummary(os.Stdout, collection)

	if opts.Audit {
		findings, err := AuditTags(ctx, collection, cfg.AuditWorkers, audiotag.ReadKey)
		if err != nil {
			return err
		}

		printAudit(os.Stdout, findings)
	}

	if opts.PlaylistPath != "" {
		if opts.DryRun {
			fmt.Println("\n--dry-run mode: playlist not written")
			return nil
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("playlist not written: %w", err)
		}

		items := playlist.Entries(collection, cfg.PreferredExtensions, opts.PlaylistPath)

		fmt.Printf("\nWriting %d entries to: %s\n", len(items), opts.PlaylistPath)

		if err := playlist.Write(opts.PlaylistPath, items); err != nil {
			return fmt.Errorf("failed to write playlist: %w", err)
		}
	}

	fmt.Println("Done!")

	return nil
}

// loadRunConfig reads the config file and applies flag overrides
func loadRunConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.GetConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if opts.Threshold >= 0 {
		cfg.NearThreshold = opts.Threshold
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}

// printSummary reports catalog size and songs that exist in several editions
func printSummary(w io.Writer, c *catalog.Collection) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	st := c.Stats()

	fmt.Fprintf(w, "\n%s %d songs, %d editions, %d files\n", cyan("Catalog:"), st.Songs, st.Editions, st.Variants)

	var multi []*catalog.Song

	for _, s := range c.Songs {
		if len(s.Editions) > 1 {
			multi = append(multi, s)
		}
	}

	if len(multi) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", cyan("Songs with several editions:"))

	for _, s := range multi {
		fmt.Fprintf(w, "  %s\n", s.CanonicalName())

		for _, e := range s.Editions {
			exts := make([]string, 0, len(e.Variants))
			for _, v := range e.Variants {
				exts = append(exts, v.Extension)
			}

			fmt.Fprintf(w, "    - %s: %s\n", e.Label(), strings.Join(exts, " "))
		}
	}
}

// printAudit lists files whose tag key disagrees with their filename
func printAudit(w io.Writer, findings []auditFinding) {
	if len(findings) == 0 {
		fmt.Fprintf(w, "\n%s\n", color.GreenString("Tag audit: all tagged keys match their filenames"))
		return
	}

	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", yellow(fmt.Sprintf("Tag audit: %d files disagree with their tags", len(findings))))

	for _, f := range findings {
		fmt.Fprintf(w, "  %s: filename %s, tag %s\n", f.Path, f.NameKey, f.TagKey)
	}
}
