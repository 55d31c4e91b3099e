package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ikirmitz/mixcloud-backup/internal/download"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var (
		playlists bool
		toMP3     bool
		noEmbed   bool
		writeLRC  bool
		noLRC     bool
		limit     int
		since     string
		dryRun    bool
		output    string
		archive   string
	)

	cmd := &cobra.Command{
		Use:   "download <username>",
		Short: "Download an account's cloudcasts with tracklists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			ui := ctx.ui()

			if toMP3 {
				settings.ConvertToMP3 = true
			}
			if noEmbed {
				settings.EmbedLyrics = false
			}
			if writeLRC {
				settings.WriteLRC = true
			}
			if noLRC {
				settings.WriteLRC = false
			}
			if output != "" {
				settings.OutputPath = output
			}
			if archive != "" {
				settings.ArchivePath = archive
			}

			opts := download.RunOptions{
				IncludePlaylists: playlists,
				Limit:            limit,
				DryRun:           dryRun,
			}
			if since != "" {
				day, err := time.Parse("2006-01-02", since)
				if err != nil {
					return fmt.Errorf("invalid --since date %q (want YYYY-MM-DD)", since)
				}
				opts.Since = day
			}

			manager := download.NewManager(settings, func(event download.ProgressEvent) {
				switch event.Level {
				case download.LevelError:
					ui.Error("%s", event.Message)
				case download.LevelWarning:
					ui.Warn("%s", event.Message)
				case download.LevelSuccess:
					ui.Success("%s", event.Message)
				case download.LevelVerbose:
					ui.Verbose("%s", event.Message)
				default:
					ui.Info("%s", event.Message)
				}
			})

			username := args[0]
			ui.Info("Backing up %s", username)

			if err := manager.Initialize(cmd.Context(), username, opts); err != nil {
				return err
			}
			if err := manager.StartDownloads(cmd.Context(), opts); err != nil {
				return err
			}

			done, total := manager.GetProgress()
			ui.Success("Complete: %d/%d cloudcast(s)", done, total)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&playlists, "playlists", "p", false, "Group downloads by the account's playlists")
	cmd.Flags().BoolVar(&toMP3, "to-mp3", false, "Convert downloads to MP3")
	cmd.Flags().BoolVar(&noEmbed, "no-embed", false, "Skip embedding lyrics in native tags")
	cmd.Flags().BoolVar(&writeLRC, "write-lrc", false, "Write .lrc sidecar files")
	cmd.Flags().BoolVar(&noLRC, "no-lrc", false, "Skip writing .lrc sidecar files")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of downloads (0 = unlimited)")
	cmd.Flags().StringVar(&since, "since", "", "Only download cloudcasts uploaded on or after this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be downloaded without downloading")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVarP(&archive, "archive", "a", "", "Download archive file (overrides config)")

	return cmd
}
