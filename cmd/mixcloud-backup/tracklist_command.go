package main

import (
	"github.com/spf13/cobra"

	"github.com/ikirmitz/mixcloud-backup/internal/config"
	"github.com/ikirmitz/mixcloud-backup/internal/mixcloud"
	"github.com/ikirmitz/mixcloud-backup/internal/pipeline"
)

func newTracklistCommand(ctx *commandContext) *cobra.Command {
	var (
		noEmbed  bool
		writeLRC bool
		noLRC    bool
	)

	cmd := &cobra.Command{
		Use:   "tracklist [directory]",
		Short: "Resolve and embed tracklists for already-downloaded files",
		Long: `Walks a directory tree, reads the Mixcloud URL out of each audio
file's tags, fetches the tracklist and embeds it as timed lyrics
(or writes a .lrc sidecar). Files without a usable URL are skipped
with a one-line reason.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			ui := ctx.ui()

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			client := mixcloud.NewClient(mixcloud.Config{
				Endpoint:  settings.Endpoint,
				UserAgent: settings.UserAgent,
				Timeout:   settings.Timeout(),
			})
			processor := pipeline.NewProcessor(client, nil, walkOptions(settings, noEmbed, writeLRC, noLRC))

			stats, err := processor.Walk(cmd.Context(), root, settings.AudioExtensions, func(r pipeline.Result) {
				reportResult(ui, r)
			})
			if err != nil {
				return err
			}

			ui.Summary(stats.Embedded, stats.Sidecars, stats.Skipped, stats.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noEmbed, "no-embed", false, "Skip embedding lyrics in native tags")
	cmd.Flags().BoolVar(&writeLRC, "write-lrc", false, "Write .lrc sidecar files")
	cmd.Flags().BoolVar(&noLRC, "no-lrc", false, "Skip writing .lrc sidecar files")

	return cmd
}

// walkOptions merges the configured defaults with the command's
// flags. The no- flags win over both the config and their enabling
// counterparts, so sidecars can be turned off even when the config
// enables them.
func walkOptions(settings *config.Settings, noEmbed, writeLRC, noLRC bool) pipeline.Options {
	return pipeline.Options{
		Embed:    settings.EmbedLyrics && !noEmbed,
		WriteLRC: (settings.WriteLRC || writeLRC) && !noLRC,
	}
}
