package main

import (
	"github.com/spf13/cobra"

	"github.com/ikirmitz/mixcloud-backup/internal/console"
	"github.com/ikirmitz/mixcloud-backup/internal/pipeline"
)

func newEmbedCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed [directory]",
		Short: "Embed existing .lrc sidecars into their matching audio files",
		Long: `Finds .lrc files and embeds each one's contents into the audio
file with the same name. Sidecar files are preserved, not deleted.`,
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

			stats, err := pipeline.EmbedExisting(cmd.Context(), root, settings.AudioExtensions, func(r pipeline.Result) {
				reportResult(ui, r)
			})
			if err != nil {
				return err
			}

			ui.Summary(stats.Embedded, stats.Sidecars, stats.Skipped, stats.Failed)
			return nil
		},
	}

	return cmd
}

// reportResult prints one walk result as a single line.
func reportResult(ui *console.Console, r pipeline.Result) {
	switch r.Outcome {
	case pipeline.OutcomeFailed:
		ui.Error("Error: %s: %v", r.Path, r.Err)
	case pipeline.OutcomeSkipped:
		ui.Warn("Skipping %s: %s", r.Path, r.Detail)
	default:
		ui.Success("%s: %s", r.Detail, r.Path)
	}
}
