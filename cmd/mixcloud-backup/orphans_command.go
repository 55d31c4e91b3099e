package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ikirmitz/mixcloud-backup/internal/download"
)

func newOrphansCommand(ctx *commandContext) *cobra.Command {
	var (
		doDownload bool
		output     string
		archive    string
	)

	cmd := &cobra.Command{
		Use:   "orphans <username>",
		Short: "Find uploads that are not in any playlist",
		Long: `Lists an account's cloudcasts that don't belong to any playlist.
With --download, fetches them into an "Orphans" directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			ui := ctx.ui()

			if output != "" {
				settings.OutputPath = output
			}
			if archive != "" {
				settings.ArchivePath = archive
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
			uploads, orphans, inPlaylists, err := manager.FindOrphans(cmd.Context(), username)
			if err != nil {
				return err
			}

			ui.Table(
				[]string{"Uploads", "In playlists", "Orphans"},
				[][]string{{
					fmt.Sprint(len(uploads)),
					fmt.Sprint(inPlaylists),
					fmt.Sprint(len(orphans)),
				}},
			)

			if len(orphans) == 0 {
				ui.Success("No orphan cloudcasts, every upload is in a playlist")
				return nil
			}

			for i, u := range orphans {
				ui.Print("%3d. %s", i+1, u.Name)
				ui.Print("     %s", u.URL)
			}

			if !doDownload {
				return nil
			}

			return manager.DownloadUploads(cmd.Context(), orphans, "Orphans")
		},
	}

	cmd.Flags().BoolVar(&doDownload, "download", false, "Download the orphan cloudcasts")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVarP(&archive, "archive", "a", "", "Download archive file (overrides config)")

	return cmd
}
