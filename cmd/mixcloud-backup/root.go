package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var noColorFlag bool
	var verboseFlag bool

	ctx := newCommandContext(&configFlag, &noColorFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "mixcloud-backup",
		Short:         "Back up Mixcloud accounts with embedded tracklists",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(newDownloadCommand(ctx))
	rootCmd.AddCommand(newTracklistCommand(ctx))
	rootCmd.AddCommand(newEmbedCommand(ctx))
	rootCmd.AddCommand(newOrphansCommand(ctx))

	return rootCmd
}
