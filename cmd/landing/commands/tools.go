package commands

import (
	"fmt"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func toolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Manage the external tools used by the videos command",
	}

	install := &cobra.Command{
		Use:   "install",
		Short: "Download yt-dlp into the user cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Installing yt-dlp...")
			resolved, err := ytdlp.Install(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("install yt-dlp: %w", err)
			}
			logrus.WithFields(logrus.Fields{
				"executable": resolved.Executable,
				"version":    resolved.Version,
			}).Info("yt-dlp installed")
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Update an installed yt-dlp to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ytdlp.New().Update(cmd.Context())
			if err != nil {
				return fmt.Errorf("update yt-dlp: %w", err)
			}
			logrus.WithFields(logrus.Fields{
				"exit_code": result.ExitCode,
				"stdout":    result.Stdout,
			}).Info("yt-dlp update finished")
			return nil
		},
	}

	cmd.AddCommand(install, update)
	return cmd
}
