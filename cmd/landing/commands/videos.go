package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hypnosis-landing/internal/videometa"
)

func videosCmd() *cobra.Command {
	var (
		write     string
		overwrite bool
	)
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "Fill in video titles and thumbnails with yt-dlp",
		Long: "Looks up every gallery video that is missing a title or thumbnail.\n" +
			"With --write the whole catalog, enriched, is saved as JSON; point\n" +
			"--content at that file to serve it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}

			videos, results := videometa.Enrich(cmd.Context(), videometa.Ytdlp{}, c.Videos, overwrite)
			failed := 0
			for _, r := range results {
				switch {
				case errors.Is(r.Err, videometa.ErrNotAVideo):
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tskipped (not a single video)\n", r.ID)
				case r.Err != nil:
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tfailed: %v\n", r.ID, r.Err)
				case r.Updated:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tupdated\n", r.ID)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tunchanged\n", r.ID)
				}
			}

			if write != "" {
				enriched := *c
				enriched.Videos = videos
				data, err := json.MarshalIndent(&enriched, "", "  ")
				if err != nil {
					return err
				}
				if err := atomic.WriteFile(write, bytes.NewReader(data)); err != nil {
					return fmt.Errorf("write %s: %w", write, err)
				}
				logrus.WithField("file", write).Info("Enriched catalog written")
			}

			if failed > 0 {
				return fmt.Errorf("%d video lookups failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "save the enriched catalog as JSON to this file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace titles and thumbnails that are already set")
	return cmd
}
