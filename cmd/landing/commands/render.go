package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hypnosis-landing/internal/export"
	"hypnosis-landing/internal/theme"
	"hypnosis-landing/pkg/config"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the static site for every theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			def, err := theme.Lookup(cfg.Theme)
			if err != nil {
				return err
			}

			written, err := export.Site(export.Options{
				Dir:     cfg.ExportDir,
				Catalog: c,
				Default: def,
				Themes:  theme.All(),
				Year:    time.Now().Year(),
			})
			if err != nil {
				return err
			}
			for _, name := range written {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().String("out", config.DefaultExportDir, "output directory")
	return cmd
}
