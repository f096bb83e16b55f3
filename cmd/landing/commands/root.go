package commands

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hypnosis-landing/internal/content"
	"hypnosis-landing/pkg/config"
)

var (
	configFile string
	cfg        *config.Config
)

// flagKeys maps command-line flags to config keys
var flagKeys = map[string]string{
	"theme":          "theme",
	"content":        "content_file",
	"log-level":      "log_level",
	"site-url":       "site_url",
	"addr":           "addr",
	"dev":            "dev",
	"out":            "export_dir",
	"watch-interval": "watch_interval",
}

// Execute runs the CLI
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "landing",
		Short:        "Tampa Hypnosis Center landing page",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			v, err := config.New(configFile)
			if err != nil {
				return err
			}
			for flag, key := range flagKeys {
				if f := cmd.Flags().Lookup(flag); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}

			cfg, err = config.Load(v)
			if err != nil {
				return err
			}
			cfg.ConfigureLogging()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./landing.yaml if present)")
	root.PersistentFlags().String("theme", "", "default theme (classic, spotlight, calm)")
	root.PersistentFlags().String("content", "", "content file (yaml, json or toml); built-in content when empty")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("site-url", "", "canonical site URL, overrides the content file")

	root.AddCommand(serveCmd(), renderCmd(), schemaCmd(), themesCmd(), videosCmd(), toolsCmd())
	return root
}

// loadCatalog reads and validates the configured content
func loadCatalog() (*content.Catalog, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	applyOverrides(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	logrus.WithField("business", c.Business.Name).Debug("Catalog ready")
	return c, nil
}

func applyOverrides(c *content.Catalog) {
	if cfg.SiteURL != "" {
		c.Business.SiteURL = cfg.SiteURL
	}
}

// contentSource names where the catalog came from, for logs and /api/state
func contentSource() string {
	if cfg.ContentFile == "" {
		return "built-in"
	}
	return cfg.ContentFile
}
