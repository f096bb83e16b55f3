package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hypnosis-landing/internal/content"
	"hypnosis-landing/internal/lead"
	"hypnosis-landing/internal/server"
	"hypnosis-landing/internal/state"
	"hypnosis-landing/internal/watcher"
	"hypnosis-landing/internal/websocket"
	"hypnosis-landing/pkg/config"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, err := loadCatalog()
			if err != nil {
				return err
			}
			state.SetCatalog(c, contentSource())

			if cfg.Dev && cfg.ContentFile != "" {
				go watcher.Watch(ctx, cfg.ContentFile, cfg.WatchInterval, func(c *content.Catalog) {
					applyOverrides(c)
					state.SetCatalog(c, cfg.ContentFile)
					websocket.BroadcastReload()
				})
			}

			logrus.WithFields(logrus.Fields{
				"addr":    cfg.Addr,
				"theme":   cfg.Theme,
				"content": contentSource(),
				"dev":     cfg.Dev,
			}).Info("Starting landing page server")

			return server.Run(ctx, cfg.Addr, server.NewRouter(server.Options{
				DefaultTheme: cfg.Theme,
				Submitter:    lead.Placeholder{},
				Dev:          cfg.Dev,
			}))
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "listen address")
	cmd.Flags().Bool("dev", false, "live reload: watch the content file and refresh open pages")
	cmd.Flags().Duration("watch-interval", 2*time.Second, "how often --dev checks the content file")
	return cmd
}
