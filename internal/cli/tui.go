package cli

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"fruitstand/internal/config"
	"fruitstand/internal/repository/memory"
	"fruitstand/internal/service"
	"fruitstand/internal/tui"
)

func newTUICmd(opts *options, version string) *cobra.Command {
	var noAPI bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI, with the HTTP API serving the same store in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}

			// Logging to the terminal would corrupt the alt screen, so
			// without a configured log file the TUI discards logs.
			logger, err := newLogger(cfg.Log.Level, cfg.Log.File, io.Discard)
			if err != nil {
				return err
			}

			store := memory.NewSeededStore()

			var srv *http.Server
			if !noAPI {
				srv = buildAPIServer(cfg, store, logger, version)
				go func() {
					logger.Infof("listening on %s", cfg.Server.Addr)
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						logger.Errorf("http server: %v", err)
					}
				}()
			}

			model := tui.New(
				service.NewItemService(store),
				service.NewUserService(store),
				service.NewStatsService(store, store),
				service.NewAuthService(),
				cfg.UI.Latency,
			)
			runErr := tui.Run(model)

			if srv != nil {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Warnf("http shutdown: %v", err)
				}
			}

			return runErr
		},
	}
	cmd.Flags().BoolVar(&noAPI, "no-api", false, "do not serve the HTTP API alongside the TUI")

	return cmd
}
