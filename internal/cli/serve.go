package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fruitstand/internal/config"
	apphttp "fruitstand/internal/http"
	"fruitstand/internal/repository/memory"
	"fruitstand/internal/service"
)

func newServeCmd(opts *options, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Log.Level, cfg.Log.File, os.Stderr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := memory.NewSeededStore()
			srv := buildAPIServer(cfg, store, logger, version)

			go func() {
				logger.Infof("listening on %s", cfg.Server.Addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatalf("http server: %v", err)
				}
			}()

			<-ctx.Done()
			logger.Info("shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warnf("http shutdown: %v", err)
			}

			logger.Info("bye")
			return nil
		},
	}
}

// buildAPIServer assembles the gin router over the shared store and wraps
// it in an http.Server ready to listen on the configured address.
func buildAPIServer(cfg config.Config, store *memory.Store, logger *logrus.Logger, version string) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := apphttp.NewHandler(
		service.NewItemService(store),
		service.NewUserService(store),
		service.NewStatsService(store, store),
		service.NewAuthService(),
		logger,
		version,
	)
	handler.RegisterRoutes(router)

	return &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}
}
