package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"trip-planner/internal/api/server"
	"trip-planner/internal/app"
)

var (
	host  string
	port  int
	debug bool
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "0.0.0.0", "listen address")
	Cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port")
	Cmd.Flags().BoolVar(&debug, "debug", false, "enable debug mode")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API exposing geocoding, translation, OCR, speech
recognition and search-trend endpoints under /api/v1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := server.DefaultConfig()
		cfg.Host = host
		cfg.Port = port
		cfg.Debug = debug

		container := app.InitServiceContainer()
		srv := server.New(cfg, container, logger)

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			logger.Info("received signal", "signal", sig.String())
			return srv.Shutdown(context.Background())
		}
	},
}
