package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	// database drivers selected by config
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eleven-am/tick/internal/api"
	"github.com/eleven-am/tick/internal/logger"
	"github.com/eleven-am/tick/internal/store"
)

var (
	serveAddr  string
	corsOrigin string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the todo API server",
	Long:  "Start the HTTP API server backed by the configured database.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&corsOrigin, "cors-origin", "", "allowed front-end origin (overrides config)")
}

// Handlers take the store through this interface; keep the real store
// honest about satisfying it.
var _ api.RecordStore = (*store.Store)(nil)

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.CLI()

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if corsOrigin != "" {
		cfg.Server.CORSOrigin = corsOrigin
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recordStore, db, err := store.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	handler := api.NewHandler(recordStore)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.CORS(cfg.Server.CORSOrigin)(handler.Router()),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("server listening",
		"addr", cfg.Server.Addr,
		"driver", cfg.Database.Driver,
		"cors_origin", cfg.Server.CORSOrigin)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
