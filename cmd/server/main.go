// Command server exposes the Ukrainian IPA transcriber as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/transcribe?text=<text>[&check_accent=true]
//	POST /api/transcribe/batch   body: {"texts":["..."],"check_accent":true}
//	GET  /api/trace?text=<text>[&check_accent=true]
//	GET  /api/health
//
// Configuration is read from the YAML file named by CONFIG_PATH
// (default ./config.yaml) and the environment.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ukrphon/ipauk"
	"github.com/ukrphon/ipauk/internal/config"
	"github.com/ukrphon/ipauk/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

// newHandler builds the full handler chain for cfg.
func newHandler(cfg *config.Config, log *slog.Logger) http.Handler {
	return chain(newMux(cfg.Transcribe),
		withRecovery(log),
		withLogging(log),
		withCORS(cfg.CORS),
	)
}

// run serves until ctx is cancelled, then shuts down within
// cfg.Server.ShutdownTimeout.
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(cfg, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr), slog.String("version", ipauk.Version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
