package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/api"
	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start the HTTP API server together with the storage probe that opens the database gate`,
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	rt, err := newBootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(rt.cfg.DSN())
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			rt.logger.Warn("close database", "error", err)
		}
	}()

	doc, err := api.Load()
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(rt.cfg, db, rt.logger)
	if !app.Uploads().Available() {
		rt.logger.Warn("uploads directory unavailable, legacy screenshots will not be served",
			"dir", app.Uploads().Dir())
	}

	e, err := httpin.NewRouter(app.RouterConfig(), app.CreateHTTPServer(), doc, app.Availability(), rt.logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(rt.level))

	// The probe opens the availability gate; the server starts either way.
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", rt.cfg.HTTPPort)
		rt.logger.Info("http server listening", "addr", addr, "production", rt.cfg.IsProduction())
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		rt.logger.Info("shutting down http server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
