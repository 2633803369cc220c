// Command fragmentor runs the molecule fragmentation HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/spectrakit/fragmentor/internal/api"
	"github.com/spectrakit/fragmentor/internal/config"
	"github.com/spectrakit/fragmentor/internal/db"
	"github.com/spectrakit/fragmentor/internal/db/migrations"
	"github.com/spectrakit/fragmentor/internal/dbpool"
	"github.com/spectrakit/fragmentor/internal/service"
	"github.com/spectrakit/fragmentor/internal/store"
	"github.com/spectrakit/fragmentor/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return err
	}

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	bridge := db.NewNotifyBridge(log, pool, hub)
	if err := bridge.Start(ctx); err != nil {
		return err
	}

	base := store.Base{Pool: pool, Log: log}
	moleculeStore := store.NewMoleculeStore(base)
	fragmentStore := store.NewFragmentStore(base)
	spectrumStore := store.NewSpectrumStore(base)

	deps := &api.RouterDeps{
		Log:         log,
		Pool:        pool,
		Hub:         hub,
		Molecules:   service.NewMoleculeService(moleculeStore, log),
		Fragments:   service.NewFragmentService(fragmentStore, moleculeStore, log),
		Spectra:     service.NewSpectrumService(spectrumStore, log),
		Stats:       service.NewStatsService(moleculeStore, fragmentStore, log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
		}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down")
		hub.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("server stopped")

	return nil
}
