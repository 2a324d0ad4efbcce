package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scoopdash/internal/backend"
	"scoopdash/internal/config"
	"scoopdash/internal/db"
	"scoopdash/internal/httpserver"
	"scoopdash/internal/localstore"
	"scoopdash/internal/migrate"
	"scoopdash/internal/notify"
	adminsvc "scoopdash/internal/service/admin"
	catalogsvc "scoopdash/internal/service/catalog"
	checkoutsvc "scoopdash/internal/service/checkout"
	"scoopdash/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool    *pgxpool.Pool
		persist localstore.Store
	)
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}
		persist = localstore.NewPostgres(pool)
	} else {
		logger.Printf("DB_DSN not set, snapshots are in-memory only")
		persist = localstore.NewMemory()
	}

	notes := notify.NewCenter()
	st := store.New(persist, notes, logger)
	if err := st.Load(ctx); err != nil {
		logger.Fatalf("load state: %v", err)
	}

	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	checkoutService := checkoutsvc.New(st, client, notes, logger)
	adminService := adminsvc.New(st, client, notes, logger)
	catalogService := catalogsvc.New(client)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Store:    st,
		Checkout: checkoutService,
		Admin:    adminService,
		Catalog:  catalogService,
		Notes:    notes,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
