package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"vitamin-tracker/internal/adapters/auth/jwtverifier"
	"vitamin-tracker/internal/adapters/storage"
	"vitamin-tracker/internal/config"
	"vitamin-tracker/internal/platform/logger"
	"vitamin-tracker/internal/ports/auth"
	"vitamin-tracker/internal/router"
)

func newApp() *cli.App {
	app := &cli.App{
		Name:    "vitamin-tracker",
		Usage:   "Personal daily vitamin tracker API",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"VITAMINS_CONFIG"},
				Usage:   "YAML configuration file (optional)",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Create or upgrade the schema of the configured storage and exit",
				Action: migrate,
			},
		},
	}
	// Sin os.Exit dentro de Run: main decide y los tests pueden ver el error.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func loadConfig(c *cli.Context) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		File:   cfg.Log.File,
		Output: c.App.ErrWriter,
	})
	return cfg, log, nil
}

func storageOptions(cfg *config.Config) storage.Options {
	return storage.Options{
		Driver:       cfg.Storage.Driver,
		DSN:          cfg.Storage.DSN,
		Path:         cfg.Storage.Path,
		MaxOpenConns: cfg.Storage.MaxOpenConns,
		MaxIdleConns: cfg.Storage.MaxIdleConns,
	}
}

func serve(c *cli.Context) error {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, storageOptions(cfg))
	if err != nil {
		return errors.Wrap(err, "could not open storage")
	}
	defer store.Close()

	var verifier auth.AuthVerifier
	if cfg.Auth.JWTSecret != "" {
		verifier = jwtverifier.New(cfg.Auth.JWTSecret)
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: router.NewRouter(router.Options{
			AuthVerifier: verifier,
			Storage:      store,
			Logger:       log,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    cfg.HTTP.Addr,
			"storage": cfg.Storage.Driver,
			"jwt":     verifier != nil,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server error")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.HTTP.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

func migrate(c *cli.Context) error {
	cfg, log, err := loadConfig(c)
	if err != nil {
		return err
	}

	if !storage.IsDurable(cfg.Storage.Driver) {
		fmt.Fprintln(c.App.Writer, "storage driver memory has no schema; nothing to do")
		return nil
	}

	store, err := storage.Open(c.Context, storageOptions(cfg))
	if err != nil {
		return errors.Wrap(err, "migrate")
	}
	if err := store.Close(); err != nil {
		return errors.Wrap(err, "close storage")
	}

	log.Info("schema up to date", map[string]any{"storage": cfg.Storage.Driver})
	fmt.Fprintf(c.App.Writer, "schema up to date (%s)\n", cfg.Storage.Driver)
	return nil
}
