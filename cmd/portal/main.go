package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appadmin "github.com/ErnestEguez/websitebillennium/internal/application/admin"
	"github.com/ErnestEguez/websitebillennium/internal/application/auth"
	"github.com/ErnestEguez/websitebillennium/internal/application/catalog"
	"github.com/ErnestEguez/websitebillennium/internal/application/contact"
	"github.com/ErnestEguez/websitebillennium/internal/application/subscriptions"
	"github.com/ErnestEguez/websitebillennium/internal/infrastructure/rest"
	"github.com/ErnestEguez/websitebillennium/internal/interfaces/cli"
	"github.com/ErnestEguez/websitebillennium/internal/session"
	"github.com/ErnestEguez/websitebillennium/pkg/config"
	"github.com/ErnestEguez/websitebillennium/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando portal")

	sessions := session.NewManager(cfg.Session.File)
	if err := sessions.Hydrate(); err != nil {
		log.Warn().Err(err).Msg("hidratar sesión")
	}

	client := rest.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, sessions, log)
	// Un 401 en cualquier petición autenticada invalida la sesión local:
	// el siguiente comando vuelve a pedir login.
	client.OnUnauthorized(func() {
		if err := sessions.Clear(); err != nil {
			log.Warn().Err(err).Msg("limpiar sesión expirada")
		}
	})

	catalogUC, err := catalog.NewUseCase(client)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar contenido del catálogo")
	}

	app := &cli.App{
		Auth:          auth.NewUseCase(client, sessions, log),
		Catalog:       catalogUC,
		Contact:       contact.NewUseCase(client),
		Subscriptions: subscriptions.NewUseCase(client, sessions, log),
		Companies:     subscriptions.NewCompanyUseCase(client, sessions),
		Admin:         appadmin.NewUseCase(client, sessions, log),
		Sessions:      sessions,
		Log:           log,
		Out:           os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
