package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/shortlink/internal/app"
	"github.com/vadimbarashkov/shortlink/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal(err)
	}

	logger := httplog.NewLogger("shortlink", httplog.Options{
		JSON:            cfg.Env == config.EnvProd,
		LogLevel:        cfg.LogLevel,
		Concise:         cfg.Env == config.EnvDev,
		RequestHeaders:  cfg.Env != config.EnvProd,
		TimeFieldFormat: "2006-01-02T15:04:05.000Z07:00",
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}
