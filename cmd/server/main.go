package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/payflowhq/payflow/pkg/app"
	"github.com/payflowhq/payflow/pkg/config"
	"github.com/payflowhq/payflow/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)
	return fiberApp.Listen(addr)
}
