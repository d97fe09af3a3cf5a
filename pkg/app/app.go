// Package app wires configuration, logging, the currency registry, the
// message catalog and the transfer service into one application value.
package app

import (
	"fmt"
	"log/slog"

	"github.com/payflowhq/payflow/pkg/catalog"
	"github.com/payflowhq/payflow/pkg/config"
	"github.com/payflowhq/payflow/pkg/currency"
	transfersvc "github.com/payflowhq/payflow/pkg/service/transfer"
)

// App holds the assembled dependencies for one process.
type App struct {
	Config          *config.App
	Logger          *slog.Logger
	Currencies      *currency.Registry
	Catalog         *catalog.Catalog
	TransferService *transfersvc.Service
}

// New assembles the application from its configuration.
func New(cfg *config.App) (*App, error) {
	logger := SetupLogger(cfg.Log)

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("app: loading message catalog: %w", err)
	}

	currencies := currency.NewRegistry()

	return &App{
		Config:          cfg,
		Logger:          logger,
		Currencies:      currencies,
		Catalog:         cat,
		TransferService: transfersvc.New(currencies, cat, logger),
	}, nil
}
