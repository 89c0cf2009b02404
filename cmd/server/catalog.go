package main

import (
	"context"
	"fmt"
	"log/slog"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/httpfetch"
	catalogsqlite "github.com/dwikikusuma/storefront/internal/catalog/infra/sqlite"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/static"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/yamlfile"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/sqlite"
)

// newCatalogSource builds the product source named by cfg.Source. The
// returned func releases whatever the source holds open.
func newCatalogSource(ctx context.Context, cfg config.Catalog, log *slog.Logger) (catalogapp.ProductSource, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.CatalogStatic:
		return static.NewSource(), noop, nil

	case config.CatalogYAML:
		return yamlfile.NewSource(cfg.File), noop, nil

	case config.CatalogHTTP:
		return httpfetch.NewFetcher(cfg.URL, cfg.FetchTimeout), noop, nil

	case config.CatalogSQLite:
		db, err := sqlite.Open(ctx, sqlite.Config{DSN: cfg.SQLiteDSN, BusyTimeout: cfg.FetchTimeout})
		if err != nil {
			return nil, noop, err
		}
		repo := catalogsqlite.NewProductRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		seeded, err := repo.SeedIfEmpty(ctx, static.Default())
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		if seeded {
			log.Info("catalog seeded", slog.String("dsn", cfg.SQLiteDSN))
		}
		return repo, func() { db.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
