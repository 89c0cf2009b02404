package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	sku      TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	price    TEXT NOT NULL,
	position INTEGER NOT NULL
)`

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate products: %w", err)
	}
	return nil
}

// Upsert inserts p or replaces the row with the same SKU. New rows are
// listed after existing ones.
func (r *ProductRepo) Upsert(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO products (sku, name, price, position)
VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM products))
ON CONFLICT (sku) DO UPDATE SET name = excluded.name, price = excluded.price`,
		p.SKU, p.Name, p.Price.String())
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", p.SKU, err)
	}
	return nil
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// SeedIfEmpty stores products only when the table has no rows yet.
func (r *ProductRepo) SeedIfEmpty(ctx context.Context, products []domain.Product) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	for _, p := range products {
		if err := r.Upsert(ctx, p); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT sku, name, price FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var (
			p     domain.Product
			price string
		)
		if err := rows.Scan(&p.SKU, &p.Name, &price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("product %s: bad price %q: %w", p.SKU, price, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}
