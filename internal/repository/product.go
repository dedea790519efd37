package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/products/internal/model"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// recordColumns is the join every read uses. No ORDER BY: callers must
// not rely on the row order.
const recordColumns = `
	SELECT
		products.product_name AS name,
		markets.market_title AS market,
		products.product_count AS count
	FROM products
	INNER JOIN markets ON markets.market_id = products.market_id`

// Create inserts a product and returns its assigned id.
func (r *ProductRepository) Create(ctx context.Context, db DBTX, p model.Product) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO products (product_name, market_id, product_count)
		VALUES ($1, $2, $3)
		RETURNING product_id`,
		p.Name, p.MarketID, p.Count,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// ListAll returns every product with its market title.
func (r *ProductRepository) ListAll(ctx context.Context, db DBTX) ([]model.Record, error) {
	rows, err := db.Query(ctx, recordColumns)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return collectRecords(rows)
}

// FindByName returns the products whose name equals name exactly.
func (r *ProductRepository) FindByName(ctx context.Context, db DBTX, name string) ([]model.Record, error) {
	rows, err := db.Query(ctx, recordColumns+`
	WHERE products.product_name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("query products by name: %w", err)
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]model.Record, error) {
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Record])
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return records, nil
}
