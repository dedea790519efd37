package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type MarketRepository struct{}

func NewMarketRepository() *MarketRepository {
	return &MarketRepository{}
}

// FindIDByTitle returns the id of a market whose title equals title
// exactly. found is false when there is none. If several markets share
// the title, the lowest id wins.
func (r *MarketRepository) FindIDByTitle(ctx context.Context, db DBTX, title string) (id int64, found bool, err error) {
	err = db.QueryRow(ctx, `
		SELECT market_id
		FROM markets
		WHERE market_title = $1
		ORDER BY market_id
		LIMIT 1`, title,
	).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query market: %w", err)
	}
	return id, true, nil
}

// Create inserts a market and returns its assigned id.
func (r *MarketRepository) Create(ctx context.Context, db DBTX, title string) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO markets (market_title)
		VALUES ($1)
		RETURNING market_id`, title,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert market: %w", err)
	}
	return id, nil
}
