// Package model holds the records stored and displayed by the tool.
package model

// Product is an item sold by exactly one market. Markets themselves are
// only ever handled by id and title (see repository.MarketRepository).
type Product struct {
	ID       int64  `db:"product_id"`
	Name     string `db:"product_name"`
	MarketID int64  `db:"market_id"`
	Count    int    `db:"product_count"`
}

// Record is a product joined with its market title. It is what the
// query operations return and what the table renderer prints.
type Record struct {
	Name   string `db:"name"`
	Market string `db:"market"`
	Count  int    `db:"count"`
}
