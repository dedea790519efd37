package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/database"
	"github.com/deppfellow/products/internal/model"
	"github.com/deppfellow/products/internal/repository"
	"github.com/deppfellow/products/internal/sqlerr"
	"github.com/deppfellow/products/internal/validation"
)

// AddProductInput is the input of the add command. Names are only
// checked for presence; count may be any integer.
type AddProductInput struct {
	Name   string `flag:"name" validate:"required"`
	Market string `flag:"market" validate:"required"`
	Count  int    `flag:"count"`
}

func (i *AddProductInput) Validate() error {
	return validation.Struct(i)
}

type ProductService struct {
	db    *database.Database
	repos *repository.Repositories
	log   *zerolog.Logger
}

func NewProductService(db *database.Database, repos *repository.Repositories, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		db:    db,
		repos: repos,
		log:   logger,
	}
}

// Add resolves the market (creating it when new) and then writes the
// product. The two steps commit separately.
//
// in must already have passed validation.Validate; the add command does
// that before the backend is opened.
func (s *ProductService) Add(ctx context.Context, in AddProductInput) (model.Product, error) {
	marketID, err := s.ResolveMarket(ctx, in.Market)
	if err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		Name:     in.Name,
		MarketID: marketID,
		Count:    in.Count,
	}
	product.ID, err = s.WriteProduct(ctx, product)
	if err != nil {
		return model.Product{}, err
	}

	return product, nil
}

// ResolveMarket returns the id of the market titled title, inserting a
// new market when none exists.
//
// The lookup and the insert share one transaction but no lock, so two
// concurrent calls with a new title can both insert it.
func (s *ProductService) ResolveMarket(ctx context.Context, title string) (int64, error) {
	var (
		id      int64
		created bool
	)

	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		existing, found, err := s.repos.Markets.FindIDByTitle(ctx, tx, title)
		if err != nil {
			return err
		}
		if found {
			id = existing
			return nil
		}

		id, err = s.repos.Markets.Create(ctx, tx, title)
		created = err == nil
		return err
	})
	if err != nil {
		return 0, errors.Wrap(sqlerr.HandleError(err), "resolve market")
	}

	s.log.Debug().
		Int64("market_id", id).
		Str("market", title).
		Bool("created", created).
		Msg("resolved market")

	return id, nil
}

// WriteProduct inserts p and commits. Duplicates are allowed.
func (s *ProductService) WriteProduct(ctx context.Context, p model.Product) (int64, error) {
	var id int64

	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		id, err = s.repos.Products.Create(ctx, tx, p)
		return err
	})
	if err != nil {
		return 0, errors.Wrap(sqlerr.HandleError(err), "write product")
	}

	s.log.Info().
		Int64("product_id", id).
		Int64("market_id", p.MarketID).
		Str("name", p.Name).
		Int("count", p.Count).
		Msg("added product")

	return id, nil
}

// List returns every product with its market title. The order is
// whatever the store returns.
func (s *ProductService) List(ctx context.Context) ([]model.Record, error) {
	var records []model.Record

	err := s.db.WithConn(ctx, func(conn *pgx.Conn) error {
		var err error
		records, err = s.repos.Products.ListAll(ctx, conn)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(sqlerr.HandleError(err), "list products")
	}

	return records, nil
}

// Find returns the products named exactly name. No match is an empty
// slice, not an error.
func (s *ProductService) Find(ctx context.Context, name string) ([]model.Record, error) {
	var records []model.Record

	err := s.db.WithConn(ctx, func(conn *pgx.Conn) error {
		var err error
		records, err = s.repos.Products.FindByName(ctx, conn, name)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(sqlerr.HandleError(err), "find products")
	}

	return records, nil
}
