package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/database"
	"github.com/deppfellow/products/internal/sqlerr"
)

type SchemaService struct {
	db  *database.Database
	log *zerolog.Logger
}

func NewSchemaService(db *database.Database, logger *zerolog.Logger) *SchemaService {
	return &SchemaService{db: db, log: logger}
}

// Ensure creates the markets and products tables if they are missing.
// It is safe to call any number of times. Failures are returned, not
// logged; the caller reports them once.
func (s *SchemaService) Ensure(ctx context.Context) error {
	if err := s.db.Migrate(ctx); err != nil {
		return errors.Wrap(sqlerr.HandleError(err), "initialize schema")
	}

	s.log.Debug().Msg("schema ready")
	return nil
}
