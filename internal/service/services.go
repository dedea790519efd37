package service

import (
	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/database"
	"github.com/deppfellow/products/internal/repository"
)

type Services struct {
	Schema   *SchemaService
	Products *ProductService
}

func NewServices(db *database.Database, repos *repository.Repositories, logger *zerolog.Logger) *Services {
	return &Services{
		Schema:   NewSchemaService(db, logger),
		Products: NewProductService(db, repos, logger),
	}
}
