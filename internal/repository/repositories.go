package repository

// Repositories is a container for all repository instances.
type Repositories struct {
	Markets  *MarketRepository
	Products *ProductRepository
}

// NewRepositories constructs the repository container.
func NewRepositories() *Repositories {
	return &Repositories{
		Markets:  NewMarketRepository(),
		Products: NewProductRepository(),
	}
}
