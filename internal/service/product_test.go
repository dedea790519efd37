package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/config"
	"github.com/deppfellow/products/internal/database"
	"github.com/deppfellow/products/internal/database/dbtest"
	"github.com/deppfellow/products/internal/errs"
	"github.com/deppfellow/products/internal/repository"
	"github.com/deppfellow/products/internal/service"
	"github.com/deppfellow/products/internal/validation"
)

func newServices(t *testing.T, db *database.Database) *service.Services {
	t.Helper()
	logger := zerolog.Nop()
	return service.NewServices(db, repository.NewRepositories(), &logger)
}

// unreachable returns a Database whose every connection attempt fails.
func unreachable(t *testing.T) *database.Database {
	t.Helper()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Host:           "127.0.0.1",
			Port:           1,
			Name:           "postgres",
			User:           "postgres",
			SSLMode:        "disable",
			ConnectTimeout: time.Second,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	logger := zerolog.Nop()
	db, err := database.New(cfg, &logger)
	if err != nil {
		t.Fatalf("database.New: %v", err)
	}
	return db
}

func TestAddProductInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   service.AddProductInput
		wantErr bool
	}{
		{name: "complete", input: service.AddProductInput{Name: "Bread", Market: "CornerShop", Count: 5}},
		{name: "zero count", input: service.AddProductInput{Name: "Bread", Market: "CornerShop"}},
		{name: "missing name", input: service.AddProductInput{Market: "CornerShop", Count: 1}, wantErr: true},
		{name: "missing market", input: service.AddProductInput{Name: "Bread", Count: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(&tt.input)
			if tt.wantErr && errs.KindOf(err) != errs.KindArgument {
				t.Errorf("KindOf(%v) = %q, want %q", err, errs.KindOf(err), errs.KindArgument)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestEnsureFailureIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	svc := service.NewServices(unreachable(t), repository.NewRepositories(), &logger)

	if err := svc.Schema.Ensure(context.Background()); err == nil {
		t.Fatal("Ensure() error = nil, want connectivity error")
	}
	if buf.Len() != 0 {
		t.Errorf("Ensure() logged its failure:\n%s", buf.String())
	}
}

func TestStoreFailuresAreConnectivityErrors(t *testing.T) {
	svc := newServices(t, unreachable(t))
	ctx := context.Background()

	checks := map[string]error{
		"ensure": svc.Schema.Ensure(ctx),
	}
	_, checks["add"] = svc.Products.Add(ctx, service.AddProductInput{Name: "Bread", Market: "CornerShop", Count: 5})
	_, checks["list"] = svc.Products.List(ctx)
	_, checks["find"] = svc.Products.Find(ctx, "Bread")

	for name, err := range checks {
		if !errors.Is(err, &errs.Error{Kind: errs.KindConnectivity}) {
			t.Errorf("%s: error = %v, want connectivity error", name, err)
		}
	}
}

func TestAddCreatesMarketOnce(t *testing.T) {
	db := dbtest.Open(t)
	svc := newServices(t, db)
	ctx := context.Background()

	first, err := svc.Products.Add(ctx, service.AddProductInput{Name: "Bread", Market: "CornerShop", Count: 5})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if dbtest.Count(t, db, "markets") != 1 || dbtest.Count(t, db, "products") != 1 {
		t.Fatalf("after first add: markets=%d products=%d, want 1/1",
			dbtest.Count(t, db, "markets"), dbtest.Count(t, db, "products"))
	}

	second, err := svc.Products.Add(ctx, service.AddProductInput{Name: "Milk", Market: "CornerShop", Count: 0})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if second.MarketID != first.MarketID {
		t.Errorf("second MarketID = %d, want reused %d", second.MarketID, first.MarketID)
	}
	if n := dbtest.Count(t, db, "markets"); n != 1 {
		t.Errorf("markets = %d, want 1", n)
	}

	// Same name and market again is a separate row.
	if _, err := svc.Products.Add(ctx, service.AddProductInput{Name: "Bread", Market: "CornerShop", Count: -2}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if n := dbtest.Count(t, db, "products"); n != 3 {
		t.Errorf("products = %d, want 3", n)
	}

	// A differently cased title is another market.
	other, err := svc.Products.Add(ctx, service.AddProductInput{Name: "Bread", Market: "cornershop", Count: 1})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if other.MarketID == first.MarketID {
		t.Error("market titles differing in case resolved to the same market")
	}
}

func TestAddThenFindRoundTrip(t *testing.T) {
	db := dbtest.Open(t)
	svc := newServices(t, db)
	ctx := context.Background()

	if err := svc.Schema.Ensure(ctx); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if _, err := svc.Products.Add(ctx, service.AddProductInput{Name: "Bread", Market: "CornerShop", Count: 5}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	records, err := svc.Products.Find(ctx, "Bread")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Find() returned %d records, want 1", len(records))
	}
	r := records[0]
	if r.Name != "Bread" || r.Market != "CornerShop" || r.Count != 5 {
		t.Errorf("Find() = %+v, want {Bread CornerShop 5}", r)
	}

	none, err := svc.Products.Find(ctx, "Nonexistent")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Find(Nonexistent) = %+v, want empty", none)
	}
}

func TestListEmpty(t *testing.T) {
	db := dbtest.Open(t)
	svc := newServices(t, db)

	records, err := svc.Products.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("List() = %+v, want empty", records)
	}
}

func TestResolveMarketReusesExistingRow(t *testing.T) {
	db := dbtest.Open(t)
	svc := newServices(t, db)
	ctx := context.Background()

	var seeded int64
	err := db.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `INSERT INTO markets (market_title) VALUES ('Mall') RETURNING market_id`).Scan(&seeded)
	})
	if err != nil {
		t.Fatalf("seed market: %v", err)
	}

	id, err := svc.Products.ResolveMarket(ctx, "Mall")
	if err != nil {
		t.Fatalf("ResolveMarket() error = %v", err)
	}
	if id != seeded {
		t.Errorf("ResolveMarket() = %d, want %d", id, seeded)
	}
}
