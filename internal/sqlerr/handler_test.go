package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/products/internal/errs"
)

func TestHandleErrorClassifiesPgErrors(t *testing.T) {
	tests := []struct {
		name     string
		pgErr    *pgconn.PgError
		wantKind errs.Kind
		wantCode string
		wantMsg  string
	}{
		{
			name: "foreign key violation",
			pgErr: &pgconn.PgError{
				Severity:       "ERROR",
				Code:           "23503",
				Message:        `insert or update on table "products" violates foreign key constraint`,
				TableName:      "products",
				ColumnName:     "market_id",
				ConstraintName: "products_market_id_fkey",
			},
			wantKind: errs.KindIntegrity,
			wantCode: "PRODUCT_NOT_FOUND",
			wantMsg:  "The referenced Market does not exist",
		},
		{
			name: "not null violation",
			pgErr: &pgconn.PgError{
				Severity:   "ERROR",
				Code:       "23502",
				TableName:  "markets",
				ColumnName: "market_title",
			},
			wantKind: errs.KindIntegrity,
			wantCode: "MARKET_REQUIRED",
			wantMsg:  "The Market Title is required",
		},
		{
			name: "constraint without a dedicated message",
			pgErr: &pgconn.PgError{
				Severity:       "ERROR",
				Code:           "23505",
				TableName:      "markets",
				ConstraintName: "markets_title_key",
			},
			wantKind: errs.KindIntegrity,
			wantCode: "MARKET_ERROR",
			wantMsg:  "A Market violates a database constraint",
		},
		{
			name:     "bad password",
			pgErr:    &pgconn.PgError{Severity: "FATAL", Code: "28P01", Message: "password authentication failed"},
			wantKind: errs.KindConnectivity,
			wantCode: "STORE_UNAVAILABLE",
		},
		{
			name:     "missing database",
			pgErr:    &pgconn.PgError{Severity: "FATAL", Code: "3D000", Message: `database "shop" does not exist`},
			wantKind: errs.KindConnectivity,
			wantCode: "STORE_UNAVAILABLE",
		},
		{
			name:     "syntax error",
			pgErr:    &pgconn.PgError{Severity: "ERROR", Code: "42601", Message: "syntax error"},
			wantKind: errs.KindInternal,
			wantCode: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleError(fmt.Errorf("insert product: %w", tt.pgErr))

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("HandleError() = %T, want *errs.Error", err)
			}
			if appErr.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", appErr.Kind, tt.wantKind)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", appErr.Code, tt.wantCode)
			}
			if tt.wantMsg != "" && appErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", appErr.Message, tt.wantMsg)
			}

			var pgErr *pgconn.PgError
			if !errors.As(err, &pgErr) {
				t.Error("driver error is not reachable through the chain")
			}
		})
	}
}

func TestHandleErrorPassesThroughAppErrors(t *testing.T) {
	original := errs.NewArgumentError("bad", nil, nil)
	if got := HandleError(original); got != original {
		t.Errorf("HandleError() = %v, want the original error", got)
	}
	if HandleError(nil) != nil {
		t.Error("HandleError(nil) != nil")
	}
}

func TestHandleErrorTimeouts(t *testing.T) {
	err := HandleError(fmt.Errorf("connect: %w", context.DeadlineExceeded))
	if errs.KindOf(err) != errs.KindConnectivity {
		t.Errorf("KindOf() = %q, want %q", errs.KindOf(err), errs.KindConnectivity)
	}

	err = HandleError(errors.New("something odd"))
	if errs.KindOf(err) != errs.KindInternal {
		t.Errorf("KindOf() = %q, want %q", errs.KindOf(err), errs.KindInternal)
	}
}

func TestMapCode(t *testing.T) {
	if MapCode("23503") != ForeignKeyViolation {
		t.Errorf("MapCode(23503) = %q", MapCode("23503"))
	}
	if MapCode("99999") != Other {
		t.Errorf("MapCode(99999) = %q", MapCode("99999"))
	}
	if MapSeverity("FATAL") != SeverityFatal {
		t.Errorf("MapSeverity(FATAL) = %q", MapSeverity("FATAL"))
	}
	if MapSeverity("LOG") != SeverityUnknown {
		t.Errorf("MapSeverity(LOG) = %q", MapSeverity("LOG"))
	}
}
