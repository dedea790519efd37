package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/products/internal/errs"
)

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our own Error.
//
// pgconn.PgError carries Postgres-specific fields like:
//   - Code (SQLSTATE)
//   - Severity
//   - TableName/ColumnName/ConstraintName etc.
//
// SQLSTATE and Severity are mapped into our enums for easier switching.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),         // SQLSTATE -> Code enum
		Severity:       MapSeverity(src.Severity), // severity string -> enum
		DatabaseCode:   src.Code,                  // original SQLSTATE
		Message:        src.Message,               // server's main message
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src, // kept for Unwrap() and the stack report
	}
}

// generateErrorCode creates the error code printed with a fatal report.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Example:
//
//	products + ForeignKeyViolation => PRODUCT_NOT_FOUND
//
// Rules:
//   - DOMAIN comes from tableName (uppercased, trailing 'S' dropped)
//   - ACTION depends on violation type
func generateErrorCode(tableName string, errType Code) string {
	// Unknown table: RECORD keeps the domain non-empty.
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// "MARKETS" -> "MARKET", "PRODUCTS" -> "PRODUCT".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	// The schema only declares NOT NULL columns and the products -> markets
	// foreign key; every other integrity failure gets the generic action.
	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case NotNullViolation:
		action = "REQUIRED"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the one-line message shown before the
// stack trace. It uses table/column info to phrase messages in a more
// human way.
func formatUserFriendlyMessage(sqlErr *Error) string {
	// Pick an entity name that the message will refer to.
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		// Example: "The referenced Market does not exist"
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case NotNullViolation:
		// Example: "The Market Title is required"
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	default:
		return fmt.Sprintf("A %s violates a database constraint", entityName)
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. If column ends with "_id", use that base name (foreign keys).
//     e.g. "market_id" -> "Market"
//  2. Otherwise use table name, singularized if it ends with "s".
//  3. Otherwise fallback to "record".
func getEntityName(tableName, columnName string) string {
	// Most reliable for foreign keys: column like "market_id".
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	// Fallback: table name.
	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case identifiers into Title Case.
//
// Example:
//
//	"market_title" -> "Market Title"
//
// It uses x/text/cases for proper title casing rules.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a low-level database error into an *errs.Error.
//
// Behavior summary:
//   - already *errs.Error: returned unchanged
//   - connect failures, timeouts, auth/catalog SQLSTATEs: connectivity
//   - constraint violations: integrity
//   - anything else: internal
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	// Already classified: don't re-wrap it.
	// This prevents double-wrapping and keeps the original Kind and Code.
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	// Handle Postgres server errors.
	//
	// pgconn.PgError is the primary Postgres error type from pgx.
	// It is also what a rejected login (28P01, 3D000) surfaces as,
	// wrapped inside a pgconn.ConnectError.
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		// Convert into our structured error.
		sqlErr := ConvertPgError(pgerr)

		switch {
		case sqlErr.Code.IsConnectivity():
			// Unknown database, bad credentials, lost connection.
			return errs.NewConnectivityError(sqlErr)

		case sqlErr.Code.IsIntegrity():
			// Create:
			// - a machine-friendly error code (e.g. PRODUCT_NOT_FOUND)
			// - a user-friendly message (e.g. "The referenced Market does not exist")
			return errs.NewIntegrityError(
				formatUserFriendlyMessage(sqlErr),
				generateErrorCode(sqlErr.TableName, sqlErr.Code),
				sqlErr,
			)

		default:
			// Syntax errors, undefined tables and the like are bugs, not user errors.
			return errs.NewInternalError(sqlErr)
		}
	}

	// The server was never reached: refused connection, DNS failure, TLS.
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errs.NewConnectivityError(err)
	}

	// Network errors and timeouts that happen after the handshake.
	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return errs.NewConnectivityError(err)
	}

	// Default fallback: treat unknown errors as internal.
	return errs.NewInternalError(err)
}
