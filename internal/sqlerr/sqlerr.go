// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the pgx driver and converts them
// into application errors (e.g. a foreign key violation becomes an
// integrity error, a refused connection a connectivity error).
package sqlerr

import "fmt"

// Code is the coarse category of a PostgreSQL error.
type Code string

const (
	Other                 Code = "other"
	NotNullViolation      Code = "not_null_violation"
	ForeignKeyViolation   Code = "foreign_key_violation"
	UniqueViolation       Code = "unique_violation"
	CheckViolation        Code = "check_violation"
	InvalidPassword       Code = "invalid_password"
	InvalidAuthorization  Code = "invalid_authorization_specification"
	InvalidCatalogName    Code = "invalid_catalog_name"
	InsufficientPrivilege Code = "insufficient_privilege"
	ConnectionException   Code = "connection_exception"
	UndefinedTable        Code = "undefined_table"
)

// sqlStates maps SQLSTATE values to Codes.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStates = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"28P01": InvalidPassword,
	"28000": InvalidAuthorization,
	"3D000": InvalidCatalogName,
	"42501": InsufficientPrivilege,
	"42P01": UndefinedTable,
	"08000": ConnectionException,
	"08003": ConnectionException,
	"08006": ConnectionException,
	"08001": ConnectionException,
	"08004": ConnectionException,
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	if c, ok := sqlStates[sqlState]; ok {
		return c
	}
	return Other
}

// IsConnectivity reports whether the code means the store could not be
// used at all: unreachable, unknown database or rejected credentials.
func (c Code) IsConnectivity() bool {
	switch c {
	case InvalidPassword, InvalidAuthorization, InvalidCatalogName, InsufficientPrivilege, ConnectionException:
		return true
	}
	return false
}

// IsIntegrity reports whether the code is a constraint violation.
func (c Code) IsIntegrity() bool {
	switch c {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation, CheckViolation:
		return true
	}
	return false
}

// Severity is the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityUnknown Severity = "UNKNOWN"
)

// MapSeverity normalizes the severity string reported by the server.
func MapSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice:
		return Severity(s)
	}
	return SeverityUnknown
}

// Error is a driver-independent view of a PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
