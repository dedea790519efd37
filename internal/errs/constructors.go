package errs

// NewArgumentError reports bad command-line input.
func NewArgumentError(message string, fields []FieldError, err error) *Error {
	return &Error{
		Kind:    KindArgument,
		Code:    "INVALID_ARGUMENT",
		Message: message,
		Fields:  fields,
		Err:     err,
	}
}

// NewConfigError reports an unusable configuration.
func NewConfigError(err error) *Error {
	return &Error{
		Kind:    KindConfig,
		Code:    "INVALID_CONFIG",
		Message: "Invalid configuration",
		Err:     err,
	}
}

// NewConnectivityError reports that the store could not be reached.
func NewConnectivityError(err error) *Error {
	return &Error{
		Kind:    KindConnectivity,
		Code:    "STORE_UNAVAILABLE",
		Message: "Could not connect to the database",
		Err:     err,
	}
}

// NewIntegrityError reports a constraint violation.
//
// code is usually generated from the table and violation type,
// e.g. "MARKET_NOT_FOUND".
func NewIntegrityError(message, code string, err error) *Error {
	return &Error{
		Kind:    KindIntegrity,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInternalError wraps an unclassified store failure.
func NewInternalError(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    "INTERNAL_ERROR",
		Message: "An error occurred while processing the command",
		Err:     err,
	}
}
