package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an application error independently of the transport.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindConflict
	KindIOFailure
)

// HTTPStatus maps the kind onto a status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindIOFailure:
		return "io_failure"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business code so that WithDetails copies still compare
// equal to the predefined error they were derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPStatus()
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		KindNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		KindConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"Account with this nickname or email already exists",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrNoProductsMatched = NewBaseError(
		KindNotFound,
		"PRODUCTS_NOT_FOUND",
		"No products found for the given criteria",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrNoOrdersMatched = NewBaseError(
		KindNotFound,
		"ORDERS_NOT_FOUND",
		"No orders found for the given criteria",
		"",
	)

	ErrAccountIDRequired = NewBaseError(
		KindInvalidInput,
		"ACCOUNT_ID_REQUIRED",
		"Account ID is required",
		"",
	)

	ErrProductIDsRequired = NewBaseError(
		KindInvalidInput,
		"PRODUCT_IDS_REQUIRED",
		"At least one product ID is required",
		"",
	)

	ErrInvalidTotalPrice = NewBaseError(
		KindInvalidInput,
		"INVALID_TOTAL_PRICE",
		"Total price must not be negative",
		"",
	)

	ErrOrderProductsNotFound = NewBaseError(
		KindNotFound,
		"ORDER_PRODUCTS_NOT_FOUND",
		"One or more products not found",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		KindNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	// Log-related errors
	ErrInvalidDate = NewBaseError(
		KindInvalidInput,
		"INVALID_DATE",
		"Date must be in yyyy-MM-dd format",
		"",
	)

	ErrLogTaskNotFound = NewBaseError(
		KindNotFound,
		"LOG_TASK_NOT_FOUND",
		"Log task not found",
		"",
	)

	ErrLogFileNotReady = NewBaseError(
		KindNotFound,
		"LOG_FILE_NOT_READY",
		"Log file is not ready for download",
		"",
	)

	ErrLogSourceNotFound = NewBaseError(
		KindNotFound,
		"LOG_SOURCE_NOT_FOUND",
		"Log file not found",
		"",
	)

	ErrNoLogsForDate = NewBaseError(
		KindNotFound,
		"LOGS_NOT_FOUND",
		"No logs found for the given date",
		"",
	)

	ErrLogReadFailed = NewBaseError(
		KindIOFailure,
		"LOG_READ_FAILED",
		"Failed to read log file",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindInvalidInput,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
