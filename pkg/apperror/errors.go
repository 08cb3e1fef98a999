package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Message is the client-facing text; Err carries the internal cause
// and only reaches server-side logs.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Request validation (REQ) ----

// ErrMissingOrderID is returned when the webhook payload carries no order ID.
func ErrMissingOrderID() *AppError {
	return New("REQ_001", "Falta orderID", http.StatusBadRequest)
}

// ---- Payment validation (PAY) ----

// ErrPaymentNotCompleted is returned when PayPal reports the order in
// any status other than COMPLETED. No database writes happen.
func ErrPaymentNotCompleted() *AppError {
	return New("PAY_001", "Pago no completado", http.StatusBadRequest)
}

// ErrPaymentValidation covers every failure while talking to PayPal:
// token fetch, order lookup, or response decoding. The cause is not
// exposed to the caller.
func ErrPaymentValidation(err error) *AppError {
	return Wrap("PAY_002", "Error al validar el pago", http.StatusInternalServerError, err)
}

// ---- Persistence (DB) ----

// ErrTransactionInsert is returned when the transactions insert fails.
func ErrTransactionInsert(err error) *AppError {
	return Wrap("DB_001", "Error insertando en la base de datos", http.StatusInternalServerError, err)
}

// ErrSubscriptionUpsert is returned when the subscriptions upsert fails.
// Unlike the insert path it responds 400 and surfaces the raw storage
// error message, preserving the historical contract.
func ErrSubscriptionUpsert(err error) *AppError {
	return Wrap("DB_002", err.Error(), http.StatusBadRequest, err)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Demasiadas solicitudes", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Error al validar el pago", http.StatusInternalServerError, err)
}
