package document

import "fmt"

// InvalidConfigError is returned when an initiator config misses a required
// field or carries an unusable value.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// NewInvalidConfigError creates an error for an unusable initiator config.
func NewInvalidConfigError(field, reason string) *InvalidConfigError {
	return &InvalidConfigError{Field: field, Reason: reason}
}

// InvalidPaymentError is returned when a payment misses a required field or
// carries an unusable value. Reference classification failures are surfaced
// as reference package errors instead, so their contract codes stay intact.
type InvalidPaymentError struct {
	Name   string // counterparty name, may be empty when that is the problem
	Field  string
	Reason string
}

func (e *InvalidPaymentError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid payment: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid payment %q: %s: %s", e.Name, e.Field, e.Reason)
}

// NewInvalidPaymentError creates an error for an unusable payment.
func NewInvalidPaymentError(name, field, reason string) *InvalidPaymentError {
	return &InvalidPaymentError{Name: name, Field: field, Reason: reason}
}

// ValidationErrors wraps the validation errors of multiple payments.
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors occurred", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}
