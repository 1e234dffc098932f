package workflow

import "errors"

var (
	ErrIllegalTransition      = errors.New("illegal transition")
	ErrInvalidLineItem        = errors.New("invalid line item")
	ErrUnknownLineItem        = errors.New("unknown line item")
	ErrUnknownWorker          = errors.New("unknown worker")
	ErrNoConfirmedWork        = errors.New("no confirmed work")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrInsufficientPayment    = errors.New("insufficient payment")
	ErrInvalidPayment         = errors.New("invalid payment")
	ErrReasonRequired         = errors.New("cancel reason required")
	ErrInvalidOrder           = errors.New("invalid order")
	ErrOrderNotFound          = errors.New("order not found")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrStoreUnavailable       = errors.New("store unavailable")
)

// StoreError is a persistence failure. It matches both ErrStoreUnavailable
// and the underlying driver error.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return "store " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStoreUnavailable, e.Err}
}
