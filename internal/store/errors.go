package store

import "errors"

var (
	// ErrNotFound signals a missing row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation on email or phone.
	ErrDuplicate = errors.New("duplicate credential")
	// ErrEmptyOrder signals an order payload without line items.
	ErrEmptyOrder = errors.New("order has no items")
	// ErrTotalMismatch signals a declared total that does not equal the sum
	// of the line-item subtotals.
	ErrTotalMismatch = errors.New("total amount does not match item subtotals")
	// ErrInvalidStatus signals a status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidTransition signals an illegal status transition.
	ErrInvalidTransition = errors.New("illegal status transition")
)
