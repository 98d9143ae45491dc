package models

import "errors"

var (
	ErrConflictData            = errors.New("data conflicts with existing data")
	ErrDataNotFound            = errors.New("data not found")
	ErrInvalidID               = errors.New("invalid identifier")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("disallowed order status transition")
	ErrPaymentRejected         = errors.New("payment provider rejected the request")
	ErrPaymentUnavailable      = errors.New("payment provider unavailable")
	ErrNotAdmin                = errors.New("caller is not an admin")
	ErrInternalError           = errors.New("internal error")
)
