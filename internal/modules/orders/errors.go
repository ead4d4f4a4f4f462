package orders

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotEditable       = errors.New("order no longer editable")
	ErrNoActor           = errors.New("acting staff identity required")
)
