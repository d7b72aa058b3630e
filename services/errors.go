package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart                  = errors.New("cart is empty")
	ErrInvalidQuantity            = errors.New("quantity must be at least 1")
	ErrMissingTransitionParameter = errors.New("missing transition parameter")
)

// Sub-reasons carried by InvalidTransitionError, for log lines and
// response bodies. The client only needs to know the transition failed;
// operators want to know why.
const (
	ReasonIllegalEdge = "illegal_edge"
	ReasonWrongRole   = "wrong_role"
	ReasonTerminal    = "terminal_state"
)

type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s (%s)", e.From, e.To, e.Reason)
}
