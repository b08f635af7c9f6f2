package ethereum

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAddress      error = errors.New("invalid address")
	ErrInvalidAmount       error = errors.New("invalid amount")
	ErrConfirmationTimeout error = errors.New("timed out waiting for confirmation")
	ErrReverted            error = errors.New("transaction reverted")
)

// ChainError is returned for every failure that happens while talking to the
// network: unreachable node, rejected call, reverted transaction.
type ChainError struct {
	Op  string
	Err error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("chain %s: %s", e.Op, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

func chainErr(op string, err error) error {
	return &ChainError{Op: op, Err: err}
}
