package wallet

import (
	"errors"
	"fmt"

	"custodian/internal/ethereum"
)

var (
	ErrInvalidPrivateKey error = errors.New("invalid private key")
	ErrInvalidAddress    error = ethereum.ErrInvalidAddress
	ErrInvalidAmount     error = ethereum.ErrInvalidAmount
)

// InsufficientBalanceError is returned before anything is submitted when the
// signer cannot cover the transfer. Amounts are in whole units.
type InsufficientBalanceError struct {
	Asset     Kind
	Available string
	Required  string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: available %s, required %s", e.Asset, e.Available, e.Required)
}
