package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NativeDecimals is the decimal exponent of the network's native unit.
const NativeDecimals uint8 = 18

// ToBaseUnits converts a human decimal amount ("1.5") into the integer unit
// of an asset with the given decimals. Amounts with more fractional digits
// than the asset supports are rejected rather than rounded.
func ToBaseUnits(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" || strings.ContainsAny(amount, "/eE") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	r, ok := new(big.Rat).SetString(amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative amount %q", ErrInvalidAmount, amount)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	if !r.IsInt() {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, amount, decimals)
	}

	return new(big.Int).Set(r.Num()), nil
}

// FromBaseUnits renders an integer amount as a decimal string without
// trailing zeros.
func FromBaseUnits(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	s := new(big.Rat).SetFrac(value, scale).FloatString(int(decimals))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// IsValidAddress reports whether s is a 0x-prefixed 20 byte hex address.
func IsValidAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

func parseAddress(s string) (common.Address, error) {
	if !IsValidAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}
