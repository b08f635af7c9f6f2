package payload

import (
	"custodian/internal/core"
	"custodian/internal/wallet"

	"github.com/jellydator/validation"
)

type WithdrawRequest struct {
	ToAddress     string `json:"toAddress"`
	Amount        string `json:"amount"`
	Kind          string `json:"kind"`
	TokenContract string `json:"tokenContract"`
}

func (w WithdrawRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ToAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&w.Amount, validation.Required, validation.Match(amountRegex)),
		validation.Field(&w.Kind, validation.In(string(wallet.KindToken), string(wallet.KindNative))),
		validation.Field(&w.TokenContract, validation.Match(addressRegex)),
	)
}

func (w WithdrawRequest) ToMessage() core.WithdrawMessage {
	return core.WithdrawMessage{
		ToAddress:     w.ToAddress,
		Amount:        w.Amount,
		Kind:          wallet.Kind(w.Kind),
		TokenContract: w.TokenContract,
	}
}
