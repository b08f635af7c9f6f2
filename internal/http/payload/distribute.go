package payload

import (
	"custodian/internal/core"
	"custodian/internal/distribution"

	"github.com/jellydator/validation"
)

const maxRecipients = 1000

// RecipientRequest is checked for shape only. A malformed address or a
// recipient with less than an hour is reported per recipient by the
// distribution itself.
type RecipientRequest struct {
	Name          string  `json:"name"`
	Identifier    string  `json:"identifier"`
	WalletAddress string  `json:"walletAddress"`
	HoursWorked   float64 `json:"hoursWorked"`
}

func (r RecipientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.WalletAddress, validation.Required),
		validation.Field(&r.HoursWorked, validation.Min(0.0), validation.Max(distribution.MaxHoursWorked)),
	)
}

func (r RecipientRequest) toRecipient() distribution.Recipient {
	return distribution.Recipient{
		Name:          r.Name,
		Identifier:    r.Identifier,
		WalletAddress: r.WalletAddress,
		HoursWorked:   r.HoursWorked,
	}
}

type DistributeRequest struct {
	Recipients    []RecipientRequest `json:"recipients"`
	TokenContract string             `json:"tokenContract"`
}

func (d DistributeRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Recipients, validation.Required, validation.Length(1, maxRecipients)),
		validation.Field(&d.TokenContract, validation.Match(addressRegex)),
	)
}

func (d DistributeRequest) ToMessage() core.DistributeMessage {
	recipients := make([]distribution.Recipient, len(d.Recipients))
	for i, r := range d.Recipients {
		recipients[i] = r.toRecipient()
	}

	return core.DistributeMessage{
		Recipients:    recipients,
		TokenContract: d.TokenContract,
	}
}

type SingleRequest struct {
	Recipient     RecipientRequest `json:"recipient"`
	TokenContract string           `json:"tokenContract"`
}

func (s SingleRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Recipient),
		validation.Field(&s.TokenContract, validation.Match(addressRegex)),
	)
}

func (s SingleRequest) ToMessage() core.SingleMessage {
	return core.SingleMessage{
		Recipient:     s.Recipient.toRecipient(),
		TokenContract: s.TokenContract,
	}
}
