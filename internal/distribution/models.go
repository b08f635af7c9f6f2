package distribution

import (
	"encoding/json"

	"custodian/internal/wallet"
)

// TokensPerHour is the fixed payroll rate.
const TokensPerHour = 1

type Recipient struct {
	Name          string  `json:"name"`
	Identifier    string  `json:"identifier,omitempty"`
	WalletAddress string  `json:"walletAddress"`
	HoursWorked   float64 `json:"hoursWorked"`
}

type Allocation struct {
	HoursWorked       float64 `json:"hoursWorked"`
	TokensDistributed int64   `json:"tokensDistributed"`
	Rate              int64   `json:"rate"`
}

// TransferResult holds exactly one of Transaction and Error.
type TransferResult struct {
	Success      bool                `json:"success"`
	Recipient    Recipient           `json:"recipient"`
	Distribution Allocation          `json:"distribution"`
	Transaction  *wallet.Transaction `json:"transaction,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// Batch keeps results in input order.
type Batch struct {
	Results    []TransferResult `json:"results"`
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
}

func (b *Batch) append(result TransferResult) {
	b.Results = append(b.Results, result)
	if result.Success {
		b.Successful++
	} else {
		b.Failed++
	}
}

type EventType string

const (
	EventStart    EventType = "start"
	EventProgress EventType = "progress"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// Event is one progress notification. Only the fields relevant to Type are
// serialized.
type Event struct {
	Type        EventType
	Total       int
	Index       int
	Recipient   Recipient
	Status      Status
	Transaction *wallet.Transaction
	Error       string
	Successful  int
	Failed      int
}

func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case EventStart:
		return json.Marshal(struct {
			Type  EventType `json:"type"`
			Total int       `json:"total"`
		}{e.Type, e.Total})
	case EventProgress:
		return json.Marshal(struct {
			Type        EventType           `json:"type"`
			Index       int                 `json:"index"`
			Recipient   Recipient           `json:"recipient"`
			Status      Status              `json:"status"`
			Transaction *wallet.Transaction `json:"transaction,omitempty"`
			Error       string              `json:"error,omitempty"`
		}{e.Type, e.Index, e.Recipient, e.Status, e.Transaction, e.Error})
	case EventComplete:
		return json.Marshal(struct {
			Type       EventType `json:"type"`
			Total      int       `json:"total"`
			Successful int       `json:"successful"`
			Failed     int       `json:"failed"`
		}{e.Type, e.Total, e.Successful, e.Failed})
	default:
		return json.Marshal(struct {
			Type  EventType `json:"type"`
			Error string    `json:"error"`
		}{e.Type, e.Error})
	}
}
