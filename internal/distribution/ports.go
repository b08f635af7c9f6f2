package distribution

import (
	"context"

	"custodian/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Transferer . Transferer
type Transferer interface {
	WithdrawTokens(ctx context.Context, privateKey, toAddress, amount, tokenContract string) (wallet.Transaction, error)
}

// ProgressSink receives events in order, one call per event, as soon as
// each outcome is known.
//
//counterfeiter:generate -o fake -fake-name ProgressSink . ProgressSink
type ProgressSink interface {
	Send(event Event) error
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(event Event) error

func (f SinkFunc) Send(event Event) error {
	return f(event)
}
