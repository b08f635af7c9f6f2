package handler

import (
	"context"
	"net/http"

	"custodian/internal/core"
	"custodian/internal/distribution"
	"custodian/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CustodianService . CustodianService
type CustodianService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.Account, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	CreateAPIKey(ctx context.Context, userID, label string) (core.APIKeyInfo, error)
	Wallet(ctx context.Context, userID string) (core.WalletInfo, error)
	Balances(ctx context.Context, userID, tokenContract string) (core.Balances, error)
	Withdraw(ctx context.Context, userID string, msg core.WithdrawMessage) (wallet.Transaction, error)
	Distribute(ctx context.Context, userID string, msg core.DistributeMessage, sink distribution.ProgressSink) (distribution.Batch, error)
	WithdrawSingle(ctx context.Context, userID string, msg core.SingleMessage) (distribution.TransferResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
