package wallet

import (
	"context"
	"math/big"

	"custodian/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	NativeBalance(ctx context.Context, address string) (string, error)
	TokenBalance(ctx context.Context, address, tokenContract string) (string, error)
	NativeBalanceWei(ctx context.Context, account common.Address) (*big.Int, error)
	TokenBalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error)
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
	EstimateGas(ctx context.Context, req ethereum.CallRequest) (uint64, error)
	FeeData(ctx context.Context) (ethereum.FeeData, error)
	SubmitTransfer(ctx context.Context, req ethereum.TransferRequest) (common.Hash, error)
	WaitForConfirmation(ctx context.Context, hash common.Hash) (ethereum.Receipt, error)
}

// SignerLocker serializes submit+confirm cycles per signer address. The
// returned release func must be called exactly once.
type SignerLocker interface {
	Lock(ctx context.Context, signer string) (func(), error)
}

// Journal records every submitted transaction hash so an unconfirmed
// transfer can be reconciled later. Failed is for transactions known not to
// have succeeded; Unconfirmed is for waits that ended without an answer.
//
//counterfeiter:generate -o fake -fake-name Journal . Journal
type Journal interface {
	Submitted(ctx context.Context, sub Submission) error
	Confirmed(ctx context.Context, hash string, blockNumber uint64) error
	Failed(ctx context.Context, hash string, reason string) error
	Unconfirmed(ctx context.Context, hash string, reason string) error
}
