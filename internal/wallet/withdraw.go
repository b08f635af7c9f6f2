package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"custodian/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// gas limit headroom over the node's estimate, as a fraction
var (
	gasHeadroomNum   = big.NewInt(12)
	gasHeadroomDenom = big.NewInt(10)
)

type transfer struct {
	key    *ecdsa.PrivateKey
	from   common.Address
	to     common.Address
	kind   Kind
	amount string
}

// WithdrawTokens sends amount (whole token units) of tokenContract to the
// given address and blocks until the transfer is mined. The token balance is
// checked first; nothing is submitted when it does not cover amount.
func (w *Wallet) WithdrawTokens(ctx context.Context, privateKey, toAddress, amount, tokenContract string) (Transaction, error) {
	t, err := w.prepare(privateKey, toAddress, amount, KindToken)
	if err != nil {
		return Transaction{}, err
	}
	defer zeroKey(t.key)

	if !ethereum.IsValidAddress(tokenContract) {
		return Transaction{}, fmt.Errorf("token contract: %w: %q", ErrInvalidAddress, tokenContract)
	}
	token := common.HexToAddress(tokenContract)

	release, err := w.locker.Lock(ctx, t.from.Hex())
	if err != nil {
		return Transaction{}, fmt.Errorf("lock signer: %w", err)
	}
	defer release()

	decimals, err := w.chain.TokenDecimals(ctx, token)
	if err != nil {
		return Transaction{}, err
	}

	value, err := positiveBaseUnits(amount, decimals)
	if err != nil {
		return Transaction{}, err
	}

	balance, err := w.chain.TokenBalanceOf(ctx, token, t.from)
	if err != nil {
		return Transaction{}, err
	}
	if balance.Cmp(value) < 0 {
		return Transaction{}, &InsufficientBalanceError{
			Asset:     KindToken,
			Available: ethereum.FromBaseUnits(balance, decimals),
			Required:  ethereum.FromBaseUnits(value, decimals),
		}
	}

	data, err := ethereum.PackTransfer(t.to, value)
	if err != nil {
		return Transaction{}, fmt.Errorf("pack transfer: %w", err)
	}

	gas, err := w.chain.EstimateGas(ctx, ethereum.CallRequest{
		From: t.from,
		To:   token,
		Data: data,
	})
	if err != nil {
		return Transaction{}, err
	}

	fee, err := w.chain.FeeData(ctx)
	if err != nil {
		return Transaction{}, err
	}

	return w.submit(ctx, t, ethereum.TransferRequest{
		Key:      t.key,
		To:       token,
		Value:    new(big.Int),
		Data:     data,
		GasLimit: withHeadroom(gas),
		Fee:      fee,
	})
}

// WithdrawNative sends amount of the native currency. The balance must cover
// amount plus the maximum fee of the sized transaction.
func (w *Wallet) WithdrawNative(ctx context.Context, privateKey, toAddress, amount string) (Transaction, error) {
	t, err := w.prepare(privateKey, toAddress, amount, KindNative)
	if err != nil {
		return Transaction{}, err
	}
	defer zeroKey(t.key)

	value, err := positiveBaseUnits(amount, ethereum.NativeDecimals)
	if err != nil {
		return Transaction{}, err
	}

	release, err := w.locker.Lock(ctx, t.from.Hex())
	if err != nil {
		return Transaction{}, fmt.Errorf("lock signer: %w", err)
	}
	defer release()

	balance, err := w.chain.NativeBalanceWei(ctx, t.from)
	if err != nil {
		return Transaction{}, err
	}

	gas, err := w.chain.EstimateGas(ctx, ethereum.CallRequest{
		From:  t.from,
		To:    t.to,
		Value: value,
	})
	if err != nil {
		return Transaction{}, err
	}
	gasLimit := withHeadroom(gas)

	fee, err := w.chain.FeeData(ctx)
	if err != nil {
		return Transaction{}, err
	}

	price := fee.GasPrice
	if fee.MaxFeePerGas != nil {
		price = fee.MaxFeePerGas
	}
	required := new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), price)
	required.Add(required, value)

	if balance.Cmp(required) < 0 {
		return Transaction{}, &InsufficientBalanceError{
			Asset:     KindNative,
			Available: ethereum.FromBaseUnits(balance, ethereum.NativeDecimals),
			Required:  ethereum.FromBaseUnits(required, ethereum.NativeDecimals),
		}
	}

	return w.submit(ctx, t, ethereum.TransferRequest{
		Key:      t.key,
		To:       t.to,
		Value:    value,
		GasLimit: gasLimit,
		Fee:      fee,
	})
}

func (w *Wallet) prepare(privateKey, toAddress, amount string, kind Kind) (transfer, error) {
	if !ethereum.IsValidAddress(toAddress) {
		return transfer{}, fmt.Errorf("recipient: %w: %q", ErrInvalidAddress, toAddress)
	}

	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return transfer{}, err
	}

	return transfer{
		key:    key,
		from:   crypto.PubkeyToAddress(key.PublicKey),
		to:     common.HexToAddress(toAddress),
		kind:   kind,
		amount: amount,
	}, nil
}

// submit must be called with the signer lock held.
func (w *Wallet) submit(ctx context.Context, t transfer, req ethereum.TransferRequest) (Transaction, error) {
	hash, err := w.chain.SubmitTransfer(ctx, req)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		TransactionHash: hash.Hex(),
		Amount:          t.amount,
		From:            t.from.Hex(),
		To:              t.to.Hex(),
		ExplorerURL:     w.explorerLink(hash.Hex()),
	}

	if err := w.journal.Submitted(ctx, Submission{
		TransactionHash: tx.TransactionHash,
		From:            tx.From,
		To:              tx.To,
		Kind:            t.kind,
		Amount:          t.amount,
	}); err != nil {
		w.logs.Errorw("failed to journal submitted transaction", "error", err, "hash", tx.TransactionHash)
	}

	w.logs.Infow("transaction submitted",
		"hash", tx.TransactionHash,
		"from", tx.From,
		"to", tx.To,
		"kind", t.kind,
		"amount", t.amount)

	receipt, err := w.chain.WaitForConfirmation(ctx, hash)
	if err != nil {
		w.journalWaitFailure(context.WithoutCancel(ctx), tx.TransactionHash, err)
		return tx, err
	}

	tx.BlockNumber = receipt.BlockNumber
	if err := w.journal.Confirmed(ctx, tx.TransactionHash, receipt.BlockNumber); err != nil {
		w.logs.Errorw("failed to journal confirmed transaction", "error", err, "hash", tx.TransactionHash)
	}

	w.logs.Infow("transaction confirmed", "hash", tx.TransactionHash, "block", receipt.BlockNumber)
	return tx, nil
}

// journalWaitFailure records a revert as failed. Any other error leaves the
// outcome open, so the transfer stays on the reconciliation list.
func (w *Wallet) journalWaitFailure(ctx context.Context, hash string, waitErr error) {
	if errors.Is(waitErr, ethereum.ErrReverted) {
		if err := w.journal.Failed(ctx, hash, waitErr.Error()); err != nil {
			w.logs.Errorw("failed to journal failed transaction", "error", err, "hash", hash)
		}
		return
	}

	if err := w.journal.Unconfirmed(ctx, hash, waitErr.Error()); err != nil {
		w.logs.Errorw("failed to journal unconfirmed transaction", "error", err, "hash", hash)
	}
	w.logs.Warnw("transaction outcome unknown", "error", waitErr, "hash", hash)
}

func positiveBaseUnits(amount string, decimals uint8) (*big.Int, error) {
	value, err := ethereum.ToBaseUnits(amount, decimals)
	if err != nil {
		return nil, err
	}
	if value.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return value, nil
}

func withHeadroom(gas uint64) uint64 {
	limit := new(big.Int).SetUint64(gas)
	limit.Mul(limit, gasHeadroomNum)
	limit.Quo(limit, gasHeadroomDenom)
	return limit.Uint64()
}
