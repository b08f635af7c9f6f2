package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConfirmTimeout = 3 * time.Minute
	defaultPollInterval   = 2 * time.Second
)

// EthService is the only component that talks to the JSON-RPC endpoint.
// Reads are safe to share between requests; writes for one signer must be
// serialized by the caller.
type EthService struct {
	client         EthClient
	chainID        *big.Int
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

func NewEthService(ethClient EthClient, opts Options) *EthService {
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = defaultConfirmTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	return &EthService{
		client:         ethClient,
		chainID:        big.NewInt(opts.ChainID),
		confirmTimeout: opts.ConfirmTimeout,
		pollInterval:   opts.PollInterval,
	}
}

// NativeBalance returns the balance of address in whole native units.
func (s *EthService) NativeBalance(ctx context.Context, address string) (string, error) {
	account, err := parseAddress(address)
	if err != nil {
		return "", chainErr("native balance", err)
	}

	wei, err := s.NativeBalanceWei(ctx, account)
	if err != nil {
		return "", err
	}

	return FromBaseUnits(wei, NativeDecimals), nil
}

func (s *EthService) NativeBalanceWei(ctx context.Context, account common.Address) (*big.Int, error) {
	wei, err := s.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, chainErr("native balance", err)
	}
	return wei, nil
}

// TokenBalance returns the token balance of address in whole token units.
// balanceOf and decimals are independent reads and run concurrently.
func (s *EthService) TokenBalance(ctx context.Context, address, tokenContract string) (string, error) {
	owner, err := parseAddress(address)
	if err != nil {
		return "", chainErr("token balance", err)
	}
	token, err := parseAddress(tokenContract)
	if err != nil {
		return "", chainErr("token balance", err)
	}

	var (
		balance  *big.Int
		decimals uint8
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = s.TokenBalanceOf(gctx, token, owner)
		return err
	})
	g.Go(func() error {
		var err error
		decimals, err = s.TokenDecimals(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return FromBaseUnits(balance, decimals), nil
}

func (s *EthService) TokenBalanceOf(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	data, err := packBalanceOf(owner)
	if err != nil {
		return nil, chainErr("token balance", err)
	}

	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, chainErr("token balance", err)
	}

	balance, err := unpackBalanceOf(out)
	if err != nil {
		return nil, chainErr("token balance", fmt.Errorf("unpack balanceOf: %w", err))
	}
	return balance, nil
}

func (s *EthService) TokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	data, err := packDecimals()
	if err != nil {
		return 0, chainErr("token decimals", err)
	}

	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return 0, chainErr("token decimals", err)
	}

	decimals, err := unpackDecimals(out)
	if err != nil {
		return 0, chainErr("token decimals", fmt.Errorf("unpack decimals: %w", err))
	}
	return decimals, nil
}

func (s *EthService) EstimateGas(ctx context.Context, req CallRequest) (uint64, error) {
	to := req.To
	gas, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From:  req.From,
		To:    &to,
		Value: req.Value,
		Data:  req.Data,
	})
	if err != nil {
		return 0, chainErr("estimate gas", err)
	}
	return gas, nil
}

// FeeData returns the legacy gas price and, when the head block carries a
// base fee, EIP-1559 caps of 2*baseFee + tip.
func (s *EthService) FeeData(ctx context.Context) (FeeData, error) {
	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return FeeData{}, chainErr("fee data", err)
	}

	head, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return FeeData{}, chainErr("fee data", err)
	}

	fee := FeeData{GasPrice: gasPrice}
	if head == nil || head.BaseFee == nil {
		return fee, nil
	}

	tip, err := s.client.SuggestGasTipCap(ctx)
	if err != nil {
		return FeeData{}, chainErr("fee data", err)
	}

	maxFee := new(big.Int).Mul(head.BaseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)

	fee.MaxFeePerGas = maxFee
	fee.MaxPriorityFeePerGas = tip
	return fee, nil
}

// SubmitTransfer signs and broadcasts req. It returns as soon as the node
// accepted the transaction; use WaitForConfirmation to block until mined.
func (s *EthService) SubmitTransfer(ctx context.Context, req TransferRequest) (common.Hash, error) {
	if req.Key == nil {
		return common.Hash{}, chainErr("submit transfer", errors.New("missing signing key"))
	}

	from := crypto.PubkeyToAddress(req.Key.PublicKey)
	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, chainErr("submit transfer", fmt.Errorf("pending nonce: %w", err))
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	to := req.To
	var tx *types.Transaction
	if req.Fee.MaxFeePerGas != nil && req.Fee.MaxPriorityFeePerGas != nil {
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   s.chainID,
			Nonce:     nonce,
			GasTipCap: req.Fee.MaxPriorityFeePerGas,
			GasFeeCap: req.Fee.MaxFeePerGas,
			Gas:       req.GasLimit,
			To:        &to,
			Value:     value,
			Data:      req.Data,
		})
	} else {
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: req.Fee.GasPrice,
			Gas:      req.GasLimit,
			To:       &to,
			Value:    value,
			Data:     req.Data,
		})
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), req.Key)
	if err != nil {
		return common.Hash{}, chainErr("submit transfer", fmt.Errorf("sign tx: %w", err))
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, chainErr("submit transfer", err)
	}

	return signed.Hash(), nil
}

// WaitForConfirmation blocks until the transaction is mined, the configured
// timeout elapses or ctx is cancelled. Neither of the last two says anything
// about whether the transaction will still be included.
func (s *EthService) WaitForConfirmation(ctx context.Context, hash common.Hash) (Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return Receipt{}, chainErr("wait for confirmation", fmt.Errorf("%w: %s", ErrReverted, hash.Hex()))
			}
			var block uint64
			if receipt.BlockNumber != nil {
				block = receipt.BlockNumber.Uint64()
			}
			return Receipt{
				TransactionHash: hash.Hex(),
				BlockNumber:     block,
				GasUsed:         receipt.GasUsed,
			}, nil
		case err != nil && ctx.Err() == nil && !errors.Is(err, geth.NotFound):
			return Receipt{}, chainErr("wait for confirmation", err)
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Receipt{}, chainErr("wait for confirmation", fmt.Errorf("%w: %s", ErrConfirmationTimeout, hash.Hex()))
			}
			return Receipt{}, chainErr("wait for confirmation", ctx.Err())
		case <-ticker.C:
		}
	}
}
