package ethereum

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Options configures the service for a single network.
type Options struct {
	ChainID        int64
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// FeeData mirrors the fee fields a wallet needs to price a transaction.
// MaxFeePerGas and MaxPriorityFeePerGas are nil on networks without a base fee.
type FeeData struct {
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// CallRequest describes a call used for gas estimation.
type CallRequest struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Data  []byte
}

// TransferRequest is a fully sized transaction ready to be signed and sent.
type TransferRequest struct {
	Key      *ecdsa.PrivateKey
	To       common.Address
	Value    *big.Int
	Data     []byte
	GasLimit uint64
	Fee      FeeData
}

type Receipt struct {
	TransactionHash string
	BlockNumber     uint64
	GasUsed         uint64
}
