package ethereum_test

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"time"

	"custodian/internal/ethereum"
	"custodian/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}
	decimalsSelector  = []byte{0x31, 0x3c, 0xe5, 0x67}
)

func word(v int64) []byte {
	return common.LeftPadBytes(big.NewInt(v).Bytes(), 32)
}

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
		owner      string
		token      string
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		owner = "0x1111111111111111111111111111111111111111"
		token = "0x2222222222222222222222222222222222222222"
		service = ethereum.NewEthService(fakeClient, ethereum.Options{
			ChainID:        5,
			ConfirmTimeout: time.Second,
			PollInterval:   time.Millisecond,
		})
	})

	Describe("NativeBalance", func() {
		var (
			balance string
			address string
			err     error
		)

		BeforeEach(func() {
			address = owner
			wei, _ := new(big.Int).SetString("1500000000000000000", 10)
			fakeClient.BalanceAtReturns(wei, nil)
		})

		JustBeforeEach(func() {
			balance, err = service.NativeBalance(ctx, address)
		})

		It("converts wei into whole units", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("1.5"))

			Expect(fakeClient.BalanceAtCallCount()).To(Equal(1))
			_, argAddr, argBlock := fakeClient.BalanceAtArgsForCall(0)
			Expect(argAddr).To(Equal(common.HexToAddress(owner)))
			Expect(argBlock).To(BeNil())
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				address = "0x123"
			})

			It("returns a chain error without calling the node", func() {
				var chainErr *ethereum.ChainError
				Expect(errors.As(err, &chainErr)).To(BeTrue())
				Expect(err).To(MatchError(ethereum.ErrInvalidAddress))
				Expect(fakeClient.BalanceAtCallCount()).To(BeZero())
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakeClient.BalanceAtReturns(nil, testErr)
			})

			It("wraps the failure in a chain error", func() {
				var chainErr *ethereum.ChainError
				Expect(errors.As(err, &chainErr)).To(BeTrue())
				Expect(chainErr.Op).To(Equal("native balance"))
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("TokenBalance", func() {
		var (
			balance     string
			err         error
			balanceErr  error
			decimalsErr error
		)

		BeforeEach(func() {
			balanceErr = nil
			decimalsErr = nil
			fakeClient.CallContractStub = func(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
				Expect(msg.To).NotTo(BeNil())
				Expect(*msg.To).To(Equal(common.HexToAddress(token)))
				switch {
				case bytes.HasPrefix(msg.Data, balanceOfSelector):
					return word(12_500_000), balanceErr
				case bytes.HasPrefix(msg.Data, decimalsSelector):
					return word(6), decimalsErr
				}
				return nil, errors.New("unexpected call")
			}
		})

		JustBeforeEach(func() {
			balance, err = service.TokenBalance(ctx, owner, token)
		})

		It("reads balanceOf and decimals and converts", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("12.5"))
			Expect(fakeClient.CallContractCallCount()).To(Equal(2))
		})

		When("decimals cannot be read", func() {
			BeforeEach(func() {
				decimalsErr = testErr
			})

			It("returns a chain error", func() {
				var chainErr *ethereum.ChainError
				Expect(errors.As(err, &chainErr)).To(BeTrue())
				Expect(err).To(MatchError(testErr))
			})
		})

		When("the contract reverts on balanceOf", func() {
			BeforeEach(func() {
				balanceErr = testErr
			})

			It("returns a chain error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(balance).To(BeEmpty())
			})
		})
	})

	Describe("FeeData", func() {
		var (
			fee ethereum.FeeData
			err error
		)

		BeforeEach(func() {
			fakeClient.SuggestGasPriceReturns(big.NewInt(30), nil)
			fakeClient.SuggestGasTipCapReturns(big.NewInt(2), nil)
		})

		JustBeforeEach(func() {
			fee, err = service.FeeData(ctx)
		})

		When("the head block has a base fee", func() {
			BeforeEach(func() {
				fakeClient.HeaderByNumberReturns(&types.Header{BaseFee: big.NewInt(10)}, nil)
			})

			It("returns EIP-1559 caps", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fee.GasPrice).To(Equal(big.NewInt(30)))
				Expect(fee.MaxPriorityFeePerGas).To(Equal(big.NewInt(2)))
				Expect(fee.MaxFeePerGas).To(Equal(big.NewInt(22)))
			})
		})

		When("the network has no base fee", func() {
			BeforeEach(func() {
				fakeClient.HeaderByNumberReturns(&types.Header{}, nil)
			})

			It("returns only the gas price", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fee.GasPrice).To(Equal(big.NewInt(30)))
				Expect(fee.MaxFeePerGas).To(BeNil())
				Expect(fakeClient.SuggestGasTipCapCallCount()).To(BeZero())
			})
		})

		When("the gas price cannot be fetched", func() {
			BeforeEach(func() {
				fakeClient.SuggestGasPriceReturns(nil, testErr)
			})

			It("returns a chain error", func() {
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("SubmitTransfer", func() {
		var (
			req  ethereum.TransferRequest
			hash common.Hash
			err  error
		)

		BeforeEach(func() {
			key, keyErr := crypto.GenerateKey()
			Expect(keyErr).NotTo(HaveOccurred())

			fakeClient.PendingNonceAtReturns(7, nil)
			req = ethereum.TransferRequest{
				Key:      key,
				To:       common.HexToAddress(owner),
				Value:    big.NewInt(1000),
				GasLimit: 21000,
				Fee: ethereum.FeeData{
					GasPrice:             big.NewInt(30),
					MaxFeePerGas:         big.NewInt(22),
					MaxPriorityFeePerGas: big.NewInt(2),
				},
			}
		})

		JustBeforeEach(func() {
			hash, err = service.SubmitTransfer(ctx, req)
		})

		It("signs a dynamic fee transaction with the pending nonce", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))

			_, tx := fakeClient.SendTransactionArgsForCall(0)
			Expect(tx.Hash()).To(Equal(hash))
			Expect(tx.Type()).To(Equal(uint8(types.DynamicFeeTxType)))
			Expect(tx.Nonce()).To(Equal(uint64(7)))
			Expect(tx.Gas()).To(Equal(uint64(21000)))
			Expect(*tx.To()).To(Equal(common.HexToAddress(owner)))
			Expect(tx.ChainId()).To(Equal(big.NewInt(5)))

			sender, sErr := types.Sender(types.LatestSignerForChainID(big.NewInt(5)), tx)
			Expect(sErr).NotTo(HaveOccurred())
			Expect(sender).To(Equal(crypto.PubkeyToAddress(req.Key.PublicKey)))

			_, nonceAddr := fakeClient.PendingNonceAtArgsForCall(0)
			Expect(nonceAddr).To(Equal(sender))
		})

		When("the network has no EIP-1559 fees", func() {
			BeforeEach(func() {
				req.Fee.MaxFeePerGas = nil
				req.Fee.MaxPriorityFeePerGas = nil
			})

			It("sends a legacy transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				_, tx := fakeClient.SendTransactionArgsForCall(0)
				Expect(tx.Type()).To(Equal(uint8(types.LegacyTxType)))
				Expect(tx.GasPrice()).To(Equal(big.NewInt(30)))
			})
		})

		When("the node rejects the transaction", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(testErr)
			})

			It("returns a chain error", func() {
				var chainErr *ethereum.ChainError
				Expect(errors.As(err, &chainErr)).To(BeTrue())
				Expect(err).To(MatchError(testErr))
				Expect(hash).To(Equal(common.Hash{}))
			})
		})

		When("no key is provided", func() {
			BeforeEach(func() {
				req.Key = nil
			})

			It("fails before talking to the node", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakeClient.PendingNonceAtCallCount()).To(BeZero())
			})
		})
	})

	Describe("WaitForConfirmation", func() {
		var (
			hash    common.Hash
			receipt ethereum.Receipt
			err     error
		)

		BeforeEach(func() {
			hash = common.HexToHash("0xabc")
		})

		JustBeforeEach(func() {
			receipt, err = service.WaitForConfirmation(ctx, hash)
		})

		When("the transaction is mined after a few polls", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(2, &types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockNumber: big.NewInt(1234),
					GasUsed:     21000,
				}, nil)
			})

			It("returns the block number", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.BlockNumber).To(Equal(uint64(1234)))
				Expect(receipt.TransactionHash).To(Equal(hash.Hex()))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(3))
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockNumber: big.NewInt(1),
				}, nil)
			})

			It("returns a chain error", func() {
				Expect(err).To(MatchError(ethereum.ErrReverted))
			})
		})

		When("the transaction is never mined", func() {
			BeforeEach(func() {
				service = ethereum.NewEthService(fakeClient, ethereum.Options{
					ChainID:        5,
					ConfirmTimeout: 20 * time.Millisecond,
					PollInterval:   time.Millisecond,
				})
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("gives up with a timeout", func() {
				Expect(err).To(MatchError(ethereum.ErrConfirmationTimeout))
				var chainErr *ethereum.ChainError
				Expect(errors.As(err, &chainErr)).To(BeTrue())
			})
		})

		When("the receipt lookup fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, testErr)
			})

			It("returns a chain error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(1))
			})
		})
	})
})
