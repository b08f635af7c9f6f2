package wallet_test

import (
	"context"
	"encoding/base64"
	"strings"

	"custodian/internal/ethereum"
	"custodian/internal/wallet"
	"custodian/internal/wallet/fake"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tyler-smith/go-bip39"
	"go.uber.org/zap"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var _ = Describe("Wallet", func() {
	var (
		w         *wallet.Wallet
		fakeChain *fake.ChainClient
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainClient)
		w = wallet.NewWallet(zap.NewNop().Sugar(), fakeChain, nil, nil, "https://explorer.test/")
	})

	Describe("Generate", func() {
		It("returns a consistent account", func() {
			generated, err := w.Generate()
			Expect(err).NotTo(HaveOccurred())

			Expect(ethereum.IsValidAddress(generated.Address)).To(BeTrue())
			Expect(bip39.IsMnemonicValid(generated.Mnemonic)).To(BeTrue())
			Expect(strings.Fields(generated.Mnemonic)).To(HaveLen(24))

			key, err := crypto.HexToECDSA(generated.PrivateKey)
			Expect(err).NotTo(HaveOccurred())
			Expect(crypto.PubkeyToAddress(key.PublicKey).Hex()).To(Equal(generated.Address))

			derived, err := wallet.FromMnemonic(generated.Mnemonic)
			Expect(err).NotTo(HaveOccurred())
			Expect(derived).To(Equal(generated))
		})

		It("never repeats itself", func() {
			seen := map[string]struct{}{}
			for range 20 {
				generated, err := w.Generate()
				Expect(err).NotTo(HaveOccurred())
				Expect(seen).NotTo(HaveKey(generated.Address))
				seen[generated.Address] = struct{}{}
			}
		})
	})

	Describe("FromMnemonic", func() {
		It("derives the first account on m/44'/60'/0'/0/0", func() {
			generated, err := wallet.FromMnemonic(testMnemonic)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.ToLower(generated.Address)).To(Equal("0x9858effd232b4033e47d90003d41ec34ecaeda94"))
		})

		It("rejects an invalid phrase", func() {
			_, err := wallet.FromMnemonic("abandon abandon abandon")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Address", func() {
		It("accepts keys with and without prefix", func() {
			generated, err := wallet.FromMnemonic(testMnemonic)
			Expect(err).NotTo(HaveOccurred())

			plain, err := wallet.Address(generated.PrivateKey)
			Expect(err).NotTo(HaveOccurred())
			prefixed, err := wallet.Address("0x" + generated.PrivateKey)
			Expect(err).NotTo(HaveOccurred())

			Expect(plain).To(Equal(generated.Address))
			Expect(prefixed).To(Equal(generated.Address))
		})

		It("rejects garbage", func() {
			_, err := wallet.Address("not-a-key")
			Expect(err).To(MatchError(wallet.ErrInvalidPrivateKey))

			_, err = wallet.Address("")
			Expect(err).To(MatchError(wallet.ErrInvalidPrivateKey))
		})
	})

	Describe("DepositQR", func() {
		It("renders a png", func() {
			encoded, err := w.DepositQR("0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
			Expect(err).NotTo(HaveOccurred())

			png, err := base64.StdEncoding.DecodeString(encoded)
			Expect(err).NotTo(HaveOccurred())
			Expect(png[:8]).To(Equal([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}))
		})

		It("rejects malformed addresses", func() {
			_, err := w.DepositQR("0x1234")
			Expect(err).To(MatchError(wallet.ErrInvalidAddress))
		})
	})

	Describe("balances", func() {
		It("delegates to the chain client", func() {
			fakeChain.NativeBalanceReturns("1.5", nil)
			fakeChain.TokenBalanceReturns("40", nil)

			native, err := w.NativeBalance(context.Background(), "0x01")
			Expect(err).NotTo(HaveOccurred())
			Expect(native).To(Equal("1.5"))

			token, err := w.TokenBalance(context.Background(), "0x01", "0x02")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("40"))

			_, addr, contract := fakeChain.TokenBalanceArgsForCall(0)
			Expect(addr).To(Equal("0x01"))
			Expect(contract).To(Equal("0x02"))
		})
	})
})
