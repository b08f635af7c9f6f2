package wallet

import (
	"context"
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"custodian/internal/ethereum"
	"custodian/internal/secret"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/skip2/go-qrcode"
	"github.com/tyler-smith/go-bip39"
	"go.uber.org/zap"
)

const (
	entropyBits = 256
	qrSize      = 256
)

// m/44'/60'/0'/0/0
var derivationPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// Wallet executes custodial operations for one network. It never stores a
// private key: every call receives the decrypted key and zeroes it on return.
type Wallet struct {
	logs        *zap.SugaredLogger
	chain       ChainClient
	locker      SignerLocker
	journal     Journal
	explorerURL string
}

func NewWallet(logger *zap.SugaredLogger, chain ChainClient, locker SignerLocker, journal Journal, explorerURL string) *Wallet {
	if locker == nil {
		locker = NewMemoryLocker()
	}
	if journal == nil {
		journal = nopJournal{}
	}

	return &Wallet{
		logs:        logger,
		chain:       chain,
		locker:      locker,
		journal:     journal,
		explorerURL: strings.TrimRight(explorerURL, "/"),
	}
}

// Generate creates a new account from 256 bits of crypto/rand entropy.
func (w *Wallet) Generate() (Generated, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return Generated{}, fmt.Errorf("generate entropy: %w", err)
	}
	defer secret.Zero(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Generated{}, fmt.Errorf("create mnemonic: %w", err)
	}

	return FromMnemonic(mnemonic)
}

// FromMnemonic derives the first account on the standard Ethereum path.
func FromMnemonic(mnemonic string) (Generated, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return Generated{}, fmt.Errorf("mnemonic to seed: %w", err)
	}
	defer secret.Zero(seed)

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return Generated{}, fmt.Errorf("create master key: %w", err)
	}

	for _, index := range derivationPath {
		key, err = key.Derive(index)
		if err != nil {
			return Generated{}, fmt.Errorf("derive key: %w", err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return Generated{}, fmt.Errorf("get private key: %w", err)
	}

	ecdsaKey := priv.ToECDSA()
	raw := crypto.FromECDSA(ecdsaKey)
	defer secret.Zero(raw)
	defer zeroKey(ecdsaKey)

	return Generated{
		Address:    crypto.PubkeyToAddress(ecdsaKey.PublicKey).Hex(),
		PrivateKey: hex.EncodeToString(raw),
		Mnemonic:   mnemonic,
	}, nil
}

// DepositQR renders address as a base64 PNG QR code.
func (w *Wallet) DepositQR(address string) (string, error) {
	if !ethereum.IsValidAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("create qr code: %w", err)
	}

	png, err := qr.PNG(qrSize)
	if err != nil {
		return "", fmt.Errorf("render qr png: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

func (w *Wallet) NativeBalance(ctx context.Context, address string) (string, error) {
	return w.chain.NativeBalance(ctx, address)
}

func (w *Wallet) TokenBalance(ctx context.Context, address, tokenContract string) (string, error) {
	return w.chain.TokenBalance(ctx, address, tokenContract)
}

// Address returns the account controlled by privateKey.
func Address(privateKey string) (string, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	defer zeroKey(key)

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

func parsePrivateKey(privateKey string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	if trimmed == "" {
		return nil, ErrInvalidPrivateKey
	}

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

func zeroKey(key *ecdsa.PrivateKey) {
	if key == nil || key.D == nil {
		return
	}
	clear(key.D.Bits())
}

func (w *Wallet) explorerLink(hash string) string {
	return w.explorerURL + "/tx/" + hash
}

type nopJournal struct{}

func (nopJournal) Submitted(context.Context, Submission) error { return nil }
func (nopJournal) Confirmed(context.Context, string, uint64) error { return nil }
func (nopJournal) Failed(context.Context, string, string) error { return nil }
func (nopJournal) Unconfirmed(context.Context, string, string) error { return nil }
