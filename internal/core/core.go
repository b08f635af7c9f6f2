package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"custodian/internal/distribution"
	"custodian/internal/repository"
	"custodian/internal/wallet"
	tokenIssuer "custodian/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const apiKeyPrefix = "ck_"

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrUserExists        error = errors.New("user already exists")
	ErrUnauthorized      error = errors.New("unauthorized")
	ErrUnsupportedKind   error = errors.New("unsupported withdrawal kind")
)

// Custodian is the entry point for everything a user can do with their
// custodial wallet. Wallet secrets are decrypted per call and dropped as
// soon as the call returns.
type Custodian struct {
	logs          *zap.SugaredLogger
	repo          Repository
	jwtIssuer     JWTIssuer
	wallet        WalletService
	distributor   Distributor
	tokenContract string
}

func NewCustodian(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, wallet WalletService, distributor Distributor, tokenContract string) *Custodian {
	return &Custodian{
		logs:          logger,
		repo:          repo,
		jwtIssuer:     jwt,
		wallet:        wallet,
		distributor:   distributor,
		tokenContract: tokenContract,
	}
}

// Register creates the user together with a fresh custodial wallet.
func (c *Custodian) Register(ctx context.Context, msg RegisterMessage) (Account, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	generated, err := c.wallet.Generate()
	if err != nil {
		return Account{}, fmt.Errorf("generate wallet: %w", err)
	}

	user, err := c.repo.CreateUser(ctx, repository.NewUser{
		Username:     msg.Username,
		PasswordHash: string(passwordHash),
		Address:      generated.Address,
		PrivateKey:   generated.PrivateKey,
		Mnemonic:     generated.Mnemonic,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return Account{}, ErrUserExists
		}
		return Account{}, fmt.Errorf("create user: %w", err)
	}

	c.logs.Infow("user registered", "userId", user.ID, "address", user.Address)

	return Account{
		UserID:   user.ID,
		Username: user.Username,
		Address:  user.Address,
	}, nil
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (c *Custodian) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := c.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken returns the user id the token was issued for.
func (c *Custodian) ValidateToken(token string) (string, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("%w: validate jwt token: %w", ErrUnauthorized, err)
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}

	return userID, nil
}

// CreateAPIKey issues a new random key for userID. Only its hash is stored.
func (c *Custodian) CreateAPIKey(ctx context.Context, userID, label string) (APIKeyInfo, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return APIKeyInfo{}, fmt.Errorf("generate api key: %w", err)
	}
	rawKey := apiKeyPrefix + hex.EncodeToString(buf)

	key, err := c.repo.CreateAPIKey(ctx, userID, rawKey, label)
	if err != nil {
		return APIKeyInfo{}, fmt.Errorf("create api key: %w", err)
	}

	c.logs.Infow("api key created", "userId", userID, "keyId", key.ID)

	return APIKeyInfo{
		ID:    key.ID,
		Key:   rawKey,
		Label: key.Label,
	}, nil
}

func (c *Custodian) ResolveAPIKey(ctx context.Context, rawKey string) (string, error) {
	user, err := c.repo.GetUserByAPIKey(ctx, rawKey)
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("get user by api key: %w", err)
	}

	return user.ID, nil
}

// Wallet returns the deposit address of userID and its QR code.
func (c *Custodian) Wallet(ctx context.Context, userID string) (WalletInfo, error) {
	user, err := c.user(ctx, userID)
	if err != nil {
		return WalletInfo{}, err
	}

	qr, err := c.wallet.DepositQR(user.Address)
	if err != nil {
		return WalletInfo{}, fmt.Errorf("deposit qr: %w", err)
	}

	return WalletInfo{
		Address: user.Address,
		QRCode:  qr,
	}, nil
}

// Balances reads the native and token balances of userID. An empty
// tokenContract means the configured token.
func (c *Custodian) Balances(ctx context.Context, userID, tokenContract string) (Balances, error) {
	user, err := c.user(ctx, userID)
	if err != nil {
		return Balances{}, err
	}

	balances := Balances{
		Address:       user.Address,
		TokenContract: c.token(tokenContract),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		native, err := c.wallet.NativeBalance(gctx, user.Address)
		if err != nil {
			return fmt.Errorf("native balance: %w", err)
		}
		balances.Native = native
		return nil
	})
	g.Go(func() error {
		token, err := c.wallet.TokenBalance(gctx, user.Address, balances.TokenContract)
		if err != nil {
			return fmt.Errorf("token balance: %w", err)
		}
		balances.Token = token
		return nil
	})

	if err := g.Wait(); err != nil {
		return Balances{}, err
	}

	return balances, nil
}

// Withdraw moves funds out of the wallet of userID. Kind defaults to tokens.
func (c *Custodian) Withdraw(ctx context.Context, userID string, msg WithdrawMessage) (wallet.Transaction, error) {
	kind := msg.Kind
	if kind == "" {
		kind = wallet.KindToken
	}
	if kind != wallet.KindToken && kind != wallet.KindNative {
		return wallet.Transaction{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	secret, err := c.secret(ctx, userID)
	if err != nil {
		return wallet.Transaction{}, err
	}

	c.logs.Infow("withdrawal requested",
		"userId", userID,
		"kind", kind,
		"to", msg.ToAddress,
		"amount", msg.Amount)

	var tx wallet.Transaction
	switch kind {
	case wallet.KindNative:
		tx, err = c.wallet.WithdrawNative(ctx, secret.PrivateKey, msg.ToAddress, msg.Amount)
	default:
		tx, err = c.wallet.WithdrawTokens(ctx, secret.PrivateKey, msg.ToAddress, msg.Amount, c.token(msg.TokenContract))
	}
	if err != nil {
		return tx, fmt.Errorf("withdraw %s: %w", kind, err)
	}

	return tx, nil
}

// Distribute pays every recipient from the wallet of userID, streaming
// progress to sink when one is given.
func (c *Custodian) Distribute(ctx context.Context, userID string, msg DistributeMessage, sink distribution.ProgressSink) (distribution.Batch, error) {
	secret, err := c.secret(ctx, userID)
	if err != nil {
		return distribution.Batch{}, err
	}

	c.logs.Infow("distribution requested", "userId", userID, "recipients", len(msg.Recipients))

	batch, err := c.distributor.Distribute(ctx, secret.PrivateKey, msg.Recipients, c.token(msg.TokenContract), sink)
	if err != nil {
		return batch, fmt.Errorf("distribute: %w", err)
	}

	return batch, nil
}

func (c *Custodian) WithdrawSingle(ctx context.Context, userID string, msg SingleMessage) (distribution.TransferResult, error) {
	secret, err := c.secret(ctx, userID)
	if err != nil {
		return distribution.TransferResult{}, err
	}

	result, err := c.distributor.WithdrawSingle(ctx, secret.PrivateKey, msg.Recipient, c.token(msg.TokenContract))
	if err != nil {
		return distribution.TransferResult{}, fmt.Errorf("withdraw single: %w", err)
	}

	return result, nil
}

func (c *Custodian) user(ctx context.Context, userID string) (repository.User, error) {
	user, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (c *Custodian) secret(ctx context.Context, userID string) (repository.WalletSecret, error) {
	secret, err := c.repo.GetWalletSecret(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.WalletSecret{}, ErrUserNotFound
		}
		return repository.WalletSecret{}, fmt.Errorf("get wallet secret: %w", err)
	}
	return secret, nil
}

func (c *Custodian) token(tokenContract string) string {
	if tokenContract == "" {
		return c.tokenContract
	}
	return tokenContract
}
