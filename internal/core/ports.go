package core

import (
	"context"

	"custodian/internal/distribution"
	"custodian/internal/repository"
	"custodian/internal/wallet"
	tokenIssuer "custodian/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, nu repository.NewUser) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	GetWalletSecret(ctx context.Context, userID string) (repository.WalletSecret, error)
	CreateAPIKey(ctx context.Context, userID, rawKey, label string) (repository.APIKey, error)
	GetUserByAPIKey(ctx context.Context, rawKey string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Generate() (wallet.Generated, error)
	DepositQR(address string) (string, error)
	NativeBalance(ctx context.Context, address string) (string, error)
	TokenBalance(ctx context.Context, address, tokenContract string) (string, error)
	WithdrawTokens(ctx context.Context, privateKey, toAddress, amount, tokenContract string) (wallet.Transaction, error)
	WithdrawNative(ctx context.Context, privateKey, toAddress, amount string) (wallet.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Distributor . Distributor
type Distributor interface {
	Distribute(ctx context.Context, privateKey string, recipients []distribution.Recipient, tokenContract string, sink distribution.ProgressSink) (distribution.Batch, error)
	WithdrawSingle(ctx context.Context, privateKey string, recipient distribution.Recipient, tokenContract string) (distribution.TransferResult, error)
}
