package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"custodian/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   error = errors.New("user not found")
	ErrUserExists     error = errors.New("user already exists")
	ErrAPIKeyNotFound error = errors.New("api key not found")
)

// UserRepository stores users and their wallets. Wallet secrets are
// encrypted on write and decrypted on read; callers never see ciphertext.
type UserRepository struct {
	db    Storage
	codec Codec
}

func NewUserRepository(db Storage, codec Codec) *UserRepository {
	return &UserRepository{
		db:    db,
		codec: codec,
	}
}

func (r *UserRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &APIKey{}, &TransferRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, nu NewUser) (User, error) {
	encryptedKey, err := r.codec.Encrypt(nu.PrivateKey)
	if err != nil {
		return User{}, fmt.Errorf("encrypt private key: %w", err)
	}

	encryptedMnemonic, err := r.codec.Encrypt(nu.Mnemonic)
	if err != nil {
		return User{}, fmt.Errorf("encrypt mnemonic: %w", err)
	}

	user := User{
		ID:                  uuid.NewString(),
		Username:            nu.Username,
		PasswordHash:        nu.PasswordHash,
		Address:             nu.Address,
		EncryptedPrivateKey: encryptedKey,
		EncryptedMnemonic:   encryptedMnemonic,
		CreatedAt:           time.Now().UTC(),
	}

	if err := r.db.Create(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	return r.getUserBy(ctx, "id", userID)
}

// GetWalletSecret decrypts the wallet of userID.
func (r *UserRepository) GetWalletSecret(ctx context.Context, userID string) (WalletSecret, error) {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return WalletSecret{}, err
	}

	privateKey, err := r.codec.Decrypt(user.EncryptedPrivateKey)
	if err != nil {
		return WalletSecret{}, fmt.Errorf("decrypt private key: %w", err)
	}

	mnemonic, err := r.codec.Decrypt(user.EncryptedMnemonic)
	if err != nil {
		return WalletSecret{}, fmt.Errorf("decrypt mnemonic: %w", err)
	}

	return WalletSecret{
		Address:    user.Address,
		PrivateKey: privateKey,
		Mnemonic:   mnemonic,
	}, nil
}

// CreateAPIKey stores only the hash of rawKey.
func (r *UserRepository) CreateAPIKey(ctx context.Context, userID, rawKey, label string) (APIKey, error) {
	key := APIKey{
		ID:        uuid.NewString(),
		UserID:    userID,
		KeyHash:   r.codec.Hash(rawKey),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.Create(ctx, &key); err != nil {
		return APIKey{}, fmt.Errorf("create api key: %w", err)
	}

	return key, nil
}

func (r *UserRepository) GetUserByAPIKey(ctx context.Context, rawKey string) (User, error) {
	var key APIKey

	err := r.db.GetOneBy(ctx, "key_hash", r.codec.Hash(rawKey), &key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrAPIKeyNotFound
		}
		return User{}, fmt.Errorf("get api key by hash: %w", err)
	}

	return r.GetUserByID(ctx, key.UserID)
}

func (r *UserRepository) getUserBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}
