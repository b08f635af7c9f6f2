package repository

import "time"

type User struct {
	ID                  string    `gorm:"primaryKey;autoIncrement:false"`
	Username            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash        string    `gorm:"not null"`
	Address             string    `gorm:"size:42;uniqueIndex;not null"` // 0x + 40 hex chars
	EncryptedPrivateKey string    `gorm:"type:text;not null"`           // hex(nonce || ciphertext)
	EncryptedMnemonic   string    `gorm:"type:text;not null"`
	CreatedAt           time.Time `gorm:"not null"`
}

type APIKey struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	UserID    string    `gorm:"size:36;index;not null"`
	KeyHash   string    `gorm:"size:64;uniqueIndex;not null"` // sha256 hex
	Label     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`
}

type TransferStatus string

const (
	TransferSubmitted   TransferStatus = "submitted"
	TransferConfirmed   TransferStatus = "confirmed"
	TransferFailed      TransferStatus = "failed"
	TransferUnconfirmed TransferStatus = "unconfirmed"
)

// TransferRecord tracks a transaction from the moment it has a hash.
type TransferRecord struct {
	ID              uint           `gorm:"primaryKey"`
	TransactionHash string         `gorm:"size:66;uniqueIndex;not null"`
	From            string         `gorm:"size:42;index;not null"`
	To              string         `gorm:"size:42;not null"`
	Kind            string         `gorm:"size:16;not null"`
	Amount          string         `gorm:"size:100;not null"`
	Status          TransferStatus `gorm:"size:16;index;not null"`
	BlockNumber     uint64
	Error           string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser carries plaintext secrets into CreateUser; they are encrypted
// before anything is written.
type NewUser struct {
	Username     string
	PasswordHash string
	Address      string
	PrivateKey   string
	Mnemonic     string
}

// WalletSecret is the decrypted form of a user's wallet. It must not outlive
// the operation that needed it.
type WalletSecret struct {
	Address    string
	PrivateKey string
	Mnemonic   string
}
