package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

var (
	ErrEmptyInput error = errors.New("input is empty")
	ErrDecryption error = errors.New("decryption failed")
	ErrMissingKey error = errors.New("encryption key is not configured")
)

var hkdfInfo = []byte("custodian wallet secret v1")

// Codec encrypts wallet secrets at rest with AES-256-GCM and hashes
// credentials for lookup.
type Codec struct {
	aead cipher.AEAD
	weak bool
}

// NewCodec builds a codec from the process-wide encryption key. A key of
// exactly 32 bytes (raw or 64 hex chars) is used as is; other lengths are
// stretched with HKDF-SHA256 and flagged as weak.
func NewCodec(key string) (*Codec, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	raw, weak, err := deriveKey(key)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer Zero(raw)

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &Codec{
		aead: aead,
		weak: weak,
	}, nil
}

// Weak reports whether the configured key was shorter than 256 bits.
func (c *Codec) Weak() bool {
	return c.weak
}

// Encrypt returns hex(nonce || ciphertext).
func (c *Codec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyInput
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any failure, including an empty result, is
// reported as ErrDecryption.
func (c *Codec) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", fmt.Errorf("%w: %w", ErrDecryption, ErrEmptyInput)
	}

	data, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode hex: %w", ErrDecryption, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) <= nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	plaintext, err := c.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	if len(plaintext) == 0 {
		return "", fmt.Errorf("%w: empty plaintext", ErrDecryption)
	}

	return string(plaintext), nil
}

// Hash is a deterministic one-way digest used to store API keys.
func (c *Codec) Hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Zero overwrites a secret buffer in place.
func Zero(b []byte) {
	clear(b)
}

func deriveKey(key string) ([]byte, bool, error) {
	if len(key) == 2*keySize {
		if decoded, err := hex.DecodeString(key); err == nil {
			return decoded, false, nil
		}
	}

	if len(key) == keySize {
		return []byte(key), false, nil
	}

	out := make([]byte, keySize)
	r := hkdf.New(sha256.New, []byte(key), nil, hkdfInfo)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, false, err
	}

	return out, len(key) < keySize, nil
}
