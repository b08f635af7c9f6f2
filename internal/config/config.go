package config

import (
	"errors"
	"fmt"
	"time"

	"custodian/internal/ethereum"

	"github.com/kelseyhightower/envconfig"
)

// lockMargin covers the reads and submission done under the signer lock
// before the confirmation wait starts.
const lockMargin = time.Minute

var errInvalidValue error = errors.New("invalid configuration value")

// App is the process configuration. It is loaded once at startup and passed
// explicitly to every component that needs it.
type App struct {
	Port                string        `envconfig:"API_PORT" required:"true"`
	NodeURL             string        `envconfig:"ETH_NODE_URL" required:"true"`
	ChainID             int64         `envconfig:"CHAIN_ID" required:"true"`
	TokenContract       string        `envconfig:"TOKEN_CONTRACT_ADDRESS" required:"true"`
	EncryptionKey       string        `envconfig:"ENCRYPTION_KEY" required:"true"`
	DBConnectionURL     string        `envconfig:"DB_CONNECTION_URL" required:"true"`
	JWTSecret           string        `envconfig:"JWT_SECRET" required:"true"`
	ExplorerURL         string        `envconfig:"EXPLORER_URL" default:"https://etherscan.io"`
	ConfirmTimeout      time.Duration `envconfig:"CONFIRM_TIMEOUT" default:"3m"`
	ConfirmPollInterval time.Duration `envconfig:"CONFIRM_POLL_INTERVAL" default:"2s"`
	SignerLockTTL       time.Duration `envconfig:"SIGNER_LOCK_TTL" default:"5m"`
	RedisAddr           string        `envconfig:"REDIS_ADDR"`
	LogFile             string        `envconfig:"LOG_FILE"`
}

// NewApp reads the configuration from the environment and rejects values
// that would otherwise only fail mid-operation.
func NewApp() (App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return App{}, fmt.Errorf("process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return App{}, err
	}

	return cfg, nil
}

func (a App) Validate() error {
	if a.EncryptionKey == "" {
		return fmt.Errorf("%w: ENCRYPTION_KEY is empty", errInvalidValue)
	}
	if !ethereum.IsValidAddress(a.TokenContract) {
		return fmt.Errorf("%w: TOKEN_CONTRACT_ADDRESS %q is not an address", errInvalidValue, a.TokenContract)
	}
	if a.ChainID <= 0 {
		return fmt.Errorf("%w: CHAIN_ID must be positive, got %d", errInvalidValue, a.ChainID)
	}
	if a.ConfirmTimeout <= 0 {
		return fmt.Errorf("%w: CONFIRM_TIMEOUT must be positive", errInvalidValue)
	}
	if a.SignerLockTTL < a.ConfirmTimeout+lockMargin {
		return fmt.Errorf("%w: SIGNER_LOCK_TTL (%s) must be at least CONFIRM_TIMEOUT plus %s (%s)",
			errInvalidValue, a.SignerLockTTL, lockMargin, a.ConfirmTimeout+lockMargin)
	}
	return nil
}
