package core

import (
	"custodian/internal/distribution"
	"custodian/internal/wallet"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Account is returned once, at registration.
type Account struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Address  string `json:"address"`
}

type WalletInfo struct {
	Address string `json:"address"`
	QRCode  string `json:"qrCode"` // base64 png
}

type Balances struct {
	Address       string `json:"address"`
	Native        string `json:"native"`
	Token         string `json:"token"`
	TokenContract string `json:"tokenContract"`
}

type WithdrawMessage struct {
	ToAddress     string      `json:"toAddress"`
	Amount        string      `json:"amount"`
	Kind          wallet.Kind `json:"kind"`
	TokenContract string      `json:"tokenContract"`
}

type DistributeMessage struct {
	Recipients    []distribution.Recipient `json:"recipients"`
	TokenContract string                   `json:"tokenContract"`
}

type SingleMessage struct {
	Recipient     distribution.Recipient `json:"recipient"`
	TokenContract string                 `json:"tokenContract"`
}

// APIKeyInfo carries the raw key. It is shown to the caller exactly once.
type APIKeyInfo struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
}
