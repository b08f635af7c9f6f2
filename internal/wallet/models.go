package wallet

// Generated is a freshly created custodial account. PrivateKey is hex
// encoded without the 0x prefix.
type Generated struct {
	Address    string
	PrivateKey string
	Mnemonic   string
}

// Transaction is the outcome of a confirmed transfer.
type Transaction struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	Amount          string `json:"amount"`
	From            string `json:"from"`
	To              string `json:"to"`
	ExplorerURL     string `json:"explorerUrl"`
}

type Kind string

const (
	KindToken  Kind = "tokens"
	KindNative Kind = "native"
)

// Submission is what the journal learns the moment a hash exists.
type Submission struct {
	TransactionHash string
	From            string
	To              string
	Kind            Kind
	Amount          string
}
