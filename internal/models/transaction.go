package models

import "time"

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeBuy        TransactionType = "buy"
	TransactionTypeSell       TransactionType = "sell"
)

// TransactionStatus is pending until it settles as completed or failed.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction represents a wallet movement in the mock history
type Transaction struct {
	ID     string            `json:"id"`
	Type   TransactionType   `json:"type"`
	Asset  string            `json:"asset"`
	Amount float64           `json:"amount"`
	Status TransactionStatus `json:"status"`
	Date   time.Time         `json:"date"`
	Fee    *float64          `json:"fee,omitempty"`
	TxID   string            `json:"txid,omitempty"`
	From   string            `json:"from,omitempty"`
	To     string            `json:"to,omitempty"`
}
