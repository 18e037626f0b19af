package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransactionDirection indicates which way money moved on the account.
type TransactionDirection string

// Transaction direction constants.
const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

// Transaction represents a single financial transaction from any source.
// Amount is always non-negative; the sign of the cash flow is carried by
// Direction, never by the amount itself.
type Transaction struct {
	Date        time.Time
	ID          string
	Description string // Raw transaction description from the bank feed
	AccountID   string
	Hash        string
	Direction   TransactionDirection
	Amount      float64
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.Direction,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// Validate checks the structural invariants of a transaction.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	if t.Amount < 0 {
		return fmt.Errorf("transaction amount must be non-negative, got %.2f", t.Amount)
	}
	if t.Direction != DirectionCredit && t.Direction != DirectionDebit {
		return fmt.Errorf("transaction direction must be credit or debit, got %q", t.Direction)
	}
	return nil
}
