package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "txn-1",
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "UBER BV WEEKLY EARNINGS",
		AccountID:   "acct-1",
		Direction:   DirectionCredit,
		Amount:      520.50,
	}
}

func TestTransaction_Validate(t *testing.T) {
	txn := validTransaction()
	require.NoError(t, txn.Validate())

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr string
	}{
		{
			name:    "missing ID",
			mutate:  func(txn *Transaction) { txn.ID = "" },
			wantErr: "ID is required",
		},
		{
			name:    "zero date",
			mutate:  func(txn *Transaction) { txn.Date = time.Time{} },
			wantErr: "date is required",
		},
		{
			name:    "negative amount",
			mutate:  func(txn *Transaction) { txn.Amount = -10 },
			wantErr: "non-negative",
		},
		{
			name:    "unknown direction",
			mutate:  func(txn *Transaction) { txn.Direction = "sideways" },
			wantErr: "credit or debit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)

			err := txn.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransaction_GenerateHash(t *testing.T) {
	txn := validTransaction()

	hash := txn.GenerateHash()
	assert.Len(t, hash, 64)

	// Deterministic for identical content, even under a different ID.
	other := validTransaction()
	other.ID = "txn-reimported"
	assert.Equal(t, hash, other.GenerateHash())

	// Any content change produces a different hash.
	changed := validTransaction()
	changed.Amount = 520.51
	assert.NotEqual(t, hash, changed.GenerateHash())

	flipped := validTransaction()
	flipped.Direction = DirectionDebit
	assert.NotEqual(t, hash, flipped.GenerateHash())
}
