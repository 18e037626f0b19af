package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidecash/sidecash/internal/model"
	"github.com/sidecash/sidecash/internal/service"
	"github.com/sidecash/sidecash/internal/storage"
	"github.com/sidecash/sidecash/internal/testutil"
)

func makeTxn(id string, date time.Time, description string, amount float64, direction model.TransactionDirection) model.Transaction {
	txn := model.Transaction{
		ID:          id,
		Date:        date,
		Description: description,
		Amount:      amount,
		Direction:   direction,
		AccountID:   "acct-1",
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestSQLiteStorage_SaveAndGetTransactions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txns := []model.Transaction{
		makeTxn("t1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "UBER BV WEEKLY EARNINGS", 520.50, model.DirectionCredit),
		makeTxn("t2", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), "CHEVRON 0094821", 48.00, model.DirectionDebit),
	}

	saved, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	got, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "UBER BV WEEKLY EARNINGS", got[0].Description)
	assert.InDelta(t, 520.50, got[0].Amount, 1e-9)
	assert.Equal(t, model.DirectionCredit, got[0].Direction)
	assert.Equal(t, "acct-1", got[0].AccountID)
}

func TestSQLiteStorage_DuplicatesSkippedByHash(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txn := makeTxn("t1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "UBER BV", 100, model.DirectionCredit)

	saved, err := store.SaveTransactions(ctx, []model.Transaction{txn})
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	// Same content under a different ID still dedupes on hash.
	dup := txn
	dup.ID = "t1-reimported"

	saved, err = store.SaveTransactions(ctx, []model.Transaction{dup})
	require.NoError(t, err)
	assert.Equal(t, 0, saved)

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_GetTransactionsFilters(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	txns := []model.Transaction{
		makeTxn("t1", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "UBER BV", 100, model.DirectionCredit),
		makeTxn("t2", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), "LYFT", 200, model.DirectionCredit),
		makeTxn("t3", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "CHEVRON", 50, model.DirectionDebit),
	}

	_, err := store.SaveTransactions(ctx, txns)
	require.NoError(t, err)

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	got, err := store.GetTransactions(ctx, service.TransactionFilter{StartDate: &from})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	got, err = store.GetTransactions(ctx, service.TransactionFilter{EndDate: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)

	credit := model.DirectionCredit
	got, err = store.GetTransactions(ctx, service.TransactionFilter{Direction: &credit})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = store.GetTransactions(ctx, service.TransactionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteStorage_GetTransactionsRejectsBadRange(t *testing.T) {
	store := testutil.SetupTestDB(t)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)

	_, err := store.GetTransactions(context.Background(), service.TransactionFilter{StartDate: &from, EndDate: &to})
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrInvalidDateRange)
}

func TestSQLiteStorage_SaveRejectsInvalidBatch(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	_, err := store.SaveTransactions(ctx, nil)
	require.Error(t, err)

	bad := makeTxn("t1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "UBER BV", 100, "sideways")
	_, err = store.SaveTransactions(ctx, []model.Transaction{bad})
	require.Error(t, err)
}
