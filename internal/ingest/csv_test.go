package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidecash/sidecash/internal/common"
	"github.com/sidecash/sidecash/internal/model"
)

func TestReadCSV(t *testing.T) {
	input := `id,date,description,amount,direction
txn-1,2025-03-10,UBER BV WEEKLY EARNINGS,520.50,credit
txn-2,2025-03-12,CHEVRON 0094821,48.00,debit
txn-3,2025-03-14,GROCERY STORE,120.50,Debit
`

	txns, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "txn-1", txns[0].ID)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.Equal(t, "UBER BV WEEKLY EARNINGS", txns[0].Description)
	assert.InDelta(t, 520.50, txns[0].Amount, 1e-9)
	assert.Equal(t, model.DirectionCredit, txns[0].Direction)
	assert.NotEmpty(t, txns[0].Hash)

	// Direction is case-insensitive.
	assert.Equal(t, model.DirectionDebit, txns[2].Direction)
}

func TestReadCSV_Empty(t *testing.T) {
	txns, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	txns, err := ReadCSV(strings.NewReader(CSVHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "wrong header",
			input:     "id,date,memo,amount,type\n",
			wantField: "header",
		},
		{
			name:      "empty id",
			input:     CSVHeader + "\n,2025-03-10,UBER,100.00,credit\n",
			wantField: "id",
		},
		{
			name:      "malformed date",
			input:     CSVHeader + "\ntxn-1,03/10/2025,UBER,100.00,credit\n",
			wantField: "date",
		},
		{
			name:      "non-numeric amount",
			input:     CSVHeader + "\ntxn-1,2025-03-10,UBER,lots,credit\n",
			wantField: "amount",
		},
		{
			name:      "negative amount",
			input:     CSVHeader + "\ntxn-1,2025-03-10,UBER,-100.00,credit\n",
			wantField: "amount",
		},
		{
			name:      "unknown direction",
			input:     CSVHeader + "\ntxn-1,2025-03-10,UBER,100.00,sideways\n",
			wantField: "direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidInput)

			var vErr *common.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestReadCSV_WrongFieldCount(t *testing.T) {
	input := CSVHeader + "\ntxn-1,2025-03-10,UBER,100.00\n"
	_, err := ReadCSV(strings.NewReader(input))
	require.Error(t, err)
}
