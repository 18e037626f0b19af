// Package ingest parses bank-feed exports into normalized transactions.
//
// The engine itself only consumes already-parsed records; this package is
// the hosting side that turns CSV uploads and OFX/QFX statement files into
// model.Transaction values.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sidecash/sidecash/internal/common"
	"github.com/sidecash/sidecash/internal/model"
)

// CSVHeader is the expected header row for transaction CSV uploads.
const CSVHeader = "id,date,description,amount,direction"

const (
	csvFields    = 5
	csvColID     = 0
	csvColDate   = 1
	csvColDesc   = 2
	csvColAmount = 3
	csvColDir    = 4

	dateFormat = "2006-01-02"
)

// ReadCSV reads transactions from a delimited-text upload. Malformed rows
// are input errors naming the offending field; no partial batch is ever
// returned.
func ReadCSV(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = csvFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transaction CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if strings.Join(records[0], ",") != CSVHeader {
		return nil, common.NewValidationError("header", "expected %q, got %q", CSVHeader, strings.Join(records[0], ","))
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

func parseCSVRow(rec []string) (model.Transaction, error) {
	id := strings.TrimSpace(rec[csvColID])
	if id == "" {
		return model.Transaction{}, common.NewValidationError("id", "must not be empty")
	}

	date, err := time.Parse(dateFormat, strings.TrimSpace(rec[csvColDate]))
	if err != nil {
		return model.Transaction{}, common.NewValidationError("date", "expected YYYY-MM-DD, got %q", rec[csvColDate])
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(rec[csvColAmount]), 64)
	if err != nil {
		return model.Transaction{}, common.NewValidationError("amount", "not a decimal number: %q", rec[csvColAmount])
	}
	if amount < 0 {
		return model.Transaction{}, common.NewValidationError("amount", "must be non-negative, got %.2f; direction carries the sign", amount)
	}

	var direction model.TransactionDirection
	switch strings.ToLower(strings.TrimSpace(rec[csvColDir])) {
	case "credit":
		direction = model.DirectionCredit
	case "debit":
		direction = model.DirectionDebit
	default:
		return model.Transaction{}, common.NewValidationError("direction", "must be credit or debit, got %q", rec[csvColDir])
	}

	txn := model.Transaction{
		ID:          id,
		Date:        date,
		Description: strings.TrimSpace(rec[csvColDesc]),
		Amount:      amount,
		Direction:   direction,
	}
	txn.Hash = txn.GenerateHash()

	return txn, nil
}
