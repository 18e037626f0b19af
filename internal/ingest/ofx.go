package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/sidecash/sidecash/internal/model"
)

// OFXParser parses OFX/QFX statement files exported from a bank.
type OFXParser struct{}

// NewOFXParser creates a new OFX parser.
func NewOFXParser() *OFXParser {
	return &OFXParser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes formatting issues common in real bank exports:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func (p *OFXParser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRegex.ReplaceAllString(content, "$1>")
	return content
}

// Parse reads an OFX/QFX file and returns normalized transactions. The OFX
// amount sign becomes the transaction direction; Amount is always the
// absolute value.
func (p *OFXParser) Parse(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var txns []model.Transaction

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if ok && stmt.BankTranList != nil {
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txns = append(txns, p.convert(ofxTx, accountID))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if ok && stmt.BankTranList != nil {
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txns = append(txns, p.convert(ofxTx, accountID))
			}
		}
	}

	slog.Info("Parsed OFX file", "transactions", len(txns))

	return txns, nil
}

// convert maps one OFX transaction into the normalized model.
func (p *OFXParser) convert(ofxTx ofxgo.Transaction, accountID string) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	// OFX uses negative amounts for money leaving the account.
	direction := model.DirectionCredit
	if amount < 0 {
		direction = model.DirectionDebit
		amount = -amount
	}

	txn := model.Transaction{
		ID:          string(ofxTx.FiTID),
		Date:        ofxTx.DtPosted.Time,
		Description: p.description(ofxTx),
		Amount:      amount,
		Direction:   direction,
		AccountID:   accountID,
	}
	txn.Hash = txn.GenerateHash()

	return txn
}

// description picks the most informative text field from the OFX record.
// Classification matches on raw description text, so the payee name is
// preferred and the memo is appended when it adds detail.
func (p *OFXParser) description(tx ofxgo.Transaction) string {
	name := strings.TrimSpace(string(tx.Name))
	if tx.Payee != nil && tx.Payee.Name != "" {
		name = strings.TrimSpace(string(tx.Payee.Name))
	}

	memo := strings.TrimSpace(string(tx.Memo))
	if memo != "" && !strings.EqualFold(memo, name) {
		if name == "" {
			return memo
		}
		return name + " " + memo
	}

	return name
}
