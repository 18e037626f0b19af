package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidecash/sidecash/internal/model"
)

// Sample OFX data for testing, in the SGML style real banks export.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20250301120000[0:GMT]
<DTEND>20250331120000[0:GMT]
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20250310120000[0:GMT]
<TRNAMT>520.50
<FITID>2025031001
<NAME>UBER BV WEEKLY EARNINGS
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250312120000[0:GMT]
<TRNAMT>-48.00
<FITID>2025031201
<NAME>CHEVRON 0094821
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20250331120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestOFXParser_Parse(t *testing.T) {
	parser := NewOFXParser()

	txns, err := parser.Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	credit := txns[0]
	assert.Equal(t, "2025031001", credit.ID)
	assert.Equal(t, "UBER BV WEEKLY EARNINGS", credit.Description)
	assert.InDelta(t, 520.50, credit.Amount, 1e-9)
	assert.Equal(t, model.DirectionCredit, credit.Direction)
	assert.Equal(t, "1234567890", credit.AccountID)
	assert.NotEmpty(t, credit.Hash)

	// Negative OFX amounts become positive-amount debits.
	debit := txns[1]
	assert.InDelta(t, 48.00, debit.Amount, 1e-9)
	assert.Equal(t, model.DirectionDebit, debit.Direction)

	for _, txn := range txns {
		assert.NoError(t, txn.Validate())
	}
}

func TestOFXParser_Preprocess(t *testing.T) {
	parser := NewOFXParser()

	// Leading blank lines and mixed-case severity both appear in real
	// bank exports and must not break parsing.
	messy := "\n\n  " + strings.Replace(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info</SEVERITY>", 2)

	txns, err := parser.Parse(strings.NewReader(messy))
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestOFXParser_Garbage(t *testing.T) {
	parser := NewOFXParser()

	_, err := parser.Parse(strings.NewReader("this is not an OFX file"))
	require.Error(t, err)
}
