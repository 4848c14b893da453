package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/sepa/document"
	"github.com/robinvdvleuten/sepa/reference"
)

const debitBatch = `
schema: pain.008.001.02
initiator:
  name: TestCreditor
  iban: NL50BANK1234567890
  bic: BANKNL2A
  creditor_id: NL08ZZZ502057730000
  currency: EUR
  batch: true
payments:
  - name: Test von Testenstein
    iban: NL50BANK1234567890
    bic: BANKNL2A
    amount: 1012
    type: FRST
    collection_date: 2026-09-01
    mandate_id: "1234"
    mandate_date: 2026-07-01
    description: Test transaction
  - name: Test du Structuré
    iban: NL50BANK1234567890
    bic: BANKNL2A
    amount: 5000
    type: RCUR
    collection_date: 2026-09-01
    mandate_id: "5678"
    mandate_date: 2026-07-01
    structured_reference: 000/0000/00196
    structured_reference_type: BBA
`

func TestLoadBytesDirectDebit(t *testing.T) {
	batch, err := LoadBytes([]byte(debitBatch))
	assert.NoError(t, err)

	assert.Equal(t, document.DirectDebitSchema, batch.Schema)
	assert.Equal(t, "TestCreditor", batch.Config.Name)
	assert.Equal(t, "NL08ZZZ502057730000", batch.Config.CreditorID)
	assert.True(t, batch.Config.Batch)
	assert.Equal(t, 2, len(batch.Payments))

	first := batch.Payments[0]
	assert.Equal(t, int64(1012), first.Amount)
	assert.Equal(t, "FRST", first.Type)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), first.CollectionDate)
	assert.Equal(t, "Test transaction", first.Description)

	second := batch.Payments[1]
	assert.Equal(t, "000/0000/00196", second.StructuredReference)
	assert.Equal(t, reference.TypeBBA, second.StructuredReferenceType)
}

func TestLoadBytesTransfer(t *testing.T) {
	batch, err := LoadBytes([]byte(`
schema: pain.001.001.03
initiator:
  name: TestDebtor
  iban: NL50BANK1234567890
  bic: BANKNL2A
  currency: EUR
payments:
  - name: Test del Transfero
    iban: NL50BANK1234567890
    bic: BANKNL2A
    amount: 1012
    execution_date: 2026-09-01
    instant: true
    description: Test transaction
`))
	assert.NoError(t, err)

	assert.Equal(t, document.TransferSchema, batch.Schema)
	assert.Equal(t, 1, len(batch.Payments))
	assert.True(t, batch.Payments[0].Instant)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), batch.Payments[0].ExecutionDate)
}

func TestLoadBytesDefaultsSchema(t *testing.T) {
	batch, err := LoadBytes([]byte(`
initiator:
  name: TestCreditor
`))
	assert.NoError(t, err)
	assert.Equal(t, document.DirectDebitSchema, batch.Schema)
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "unknown schema",
			input:   "schema: pain.002.001.01\n",
			message: `unknown schema "pain.002.001.01"`,
		},
		{
			name:    "malformed yaml",
			input:   "initiator: [\n",
			message: "parsing batch file",
		},
		{
			name: "bad date",
			input: `
payments:
  - name: Test
    collection_date: 01-09-2026
`,
			message: `payment 1: collection_date: invalid date "01-09-2026"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.input))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(debitBatch), 0o644))

	batch, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(batch.Payments))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
