// Package loader reads YAML batch files describing an initiating party and
// its payments, and turns them into document configs and payments.
//
// A batch file names the pain.* schema to emit, the initiator config and a
// list of payments:
//
//	schema: pain.008.001.02
//	initiator:
//	  name: TestCreditor
//	  iban: NL50BANK1234567890
//	  bic: BANKNL2A
//	  creditor_id: NL08ZZZ502057730000
//	  currency: EUR
//	  batch: true
//	payments:
//	  - name: Test von Testenstein
//	    iban: NL50BANK1234567890
//	    bic: BANKNL2A
//	    amount: 1012
//	    type: FRST
//	    collection_date: 2026-09-01
//	    mandate_id: "1234"
//	    mandate_date: 2026-07-01
//	    description: Test transaction
//
// Amounts are integer euro cents. Dates use the YYYY-MM-DD layout.
package loader

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robinvdvleuten/sepa/document"
	"github.com/robinvdvleuten/sepa/reference"
)

// Batch is a parsed batch file: the schema to emit, the initiator config and
// the payments to queue. Payments are not validated here; the document
// builders validate them when they are added.
type Batch struct {
	Schema   string
	Config   document.Config
	Payments []*document.Payment
}

type batchFile struct {
	Schema    string        `yaml:"schema"`
	Initiator initiatorFile `yaml:"initiator"`
	Payments  []paymentFile `yaml:"payments"`
}

type initiatorFile struct {
	Name       string `yaml:"name"`
	IBAN       string `yaml:"iban"`
	BIC        string `yaml:"bic"`
	CreditorID string `yaml:"creditor_id"`
	Currency   string `yaml:"currency"`
	Batch      bool   `yaml:"batch"`
	Instrument string `yaml:"instrument"`
	Domestic   bool   `yaml:"domestic"`
}

type paymentFile struct {
	Name                    string `yaml:"name"`
	IBAN                    string `yaml:"iban"`
	BIC                     string `yaml:"bic"`
	Amount                  int64  `yaml:"amount"`
	Description             string `yaml:"description"`
	StructuredReference     string `yaml:"structured_reference"`
	StructuredReferenceType string `yaml:"structured_reference_type"`
	EndToEndID              string `yaml:"endtoend_id"`
	Type                    string `yaml:"type"`
	CollectionDate          string `yaml:"collection_date"`
	MandateID               string `yaml:"mandate_id"`
	MandateDate             string `yaml:"mandate_date"`
	ExecutionDate           string `yaml:"execution_date"`
	Instant                 bool   `yaml:"instant"`
}

// Load reads and parses the batch file at path.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	return LoadBytes(data)
}

// LoadBytes parses batch file contents. The schema defaults to the direct
// debit schema when the file does not name one.
func LoadBytes(data []byte) (*Batch, error) {
	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}

	schema := file.Schema
	if schema == "" {
		schema = document.DirectDebitSchema
	}
	switch schema {
	case document.DirectDebitSchema, document.TransferSchema:
	default:
		return nil, fmt.Errorf("unknown schema %q", schema)
	}

	batch := &Batch{
		Schema: schema,
		Config: document.Config{
			Name:       file.Initiator.Name,
			IBAN:       file.Initiator.IBAN,
			BIC:        file.Initiator.BIC,
			CreditorID: file.Initiator.CreditorID,
			Currency:   file.Initiator.Currency,
			Batch:      file.Initiator.Batch,
			Instrument: file.Initiator.Instrument,
			Domestic:   file.Initiator.Domestic,
		},
	}

	for i, p := range file.Payments {
		payment, err := p.toPayment()
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
		batch.Payments = append(batch.Payments, payment)
	}

	return batch, nil
}

func (p paymentFile) toPayment() (*document.Payment, error) {
	payment := &document.Payment{
		Name:                    p.Name,
		IBAN:                    p.IBAN,
		BIC:                     p.BIC,
		Amount:                  p.Amount,
		Description:             p.Description,
		StructuredReference:     p.StructuredReference,
		StructuredReferenceType: reference.Type(p.StructuredReferenceType),
		EndToEndID:              p.EndToEndID,
		Type:                    p.Type,
		MandateID:               p.MandateID,
		Instant:                 p.Instant,
	}

	var err error
	if payment.CollectionDate, err = parseDate("collection_date", p.CollectionDate); err != nil {
		return nil, err
	}
	if payment.MandateDate, err = parseDate("mandate_date", p.MandateDate); err != nil {
		return nil, err
	}
	if payment.ExecutionDate, err = parseDate("execution_date", p.ExecutionDate); err != nil {
		return nil, err
	}

	return payment, nil
}

// parseDate parses a YYYY-MM-DD value, treating an absent value as the zero
// time so the builders can decide whether the date is required.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q, expected YYYY-MM-DD", field, value)
	}
	return t, nil
}
