// Package document assembles ISO 20022 SEPA payment-instruction documents.
// It supports customer direct debit initiation (pain.008.001.02) and
// customer credit transfer initiation (pain.001.001.03).
//
// A builder is created from an initiator Config, payments are registered one
// by one with AddPayment, and Build emits the complete XML document. Every
// payment's remittance reference is classified and validated on AddPayment;
// a payment that fails validation is rejected outright and nothing is
// retained for it.
//
// Example usage:
//
//	dd, err := document.NewDirectDebit(document.Config{
//	    Name:       "TestCreditor",
//	    IBAN:       "NL50BANK1234567890",
//	    BIC:        "BANKNL2A",
//	    CreditorID: "DE26ZZZ00000000000",
//	    Currency:   "EUR",
//	    Batch:      true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = dd.AddPayment(&document.Payment{
//	    Name:           "Test von Testenstein",
//	    IBAN:           "NL50BANK1234567890",
//	    BIC:            "BANKNL2A",
//	    Amount:         1012,
//	    Type:           "FRST",
//	    CollectionDate: date,
//	    MandateID:      "1234",
//	    MandateDate:    mandateDate,
//	    Description:    "Test transaction",
//	})
package document

import (
	"time"

	"github.com/robinvdvleuten/sepa/reference"
)

// Schema identifiers for the supported document types.
const (
	// DirectDebitSchema is the customer direct debit initiation schema.
	DirectDebitSchema = "pain.008.001.02"

	// TransferSchema is the customer credit transfer initiation schema.
	TransferSchema = "pain.001.001.03"
)

// Config describes the initiating party of a document.
type Config struct {
	// Name of the initiating party (creditor for direct debits, debtor
	// for transfers).
	Name string

	// IBAN of the initiator's account.
	IBAN string

	// BIC of the initiator's bank.
	BIC string

	// CreditorID is the SEPA creditor identifier. Direct debits only.
	CreditorID string

	// Currency for all payments in the document, e.g. "EUR".
	Currency string

	// Batch groups payments into shared payment-information blocks.
	// When false every payment gets its own block.
	Batch bool

	// Instrument is the direct debit local instrument code.
	// Defaults to "CORE".
	Instrument string

	// Domestic omits the SEPA service level from transfers, for
	// domestic-only instant schemes.
	Domestic bool
}

// Payment is a single payment instruction. Exactly one of Description and
// StructuredReference must be set; they are mutually exclusive.
type Payment struct {
	// Name of the counterparty (debtor for direct debits, creditor for
	// transfers).
	Name string

	// IBAN of the counterparty's account.
	IBAN string

	// BIC of the counterparty's bank.
	BIC string

	// Amount in cents. Amounts are kept integral until rendering to
	// avoid floating point in monetary values.
	Amount int64

	// Description is the free-text (unstructured) remittance reference.
	Description string

	// StructuredReference is a raw structured remittance reference;
	// StructuredReferenceType declares its format.
	StructuredReference     string
	StructuredReferenceType reference.Type

	// EndToEndID identifies the payment end to end. Generated when empty.
	EndToEndID string

	// Direct debit fields.
	Type           string // sequence type: FRST, RCUR, OOFF or FNAL
	CollectionDate time.Time
	MandateID      string
	MandateDate    time.Time

	// Transfer fields.
	ExecutionDate time.Time
	Instant       bool
}

// referenceInput maps the payment's raw reference fields onto the reference
// subsystem's input record.
func (p *Payment) referenceInput() reference.Input {
	return reference.Input{
		Description: p.Description,
		Structured:  p.StructuredReference,
		Type:        p.StructuredReferenceType,
	}
}

// queuedPayment pairs an accepted payment with its classified reference.
// The reference is constructed once on AddPayment and consumed once when the
// document is built.
type queuedPayment struct {
	payment Payment
	ref     reference.Reference
}

// sequenceTypes are the direct debit sequence types accepted in Payment.Type.
var sequenceTypes = map[string]bool{
	"FRST": true,
	"RCUR": true,
	"OOFF": true,
	"FNAL": true,
}

const dateFormat = "2006-01-02"
