package document

import (
	"encoding/xml"
	"time"

	"github.com/robinvdvleuten/sepa/reference"
)

// DirectDebit assembles a pain.008.001.02 customer direct debit initiation
// document for a single creditor.
type DirectDebit struct {
	config Config
	queue  []queuedPayment
	now    func() time.Time
}

// NewDirectDebit creates a direct debit builder for the given creditor
// config. The local instrument defaults to "CORE".
func NewDirectDebit(cfg Config) (*DirectDebit, error) {
	if err := validateDebitConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Instrument == "" {
		cfg.Instrument = "CORE"
	}

	return &DirectDebit{config: cfg, now: time.Now}, nil
}

func validateDebitConfig(cfg Config) error {
	switch {
	case cfg.Name == "":
		return NewInvalidConfigError("name", "creditor name is required")
	case cfg.IBAN == "":
		return NewInvalidConfigError("iban", "creditor IBAN is required")
	case cfg.BIC == "":
		return NewInvalidConfigError("bic", "creditor BIC is required")
	case cfg.CreditorID == "":
		return NewInvalidConfigError("creditor_id", "SEPA creditor identifier is required")
	case cfg.Currency == "":
		return NewInvalidConfigError("currency", "currency is required")
	}
	return nil
}

// AddPayment validates p, classifies its remittance reference and queues it
// for the next Build. A payment that fails validation is rejected outright;
// no partial state is retained and the builder stays usable.
func (d *DirectDebit) AddPayment(p *Payment) error {
	if err := validateDebitPayment(p); err != nil {
		return err
	}

	ref, err := reference.Classify(p.referenceInput())
	if err != nil {
		return err
	}

	queued := *p
	if queued.EndToEndID == "" {
		queued.EndToEndID = newEndToEndID()
	}

	d.queue = append(d.queue, queuedPayment{payment: queued, ref: ref})
	return nil
}

func validateDebitPayment(p *Payment) error {
	switch {
	case p.Name == "":
		return NewInvalidPaymentError("", "name", "debtor name is required")
	case p.IBAN == "":
		return NewInvalidPaymentError(p.Name, "iban", "debtor IBAN is required")
	case p.BIC == "":
		return NewInvalidPaymentError(p.Name, "bic", "debtor BIC is required")
	case p.Amount <= 0:
		return NewInvalidPaymentError(p.Name, "amount", "amount must be positive")
	case !sequenceTypes[p.Type]:
		return NewInvalidPaymentError(p.Name, "type", "sequence type must be FRST, RCUR, OOFF or FNAL")
	case p.CollectionDate.IsZero():
		return NewInvalidPaymentError(p.Name, "collection_date", "collection date is required")
	case p.MandateID == "":
		return NewInvalidPaymentError(p.Name, "mandate_id", "mandate identifier is required")
	case p.MandateDate.IsZero():
		return NewInvalidPaymentError(p.Name, "mandate_date", "mandate signature date is required")
	}
	return nil
}

// Count returns the number of queued payments.
func (d *DirectDebit) Count() int { return len(d.queue) }

// Build assembles the XML document for all queued payments. In batch mode
// payments sharing a sequence type and collection date are grouped into one
// payment-information block; otherwise every payment gets its own block.
func (d *DirectDebit) Build() ([]byte, error) {
	now := d.now()

	doc := &debitDocument{
		Namespace:    schemaNamespace(DirectDebitSchema),
		XSINamespace: xsiNamespace,
		Initiation: debitInitiation{
			GroupHeader: groupHeader{
				MessageID:            newMessageID(now),
				CreationDateTime:     now.Format("2006-01-02T15:04:05"),
				NumberOfTransactions: len(d.queue),
				ControlSum:           FormatCents(sumCents(d.queue)),
				InitiatingParty:      partyName{Name: d.config.Name},
			},
		},
	}

	for _, batch := range d.batches() {
		doc.Initiation.PaymentInfos = append(doc.Initiation.PaymentInfos, d.paymentInfo(batch))
	}

	return marshalDocument(doc)
}

// batches groups queued payments into payment-information blocks, keeping
// insertion order stable.
func (d *DirectDebit) batches() [][]queuedPayment {
	if !d.config.Batch {
		batches := make([][]queuedPayment, 0, len(d.queue))
		for _, q := range d.queue {
			batches = append(batches, []queuedPayment{q})
		}
		return batches
	}

	var keys []string
	grouped := make(map[string][]queuedPayment)
	for _, q := range d.queue {
		key := q.payment.Type + "/" + q.payment.CollectionDate.Format(dateFormat)
		if _, ok := grouped[key]; !ok {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], q)
	}

	batches := make([][]queuedPayment, 0, len(keys))
	for _, key := range keys {
		batches = append(batches, grouped[key])
	}
	return batches
}

func (d *DirectDebit) paymentInfo(batch []queuedPayment) *debitPaymentInfo {
	first := batch[0].payment

	info := &debitPaymentInfo{
		ID:                   newPaymentInfoID(d.config.Name),
		Method:               "DD",
		BatchBooking:         d.config.Batch,
		NumberOfTransactions: len(batch),
		ControlSum:           FormatCents(sumCents(batch)),
		TypeInfo: debitTypeInfo{
			ServiceLevel:    codeElement{Code: "SEPA"},
			LocalInstrument: codeElement{Code: d.config.Instrument},
			SequenceType:    first.Type,
		},
		CollectionDate:  first.CollectionDate.Format(dateFormat),
		Creditor:        partyName{Name: d.config.Name},
		CreditorAccount: account{ID: accountID{IBAN: d.config.IBAN}},
		CreditorAgent:   agent{FinancialInstitution: financialInstitution{BIC: d.config.BIC}},
		ChargeBearer:    "SLEV",
		CreditorScheme: creditorScheme{
			ID: creditorSchemeID{
				PrivateID: privateID{
					Other: schemeOther{
						ID:         d.config.CreditorID,
						SchemeName: proprietaryName{Proprietary: "SEPA"},
					},
				},
			},
		},
	}

	for _, q := range batch {
		info.Transactions = append(info.Transactions, &debitTransaction{
			PaymentID: paymentID{EndToEndID: q.payment.EndToEndID},
			Amount: instructedAmount{
				Currency: d.config.Currency,
				Value:    FormatCents(q.payment.Amount),
			},
			Mandate: debitMandate{
				Related: mandateInfo{
					MandateID:       q.payment.MandateID,
					DateOfSignature: q.payment.MandateDate.Format(dateFormat),
				},
			},
			DebtorAgent:   agent{FinancialInstitution: financialInstitution{BIC: q.payment.BIC}},
			Debtor:        partyName{Name: q.payment.Name},
			DebtorAccount: account{ID: accountID{IBAN: q.payment.IBAN}},
			Remittance:    RenderRemittance(q.ref),
		})
	}

	return info
}

// Element structs for pain.008.001.02.

type debitDocument struct {
	XMLName      xml.Name        `xml:"Document"`
	Namespace    string          `xml:"xmlns,attr"`
	XSINamespace string          `xml:"xmlns:xsi,attr"`
	Initiation   debitInitiation `xml:"CstmrDrctDbtInitn"`
}

type debitInitiation struct {
	GroupHeader  groupHeader         `xml:"GrpHdr"`
	PaymentInfos []*debitPaymentInfo `xml:"PmtInf"`
}

type debitPaymentInfo struct {
	ID                   string              `xml:"PmtInfId"`
	Method               string              `xml:"PmtMtd"`
	BatchBooking         bool                `xml:"BtchBookg"`
	NumberOfTransactions int                 `xml:"NbOfTxs"`
	ControlSum           string              `xml:"CtrlSum"`
	TypeInfo             debitTypeInfo       `xml:"PmtTpInf"`
	CollectionDate       string              `xml:"ReqdColltnDt"`
	Creditor             partyName           `xml:"Cdtr"`
	CreditorAccount      account             `xml:"CdtrAcct"`
	CreditorAgent        agent               `xml:"CdtrAgt"`
	ChargeBearer         string              `xml:"ChrgBr"`
	CreditorScheme       creditorScheme      `xml:"CdtrSchmeId"`
	Transactions         []*debitTransaction `xml:"DrctDbtTxInf"`
}

type debitTypeInfo struct {
	ServiceLevel    codeElement `xml:"SvcLvl"`
	LocalInstrument codeElement `xml:"LclInstrm"`
	SequenceType    string      `xml:"SeqTp"`
}

type creditorScheme struct {
	ID creditorSchemeID `xml:"Id"`
}

type creditorSchemeID struct {
	PrivateID privateID `xml:"PrvtId"`
}

type privateID struct {
	Other schemeOther `xml:"Othr"`
}

type schemeOther struct {
	ID         string          `xml:"Id"`
	SchemeName proprietaryName `xml:"SchmeNm"`
}

type proprietaryName struct {
	Proprietary string `xml:"Prtry"`
}

type debitTransaction struct {
	PaymentID     paymentID        `xml:"PmtId"`
	Amount        instructedAmount `xml:"InstdAmt"`
	Mandate       debitMandate     `xml:"DrctDbtTx"`
	DebtorAgent   agent            `xml:"DbtrAgt"`
	Debtor        partyName        `xml:"Dbtr"`
	DebtorAccount account          `xml:"DbtrAcct"`
	Remittance    *RemittanceInfo  `xml:"RmtInf"`
}

type debitMandate struct {
	Related mandateInfo `xml:"MndtRltdInf"`
}

type mandateInfo struct {
	MandateID       string `xml:"MndtId"`
	DateOfSignature string `xml:"DtOfSgntr"`
}
