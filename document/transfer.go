package document

import (
	"encoding/xml"
	"time"

	"github.com/robinvdvleuten/sepa/reference"
)

// Transfer assembles a pain.001.001.03 customer credit transfer initiation
// document for a single debtor.
type Transfer struct {
	config Config
	queue  []queuedPayment
	now    func() time.Time
}

// NewTransfer creates a credit transfer builder for the given debtor config.
func NewTransfer(cfg Config) (*Transfer, error) {
	if err := validateTransferConfig(cfg); err != nil {
		return nil, err
	}

	return &Transfer{config: cfg, now: time.Now}, nil
}

func validateTransferConfig(cfg Config) error {
	switch {
	case cfg.Name == "":
		return NewInvalidConfigError("name", "debtor name is required")
	case cfg.IBAN == "":
		return NewInvalidConfigError("iban", "debtor IBAN is required")
	case cfg.BIC == "":
		return NewInvalidConfigError("bic", "debtor BIC is required")
	case cfg.Currency == "":
		return NewInvalidConfigError("currency", "currency is required")
	}
	return nil
}

// AddPayment validates p, classifies its remittance reference and queues it
// for the next Build. A payment that fails validation is rejected outright.
func (t *Transfer) AddPayment(p *Payment) error {
	if err := validateTransferPayment(p); err != nil {
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

	t.queue = append(t.queue, queuedPayment{payment: queued, ref: ref})
	return nil
}

func validateTransferPayment(p *Payment) error {
	switch {
	case p.Name == "":
		return NewInvalidPaymentError("", "name", "creditor name is required")
	case p.IBAN == "":
		return NewInvalidPaymentError(p.Name, "iban", "creditor IBAN is required")
	case p.BIC == "":
		return NewInvalidPaymentError(p.Name, "bic", "creditor BIC is required")
	case p.Amount <= 0:
		return NewInvalidPaymentError(p.Name, "amount", "amount must be positive")
	case p.ExecutionDate.IsZero():
		return NewInvalidPaymentError(p.Name, "execution_date", "execution date is required")
	}
	return nil
}

// Count returns the number of queued payments.
func (t *Transfer) Count() int { return len(t.queue) }

// Build assembles the XML document for all queued payments. In batch mode
// payments sharing an execution date and instant flag are grouped into one
// payment-information block; instant and non-instant payments never share a
// block because the local instrument applies to the whole block.
func (t *Transfer) Build() ([]byte, error) {
	now := t.now()

	doc := &transferDocument{
		Namespace:    schemaNamespace(TransferSchema),
		XSINamespace: xsiNamespace,
		Initiation: transferInitiation{
			GroupHeader: groupHeader{
				MessageID:            newMessageID(now),
				CreationDateTime:     now.Format("2006-01-02T15:04:05"),
				NumberOfTransactions: len(t.queue),
				ControlSum:           FormatCents(sumCents(t.queue)),
				InitiatingParty:      partyName{Name: t.config.Name},
			},
		},
	}

	for _, batch := range t.batches() {
		doc.Initiation.PaymentInfos = append(doc.Initiation.PaymentInfos, t.paymentInfo(batch))
	}

	return marshalDocument(doc)
}

func (t *Transfer) batches() [][]queuedPayment {
	if !t.config.Batch {
		batches := make([][]queuedPayment, 0, len(t.queue))
		for _, q := range t.queue {
			batches = append(batches, []queuedPayment{q})
		}
		return batches
	}

	var keys []string
	grouped := make(map[string][]queuedPayment)
	for _, q := range t.queue {
		key := q.payment.ExecutionDate.Format(dateFormat)
		if q.payment.Instant {
			key += "/INST"
		}
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

func (t *Transfer) paymentInfo(batch []queuedPayment) *transferPaymentInfo {
	first := batch[0].payment

	info := &transferPaymentInfo{
		ID:                   newPaymentInfoID(t.config.Name),
		Method:               "TRF",
		BatchBooking:         t.config.Batch,
		NumberOfTransactions: len(batch),
		ControlSum:           FormatCents(sumCents(batch)),
		TypeInfo:             t.typeInfo(first.Instant),
		ExecutionDate:        first.ExecutionDate.Format(dateFormat),
		Debtor:               partyName{Name: t.config.Name},
		DebtorAccount:        account{ID: accountID{IBAN: t.config.IBAN}},
		DebtorAgent:          agent{FinancialInstitution: financialInstitution{BIC: t.config.BIC}},
		ChargeBearer:         "SLEV",
	}

	for _, q := range batch {
		info.Transactions = append(info.Transactions, &transferTransaction{
			PaymentID: paymentID{EndToEndID: q.payment.EndToEndID},
			Amount: transferAmount{
				Instructed: instructedAmount{
					Currency: t.config.Currency,
					Value:    FormatCents(q.payment.Amount),
				},
			},
			CreditorAgent:   agent{FinancialInstitution: financialInstitution{BIC: q.payment.BIC}},
			Creditor:        partyName{Name: q.payment.Name},
			CreditorAccount: account{ID: accountID{IBAN: q.payment.IBAN}},
			Remittance:      RenderRemittance(q.ref),
		})
	}

	return info
}

// typeInfo builds the PmtTpInf block. The SEPA service level is omitted for
// domestic schemes, the INST local instrument is only present for instant
// payments. When neither applies the block is left out entirely.
func (t *Transfer) typeInfo(instant bool) *transferTypeInfo {
	info := &transferTypeInfo{}
	if !t.config.Domestic {
		info.ServiceLevel = &codeElement{Code: "SEPA"}
	}
	if instant {
		info.LocalInstrument = &codeElement{Code: "INST"}
	}
	if info.ServiceLevel == nil && info.LocalInstrument == nil {
		return nil
	}
	return info
}

// Element structs for pain.001.001.03.

type transferDocument struct {
	XMLName      xml.Name           `xml:"Document"`
	Namespace    string             `xml:"xmlns,attr"`
	XSINamespace string             `xml:"xmlns:xsi,attr"`
	Initiation   transferInitiation `xml:"CstmrCdtTrfInitn"`
}

type transferInitiation struct {
	GroupHeader  groupHeader            `xml:"GrpHdr"`
	PaymentInfos []*transferPaymentInfo `xml:"PmtInf"`
}

type transferPaymentInfo struct {
	ID                   string                 `xml:"PmtInfId"`
	Method               string                 `xml:"PmtMtd"`
	BatchBooking         bool                   `xml:"BtchBookg"`
	NumberOfTransactions int                    `xml:"NbOfTxs"`
	ControlSum           string                 `xml:"CtrlSum"`
	TypeInfo             *transferTypeInfo      `xml:"PmtTpInf,omitempty"`
	ExecutionDate        string                 `xml:"ReqdExctnDt"`
	Debtor               partyName              `xml:"Dbtr"`
	DebtorAccount        account                `xml:"DbtrAcct"`
	DebtorAgent          agent                  `xml:"DbtrAgt"`
	ChargeBearer         string                 `xml:"ChrgBr"`
	Transactions         []*transferTransaction `xml:"CdtTrfTxInf"`
}

type transferTypeInfo struct {
	ServiceLevel    *codeElement `xml:"SvcLvl,omitempty"`
	LocalInstrument *codeElement `xml:"LclInstrm,omitempty"`
}

type transferTransaction struct {
	PaymentID       paymentID       `xml:"PmtId"`
	Amount          transferAmount  `xml:"Amt"`
	CreditorAgent   agent           `xml:"CdtrAgt"`
	Creditor        partyName       `xml:"Cdtr"`
	CreditorAccount account         `xml:"CdtrAcct"`
	Remittance      *RemittanceInfo `xml:"RmtInf"`
}

type transferAmount struct {
	Instructed instructedAmount `xml:"InstdAmt"`
}
