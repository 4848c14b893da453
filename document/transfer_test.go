package document

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/sepa/reference"
)

func transferConfig() Config {
	return Config{
		Name:     "TestDebtor",
		IBAN:     "NL50BANK1234567890",
		BIC:      "BANKNL2A",
		Currency: "EUR",
	}
}

func transferPayment() *Payment {
	return &Payment{
		Name:          "Test del Transfero",
		IBAN:          "NL50BANK1234567890",
		BIC:           "BANKNL2A",
		Amount:        1012,
		ExecutionDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Description:   "Test transaction",
	}
}

func TestNewTransferConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "name", mutate: func(c *Config) { c.Name = "" }, field: "name"},
		{name: "iban", mutate: func(c *Config) { c.IBAN = "" }, field: "iban"},
		{name: "bic", mutate: func(c *Config) { c.BIC = "" }, field: "bic"},
		{name: "currency", mutate: func(c *Config) { c.Currency = "" }, field: "currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := transferConfig()
			tt.mutate(&cfg)

			_, err := NewTransfer(cfg)
			assert.Error(t, err)

			var cfgErr *InvalidConfigError
			assert.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestTransferAddPaymentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Payment)
		field  string
	}{
		{name: "missing name", mutate: func(p *Payment) { p.Name = "" }, field: "name"},
		{name: "missing iban", mutate: func(p *Payment) { p.IBAN = "" }, field: "iban"},
		{name: "missing bic", mutate: func(p *Payment) { p.BIC = "" }, field: "bic"},
		{name: "zero amount", mutate: func(p *Payment) { p.Amount = 0 }, field: "amount"},
		{name: "missing execution date", mutate: func(p *Payment) { p.ExecutionDate = time.Time{} }, field: "execution_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTransfer(transferConfig())
			assert.NoError(t, err)

			p := transferPayment()
			tt.mutate(p)

			err = tr.AddPayment(p)
			assert.Error(t, err)

			var payErr *InvalidPaymentError
			assert.True(t, errors.As(err, &payErr))
			assert.Equal(t, tt.field, payErr.Field)
			assert.Equal(t, 0, tr.Count())
		})
	}
}

func TestTransferBuild(t *testing.T) {
	tr, err := NewTransfer(transferConfig())
	assert.NoError(t, err)
	tr.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	assert.NoError(t, tr.AddPayment(transferPayment()))

	structured := transferPayment()
	structured.Description = ""
	structured.StructuredReference = "RF56TEST123"
	structured.StructuredReferenceType = reference.TypeISO
	assert.NoError(t, tr.AddPayment(structured))

	out, err := tr.Build()
	assert.NoError(t, err)
	xml := string(out)

	assert.Contains(t, xml, `xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"`)
	assert.Contains(t, xml, "<CstmrCdtTrfInitn>")
	assert.Contains(t, xml, "<NbOfTxs>2</NbOfTxs>")
	assert.Contains(t, xml, "<CtrlSum>20.24</CtrlSum>")
	assert.Contains(t, xml, "<PmtMtd>TRF</PmtMtd>")
	assert.Contains(t, xml, "<Cd>SEPA</Cd>")
	assert.Contains(t, xml, "<ReqdExctnDt>2026-09-01</ReqdExctnDt>")
	assert.Contains(t, xml, "<ChrgBr>SLEV</ChrgBr>")
	assert.Contains(t, xml, `<InstdAmt Ccy="EUR">10.12</InstdAmt>`)

	assert.Equal(t, 1, strings.Count(xml, "<Ustrd>Test transaction</Ustrd>"))
	assert.Contains(t, xml, "<Cd>SCOR</Cd>")
	assert.Contains(t, xml, "<Ref>RF56TEST123</Ref>")
}

func TestTransferInstantPayments(t *testing.T) {
	tr, err := NewTransfer(transferConfig())
	assert.NoError(t, err)

	instant := transferPayment()
	instant.Instant = true
	assert.NoError(t, tr.AddPayment(instant))

	out, err := tr.Build()
	assert.NoError(t, err)

	assert.Contains(t, string(out), "<Cd>INST</Cd>")
	assert.Contains(t, string(out), "<Cd>SEPA</Cd>")
}

func TestTransferDomesticOmitsServiceLevel(t *testing.T) {
	cfg := transferConfig()
	cfg.Domestic = true
	tr, err := NewTransfer(cfg)
	assert.NoError(t, err)

	assert.NoError(t, tr.AddPayment(transferPayment()))

	out, err := tr.Build()
	assert.NoError(t, err)

	// Neither service level nor local instrument apply, so the whole
	// payment type block is omitted.
	assert.False(t, strings.Contains(string(out), "<SvcLvl>"))
	assert.False(t, strings.Contains(string(out), "<PmtTpInf>"))
}

func TestTransferDomesticInstantKeepsLocalInstrument(t *testing.T) {
	cfg := transferConfig()
	cfg.Domestic = true
	tr, err := NewTransfer(cfg)
	assert.NoError(t, err)

	instant := transferPayment()
	instant.Instant = true
	assert.NoError(t, tr.AddPayment(instant))

	out, err := tr.Build()
	assert.NoError(t, err)

	assert.False(t, strings.Contains(string(out), "<SvcLvl>"))
	assert.Contains(t, string(out), "<LclInstrm>")
	assert.Contains(t, string(out), "<Cd>INST</Cd>")
}

func TestTransferBatchingSeparatesInstantPayments(t *testing.T) {
	cfg := transferConfig()
	cfg.Batch = true
	tr, err := NewTransfer(cfg)
	assert.NoError(t, err)

	assert.NoError(t, tr.AddPayment(transferPayment()))
	assert.NoError(t, tr.AddPayment(transferPayment()))

	instant := transferPayment()
	instant.Instant = true
	assert.NoError(t, tr.AddPayment(instant))

	out, err := tr.Build()
	assert.NoError(t, err)
	xml := string(out)

	// The two regular payments share a block, the instant one stands alone.
	assert.Equal(t, 2, strings.Count(xml, "<PmtInf>"))
	assert.Contains(t, xml, "<NbOfTxs>3</NbOfTxs>")
	assert.Contains(t, xml, "<CtrlSum>30.36</CtrlSum>")
	assert.Equal(t, 1, strings.Count(xml, "<Cd>INST</Cd>"))
}
