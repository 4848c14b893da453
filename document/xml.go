package document

import (
	"bytes"
	"encoding/xml"
)

// Element structs shared by the two pain.* schemas. Only the subset of the
// schemas the builders emit is modelled; optional elements the builders
// never produce are left out.

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// schemaNamespace returns the document namespace for a schema identifier.
func schemaNamespace(schema string) string {
	return "urn:iso:std:iso:20022:tech:xsd:" + schema
}

type groupHeader struct {
	MessageID            string    `xml:"MsgId"`
	CreationDateTime     string    `xml:"CreDtTm"`
	NumberOfTransactions int       `xml:"NbOfTxs"`
	ControlSum           string    `xml:"CtrlSum"`
	InitiatingParty      partyName `xml:"InitgPty"`
}

type partyName struct {
	Name string `xml:"Nm"`
}

type account struct {
	ID accountID `xml:"Id"`
}

type accountID struct {
	IBAN string `xml:"IBAN"`
}

type agent struct {
	FinancialInstitution financialInstitution `xml:"FinInstnId"`
}

type financialInstitution struct {
	BIC string `xml:"BIC"`
}

type codeElement struct {
	Code string `xml:"Cd"`
}

type paymentID struct {
	EndToEndID string `xml:"EndToEndId"`
}

type instructedAmount struct {
	Currency string `xml:"Ccy,attr"`
	Value    string `xml:",chardata"`
}

// marshalDocument renders a document struct with the standard XML
// declaration, two-space indentation and a trailing newline.
func marshalDocument(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
