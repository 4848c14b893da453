package document

import "github.com/robinvdvleuten/sepa/reference"

// creditorReferenceCode identifies a structured creditor reference in the
// reference type element.
const creditorReferenceCode = "SCOR"

// RemittanceInfo is the RmtInf block of a payment. Exactly one of
// Unstructured and Structured is set, mirroring the mutual exclusivity of
// the reference kinds; the XML output never carries both shapes.
type RemittanceInfo struct {
	Unstructured string                `xml:"Ustrd,omitempty"`
	Structured   *StructuredRemittance `xml:"Strd,omitempty"`
}

// StructuredRemittance carries a creditor reference block.
type StructuredRemittance struct {
	CreditorReference CreditorReferenceInfo `xml:"CdtrRefInf"`
}

// CreditorReferenceInfo holds the reference type and the canonical
// reference text.
type CreditorReferenceInfo struct {
	Type      CreditorReferenceType `xml:"Tp"`
	Reference string                `xml:"Ref"`
}

// CreditorReferenceType wraps the CdOrPrtry code element.
type CreditorReferenceType struct {
	CodeOrProprietary CodeOrProprietary `xml:"CdOrPrtry"`
}

// CodeOrProprietary holds a fixed type code.
type CodeOrProprietary struct {
	Code string `xml:"Cd"`
}

// RenderRemittance emits the remittance-information fragment for a
// classified reference. The mapping is total over the reference kinds:
// unstructured references become a single Ustrd element holding the text
// verbatim, structured references a Strd block carrying the SCOR type code
// and the canonical reference value.
func RenderRemittance(ref reference.Reference) *RemittanceInfo {
	switch ref.Kind() {
	case reference.StructuredBBA, reference.StructuredISO:
		return &RemittanceInfo{
			Structured: &StructuredRemittance{
				CreditorReference: CreditorReferenceInfo{
					Type: CreditorReferenceType{
						CodeOrProprietary: CodeOrProprietary{Code: creditorReferenceCode},
					},
					Reference: ref.Value(),
				},
			},
		}
	default:
		return &RemittanceInfo{Unstructured: ref.Value()}
	}
}
