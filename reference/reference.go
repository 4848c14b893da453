// Package reference validates, normalizes and classifies the remittance
// reference of a SEPA payment.
//
// A payment carries either a free-text description or a structured creditor
// reference, never both and never neither. Two structured formats are
// supported: the Belgian structured communication ("BBA", 12 digits with a
// MOD-97 check digit) and the ISO 11649 creditor reference ("ISO", an "RF"
// prefixed string with an ISO 7064 MOD 97-10 checksum).
//
// Classification is a pure, single-pass decision. On success it produces a
// Reference that is immutable and carries the canonical value to emit into
// the document's remittance-information block. On failure the returned error
// renders one of the contract codes (DESCRIPTION_MISSING,
// CANNOT_HAVE_BOTH_DESCRIPTION_AND_STRUCTURED_REFERENCE,
// STRUCTURED_REFERENCE_INVALID, STRUCTURED_REFERENCE_INVALID_CHECKSUM) that
// calling code and tests match on verbatim.
package reference

import "strings"

// Type tags the declared format of a structured reference.
type Type string

const (
	// TypeBBA is the Belgian structured communication format.
	TypeBBA Type = "BBA"

	// TypeISO is the ISO 11649 creditor reference format.
	TypeISO Type = "ISO"
)

// Kind identifies how a classified reference is rendered.
type Kind int

const (
	// Unstructured references hold free-text remittance information.
	Unstructured Kind = iota

	// StructuredBBA references hold a validated 12-digit Belgian
	// structured communication.
	StructuredBBA

	// StructuredISO references hold a validated ISO 11649 RF reference.
	StructuredISO
)

func (k Kind) String() string {
	switch k {
	case StructuredBBA:
		return "structured (BBA)"
	case StructuredISO:
		return "structured (ISO 11649)"
	default:
		return "unstructured"
	}
}

// Input holds the raw reference fields of a single payment, as supplied by
// the document builder. Structured and Description are mutually exclusive;
// Type is only consulted when Structured is present.
type Input struct {
	Description string
	Structured  string
	Type        Type
}

// Reference is a classified, validated remittance reference. It is
// constructed once per payment by Classify and never mutated afterwards.
type Reference struct {
	kind  Kind
	value string
}

// Kind reports how the reference should be rendered.
func (r Reference) Kind() Kind { return r.kind }

// Value returns the canonical reference text: the trimmed description for
// unstructured references, the 12-digit communication for BBA references,
// or the uppercase separator-free RF reference for ISO references.
func (r Reference) Value() string { return r.value }

// IsStructured reports whether the reference renders as a structured
// creditor reference block.
func (r Reference) IsStructured() bool { return r.kind != Unstructured }

// Classify decides whether a payment uses a structured or an unstructured
// reference, enforces the exclusivity and presence rules, and validates the
// structured formats. Failures reject the payment outright; no partial
// state is retained.
func Classify(in Input) (Reference, error) {
	description := strings.TrimSpace(in.Description)
	structured := strings.TrimSpace(in.Structured)

	switch {
	case description != "" && structured != "":
		return Reference{}, &BothReferencesError{}
	case description == "" && structured == "":
		return Reference{}, &DescriptionMissingError{}
	case structured == "":
		return Reference{kind: Unstructured, value: description}, nil
	}

	switch in.Type {
	case TypeBBA:
		digits := Canonicalize(structured, TypeBBA)
		if err := ValidateBBA(digits); err != nil {
			return Reference{}, err
		}
		return Reference{kind: StructuredBBA, value: digits}, nil

	case TypeISO:
		ref := Canonicalize(structured, TypeISO)
		if err := ValidateISO11649(ref); err != nil {
			return Reference{}, err
		}
		return Reference{kind: StructuredISO, value: ref}, nil

	default:
		return Reference{}, &UnsupportedTypeError{Type: in.Type}
	}
}
