package reference

import "fmt"

// Error codes rendered into error messages. These literals are part of the
// observable contract; callers and test suites match on them verbatim.
const (
	CodeDescriptionMissing = "DESCRIPTION_MISSING"
	CodeBothReferences     = "CANNOT_HAVE_BOTH_DESCRIPTION_AND_STRUCTURED_REFERENCE"
	CodeInvalidFormat      = "STRUCTURED_REFERENCE_INVALID"
	CodeInvalidChecksum    = "STRUCTURED_REFERENCE_INVALID_CHECKSUM"
	CodeUnsupportedType    = "UNSUPPORTED_REFERENCE_TYPE"
)

// DescriptionMissingError is returned when a payment supplies neither a
// description nor a structured reference.
type DescriptionMissingError struct{}

func (e *DescriptionMissingError) Error() string {
	return CodeDescriptionMissing + ": a payment needs a description or a structured reference"
}

// BothReferencesError is returned when a payment supplies both a description
// and a structured reference.
type BothReferencesError struct{}

func (e *BothReferencesError) Error() string {
	return CodeBothReferences + ": description and structured reference are mutually exclusive"
}

// UnsupportedTypeError is returned when a structured reference carries a
// type tag other than BBA or ISO.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: unknown structured reference type %q", CodeUnsupportedType, string(e.Type))
}

// InvalidFormatError is returned when a structured reference does not match
// the lexical shape required by its declared type.
type InvalidFormatError struct {
	Type      Type
	Reference string // canonical form, as handed to the validator
	Reason    string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: %s reference %q: %s", CodeInvalidFormat, e.Type, e.Reference, e.Reason)
}

// NewInvalidFormatError creates an error for a lexically malformed
// structured reference.
func NewInvalidFormatError(typ Type, ref, reason string) *InvalidFormatError {
	return &InvalidFormatError{Type: typ, Reference: ref, Reason: reason}
}

// InvalidChecksumError is returned when a structured reference is lexically
// well-formed but fails its checksum algorithm.
type InvalidChecksumError struct {
	Type      Type
	Reference string
	Reason    string
}

func (e *InvalidChecksumError) Error() string {
	return fmt.Sprintf("%s: %s reference %q: %s", CodeInvalidChecksum, e.Type, e.Reference, e.Reason)
}

// NewInvalidChecksumError creates an error for a structured reference with
// a failing checksum.
func NewInvalidChecksumError(typ Type, ref, reason string) *InvalidChecksumError {
	return &InvalidChecksumError{Type: typ, Reference: ref, Reason: reason}
}
