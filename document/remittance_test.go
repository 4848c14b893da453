package document

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/sepa/reference"
)

func classify(t *testing.T, in reference.Input) reference.Reference {
	t.Helper()

	ref, err := reference.Classify(in)
	assert.NoError(t, err)
	return ref
}

func TestRenderRemittanceUnstructured(t *testing.T) {
	ref := classify(t, reference.Input{Description: "Test transaction"})

	info := RenderRemittance(ref)
	assert.Equal(t, "Test transaction", info.Unstructured)
	assert.Zero(t, info.Structured)
}

func TestRenderRemittanceStructured(t *testing.T) {
	tests := []struct {
		name    string
		input   reference.Input
		wantRef string
	}{
		{
			name:    "bba",
			input:   reference.Input{Structured: "000/0000/00196", Type: reference.TypeBBA},
			wantRef: "000000000196",
		},
		{
			name:    "iso",
			input:   reference.Input{Structured: "RF56TEST123", Type: reference.TypeISO},
			wantRef: "RF56TEST123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := RenderRemittance(classify(t, tt.input))

			assert.Equal(t, "", info.Unstructured)
			assert.NotZero(t, info.Structured)
			assert.Equal(t, "SCOR", info.Structured.CreditorReference.Type.CodeOrProprietary.Code)
			assert.Equal(t, tt.wantRef, info.Structured.CreditorReference.Reference)
		})
	}
}

func TestRemittanceMarshalShapes(t *testing.T) {
	type rmtInf struct {
		XMLName xml.Name `xml:"RmtInf"`
		*RemittanceInfo
	}

	unstructured := RenderRemittance(classify(t, reference.Input{Description: "Invoice & co"}))
	out, err := xml.Marshal(rmtInf{RemittanceInfo: unstructured})
	assert.NoError(t, err)

	// Text is escaped, no structured sub-elements are present.
	assert.Contains(t, string(out), "<Ustrd>Invoice &amp; co</Ustrd>")
	assert.False(t, strings.Contains(string(out), "<Strd>"))

	structured := RenderRemittance(classify(t, reference.Input{
		Structured: "000/0000/00196",
		Type:       reference.TypeBBA,
	}))
	out, err = xml.Marshal(rmtInf{RemittanceInfo: structured})
	assert.NoError(t, err)

	assert.Contains(t, string(out), "<Cd>SCOR</Cd>")
	assert.Contains(t, string(out), "<Ref>000000000196</Ref>")
	assert.False(t, strings.Contains(string(out), "<Ustrd>"))
}
