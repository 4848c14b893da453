package cli

import (
	"fmt"

	"github.com/robinvdvleuten/sepa/document"
	"github.com/robinvdvleuten/sepa/loader"
)

// Globals defines global flags available to all commands.
type Globals struct {
	Dump bool `help:"Dump the parsed batch before generating."`
}

type Commands struct {
	Globals

	Generate  GenerateCmd  `cmd:"" help:"Generate a pain.* document from a batch file."`
	Validate  ValidateCmd  `cmd:"" help:"Validate a batch file without generating output."`
	Reference ReferenceCmd `cmd:"" help:"Canonicalize and validate a single payment reference."`
}

// builder is the part of the document builders the commands rely on.
type builder interface {
	AddPayment(p *document.Payment) error
	Count() int
	Build() ([]byte, error)
}

// newBuilder creates the document builder matching the batch schema.
func newBuilder(batch *loader.Batch) (builder, error) {
	switch batch.Schema {
	case document.TransferSchema:
		return document.NewTransfer(batch.Config)
	case document.DirectDebitSchema:
		return document.NewDirectDebit(batch.Config)
	default:
		return nil, fmt.Errorf("unknown schema %q", batch.Schema)
	}
}
