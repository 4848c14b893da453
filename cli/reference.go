package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/sepa/reference"
)

type ReferenceCmd struct {
	Reference string `help:"Structured reference to check." arg:""`
	Type      string `help:"Reference type (BBA or ISO, detected when omitted)." enum:"BBA,ISO," default:""`
}

func (cmd *ReferenceCmd) Run(ctx *kong.Context, globals *Globals) error {
	typ := reference.Type(cmd.Type)
	if typ == "" {
		typ = detectType(cmd.Reference)
	}

	ref, err := reference.Classify(reference.Input{Structured: cmd.Reference, Type: typ})
	if err != nil {
		printError(ctx.Stderr, err.Error())
		os.Exit(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s (%s)", ref.Value(), ref.Kind()))

	return nil
}

// detectType guesses the reference type from its shape. Creditor references
// start with "RF" after canonicalization, Belgian OGM references are digits
// only.
func detectType(raw string) reference.Type {
	canonical := reference.Canonicalize(raw, reference.TypeISO)
	if strings.HasPrefix(canonical, "RF") {
		return reference.TypeISO
	}
	return reference.TypeBBA
}
