package cli

import (
	stdErrors "errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/sepa/document"
	"github.com/robinvdvleuten/sepa/loader"
)

type ValidateCmd struct {
	File string `help:"Batch input filename." arg:"" type:"existingfile"`
}

func (cmd *ValidateCmd) Run(ctx *kong.Context, globals *Globals) error {
	batch, err := loader.Load(cmd.File)
	if err != nil {
		return err
	}

	if err := validateBatch(batch); err != nil {
		var validationErrors *document.ValidationErrors
		if stdErrors.As(err, &validationErrors) {
			for _, failure := range validationErrors.Errors {
				printError(ctx.Stderr, failure.Error())
			}

			_, _ = fmt.Fprintln(ctx.Stderr)
			printError(ctx.Stderr, fmt.Sprintf("%d validation error(s) found", len(validationErrors.Errors)))
			os.Exit(1)
		}
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d payment(s) valid", len(batch.Payments)))

	return nil
}

// validateBatch runs every payment through the schema's builder, collecting
// all failures instead of stopping at the first.
func validateBatch(batch *loader.Batch) error {
	b, err := newBuilder(batch)
	if err != nil {
		return err
	}

	var failures []error
	for i, p := range batch.Payments {
		if err := b.AddPayment(p); err != nil {
			failures = append(failures, fmt.Errorf("payment %d: %w", i+1, err))
		}
	}

	if len(failures) > 0 {
		return &document.ValidationErrors{Errors: failures}
	}

	return nil
}
