package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/sepa/loader"
)

type GenerateCmd struct {
	File   string `help:"Batch input filename." arg:"" type:"existingfile"`
	Output string `help:"Write the document to a file instead of stdout." short:"o" type:"path"`
}

func (cmd *GenerateCmd) Run(ctx *kong.Context, globals *Globals) error {
	batch, err := loader.Load(cmd.File)
	if err != nil {
		return err
	}

	if globals.Dump {
		repr.Println(batch)
	}

	b, err := newBuilder(batch)
	if err != nil {
		return err
	}

	for _, p := range batch.Payments {
		if err := b.AddPayment(p); err != nil {
			return err
		}
	}

	out, err := b.Build()
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		_, err = ctx.Stdout.Write(out)
		return err
	}

	if _, err := os.Stat(cmd.Output); err == nil {
		overwrite, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Output))
		if err != nil {
			return err
		}
		if !overwrite {
			printInfof(ctx.Stdout, "Skipped writing %s", cmd.Output)
			return nil
		}
	}

	if err := os.WriteFile(cmd.Output, out, 0o644); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %d payment(s) to %s", b.Count(), cmd.Output))

	return nil
}
