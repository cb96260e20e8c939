/*Single statement inspection*/
package main

import (
	"fmt"
	"os"

	"github.com/voidshard/spendmap/pkg/crypto"
	"github.com/voidshard/spendmap/pkg/provider"
	"github.com/voidshard/spendmap/pkg/statement"
)

type parseCmd struct {
	File string `arg:"" type:"existingfile" help:"Statement export (.xls) to parse."`
}

func (c *parseCmd) Run(ctx *context) error {
	src, data, err := provider.NewIsracard(ctx.conf.SkipRows, ctx.log).Open(c.File)
	if err != nil {
		return err
	}

	r, err := statement.Parse(src, statement.WithLogger(ctx.log))
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.File, err)
	}
	r.Source = c.File
	r.Fingerprint = crypto.Fingerprint(data)

	out, err := r.JSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
