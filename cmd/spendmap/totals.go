/*Totals straight from the sqlite archive*/
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/voidshard/spendmap/pkg/aggregate"
	"github.com/voidshard/spendmap/pkg/store"
)

type totalsCmd struct {
	Archive string `help:"Archive to read [sqlite:/path/file.db] (default from config)."`
}

func (c *totalsCmd) Run(ctx *context) error {
	archiveTo := pick(c.Archive, ctx.conf.Archive)
	path, ok := strings.CutPrefix(archiveTo, "sqlite:")
	if !ok || path == "" {
		return fmt.Errorf("totals need a sqlite archive, got %q", archiveTo)
	}

	db, err := store.NewSQLite(path, ctx.log)
	if err != nil {
		return err
	}
	defer db.Close()

	totals, err := db.Totals()
	if err != nil {
		return err
	}
	t := aggregate.Table(totals)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	months := t.Months()

	fmt.Fprint(w, "\t")
	for _, m := range months {
		fmt.Fprintf(w, "%s\t", m)
	}
	fmt.Fprintln(w)

	for _, category := range t.Categories() {
		fmt.Fprintf(w, "%s\t", category)
		for _, m := range months {
			if v, ok := t.Get(m, category); ok {
				fmt.Fprintf(w, "%.2f\t", v)
			} else {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
