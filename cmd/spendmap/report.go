/*The full statements to summary pipeline*/
package main

import (
	"fmt"

	"github.com/voidshard/spendmap/pkg/aggregate"
	"github.com/voidshard/spendmap/pkg/crypto"
	"github.com/voidshard/spendmap/pkg/domain"
	"github.com/voidshard/spendmap/pkg/provider"
	"github.com/voidshard/spendmap/pkg/report"
	"github.com/voidshard/spendmap/pkg/statement"
	"github.com/voidshard/spendmap/pkg/store"
)

type reportCmd struct {
	Dir     string `arg:"" optional:"" type:"existingdir" help:"Directory holding the .xls exports (default from config)."`
	Out     string `help:"Summary workbook to merge into (default from config)."`
	Batch   bool   `help:"Don't ask, file unknown businesses under the default category."`
	Archive string `help:"Also keep every transaction [jsonfile:/path/file.json sqlite:/path/file.db]. A sqlite archive remembers imported statements."`
}

func (c *reportCmd) Run(ctx *context) error {
	dir := pick(c.Dir, ctx.conf.Dir)
	out := pick(c.Out, ctx.conf.Report)
	archiveTo := pick(c.Archive, ctx.conf.Archive)
	log := ctx.log.With().Str("dir", dir).Str("report", out).Logger()

	var (
		archive store.Store
		ledger  store.Ledger
	)
	if archiveTo != "" {
		s, err := getStore(archiveTo, ctx.log)
		if err != nil {
			return err
		}
		defer closeStore(s)
		archive = s
		ledger, _ = s.(store.Ledger)
	}

	cls, err := getClassifier(ctx, c.Batch)
	if err != nil {
		return err
	}

	prov := provider.NewIsracard(ctx.conf.SkipRows, ctx.log)
	files, err := prov.Statements(dir)
	if err != nil {
		return err
	}

	reports := []*domain.Report{}
	for _, file := range files {
		src, data, err := prov.Open(file)
		if err != nil {
			return err
		}

		fp := crypto.Fingerprint(data)
		if ledger != nil {
			seen, err := ledger.Seen(fp)
			if err != nil {
				return err
			}
			if seen {
				log.Info().Str("file", file).Msg("statement already imported, skipping")
				continue
			}
		}

		r, err := statement.Parse(src, statement.WithLogger(ctx.log))
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}
		r.Source = file
		r.Fingerprint = fp
		reports = append(reports, r)

		log.Info().Str("file", file).Str("holder", r.Holder).Int("cards", len(r.Cards)).Msg("parsed statement")
	}

	if len(reports) == 0 {
		log.Info().Int("files", len(files)).Msg("nothing new to report")
		return nil
	}

	tagged, err := aggregate.Collect(reports, cls)
	if err != nil {
		return err
	}

	if archive != nil {
		if err := archive.Write(tagged); err != nil {
			return fmt.Errorf("archive transactions: %w", err)
		}
	}

	months := aggregate.MonthsSorted(tagged)
	merged, err := report.Update(out, aggregate.Aggregate(tagged), cls)
	if err != nil {
		return err
	}

	// only once the workbook holds them
	if ledger != nil {
		for _, r := range reports {
			if err := ledger.Remember(r); err != nil {
				return err
			}
		}
	}

	ev := log.Info().Int("statements", len(reports)).Int("transactions", len(tagged)).Int("months_in_report", len(merged))
	if len(months) > 0 {
		ev = ev.Stringer("from", months[0]).Stringer("to", months[len(months)-1])
	}
	ev.Msg("report updated")
	return nil
}

func pick(flag, conf string) string {
	if flag != "" {
		return flag
	}
	return conf
}
