// Package aggregate tags statement transactions with categories and sums
// them into a month x category table.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/voidshard/spendmap/pkg/domain"
)

// Categorizer is the part of the classifier aggregation needs.
type Categorizer interface {
	CategoryFor(business string, prompt bool) (string, error)
}

// Table holds summed billing amounts by month then category.
type Table map[domain.Month]map[string]float64

func MonthOf(t time.Time) domain.Month {
	return domain.MonthOf(t)
}

// Collect flattens every transaction of every card of every report, local
// before overseas, tagging each with its holder and category. The
// categorizer may prompt.
func Collect(reports []*domain.Report, c Categorizer) ([]*domain.TaggedTransaction, error) {
	tagged := []*domain.TaggedTransaction{}
	for _, report := range reports {
		for i := range report.Cards {
			for _, txn := range report.Cards[i].Transactions() {
				category, err := c.CategoryFor(txn.BusinessName, true)
				if err != nil {
					return nil, fmt.Errorf("classify %q from %s: %w", txn.BusinessName, report.Holder, err)
				}
				tagged = append(tagged, &domain.TaggedTransaction{
					Transaction: txn,
					Holder:      report.Holder,
					Category:    category,
					Statement:   report.Fingerprint,
				})
			}
		}
	}
	return tagged, nil
}

// Aggregate sums billing amounts per month and category.
func Aggregate(tagged []*domain.TaggedTransaction) Table {
	t := Table{}
	for _, txn := range tagged {
		t.Add(txn.Month(), txn.Category, txn.BillingAmount)
	}
	return t
}

// MonthsSorted returns each month that has a transaction once, earliest first.
func MonthsSorted(tagged []*domain.TaggedTransaction) []domain.Month {
	seen := map[domain.Month]bool{}
	months := []domain.Month{}
	for _, txn := range tagged {
		m := txn.Month()
		if seen[m] {
			continue
		}
		seen[m] = true
		months = append(months, m)
	}
	domain.SortMonths(months)
	return months
}

// Add accumulates amount into the month and category cell.
func (t Table) Add(month domain.Month, category string, amount float64) {
	row, ok := t[month]
	if !ok {
		row = map[string]float64{}
		t[month] = row
	}
	row[category] += amount
}

// Get returns the amount in a cell and whether the cell exists.
func (t Table) Get(month domain.Month, category string) (float64, bool) {
	v, ok := t[month][category]
	return v, ok
}

// Months returns the table's months, earliest first.
func (t Table) Months() []domain.Month {
	months := make([]domain.Month, 0, len(t))
	for m := range t {
		months = append(months, m)
	}
	domain.SortMonths(months)
	return months
}

// Categories returns every category with a cell in any month, sorted by name.
func (t Table) Categories() []string {
	seen := map[string]bool{}
	for _, row := range t {
		for c := range row {
			seen[c] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new table with every month and category of both tables.
// Cells present in both are summed; neither input is modified.
func Merge(prior, fresh Table) Table {
	out := Table{}
	for _, t := range []Table{prior, fresh} {
		for month, row := range t {
			for category, amount := range row {
				out.Add(month, category, amount)
			}
		}
	}
	return out
}
