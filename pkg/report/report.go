// Package report reads and writes the month x category summary workbook.
//
// The workbook has a single sheet. Row 1 holds the months ("M/YYYY") from
// column B on, column A holds category names, and each other cell is the
// amount for that month and category, or blank.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/voidshard/spendmap/pkg/aggregate"
	"github.com/voidshard/spendmap/pkg/domain"
	"github.com/voidshard/spendmap/pkg/store"
)

const sheet = "Summary"

// ErrFormat means a workbook isn't laid out as a summary.
var ErrFormat = errors.New("bad summary workbook")

// Learner is told about every category found in a loaded workbook.
type Learner interface {
	AddCategories(names ...string) error
}

// Categories is what Update needs from the classifier.
type Categories interface {
	Learner
	Categories() []string
}

// Save writes t to path, replacing any existing file. Rows follow the given
// category order, then any other category t has, sorted.
func Save(path string, t aggregate.Table, categories []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	months := t.Months()
	for i, m := range months {
		if err := setCell(f, i+2, 1, m.String()); err != nil {
			return err
		}
	}

	for r, category := range rowOrder(t, categories) {
		row := r + 2
		if err := setCell(f, 1, row, category); err != nil {
			return err
		}
		for i, m := range months {
			amount, ok := t.Get(m, category)
			if !ok {
				continue
			}
			if err := setCell(f, i+2, row, amount); err != nil {
				return err
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}

	return store.WriteFileAtomic(path, func(w io.Writer) error {
		return f.Write(w)
	})
}

func rowOrder(t aggregate.Table, categories []string) []string {
	seen := map[string]bool{}
	order := []string{}
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		order = append(order, c)
	}
	for _, c := range t.Categories() {
		if !seen[c] {
			order = append(order, c)
		}
	}
	return order
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, name, v)
}

// Load reads a summary workbook back into a table. Every row label is passed
// to learner, so categories only known from an old workbook are picked up.
// The first sheet is read, whatever its name.
func Load(path string, learner Learner) (aggregate.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return aggregate.Table{}, nil
	}

	months := []domain.Month{}
	for i, text := range rows[0] {
		if i == 0 {
			continue // corner
		}
		m, err := domain.ParseMonth(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s column %d: %v", ErrFormat, path, i+1, err)
		}
		months = append(months, m)
	}

	t := aggregate.Table{}
	labels := []string{}
	for r, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		category := strings.TrimSpace(row[0])
		if category == "" {
			return nil, fmt.Errorf("%w: %s row %d has no category", ErrFormat, path, r+2)
		}
		labels = append(labels, category)

		for i, text := range row[1:] {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			if i >= len(months) {
				return nil, fmt.Errorf("%w: %s row %d has a value outside any month", ErrFormat, path, r+2)
			}
			amount, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s row %d: %v", ErrFormat, path, r+2, err)
			}
			t.Add(months[i], category, amount)
		}
	}

	if err := learner.AddCategories(labels...); err != nil {
		return nil, fmt.Errorf("learn categories from %s: %w", path, err)
	}
	return t, nil
}

// Update merges fresh into the workbook at path, creating it if needed, and
// returns what was written.
func Update(path string, fresh aggregate.Table, c Categories) (aggregate.Table, error) {
	merged := fresh
	if _, err := os.Stat(path); err == nil {
		prior, err := Load(path, c)
		if err != nil {
			return nil, err
		}
		merged = aggregate.Merge(prior, fresh)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := Save(path, merged, c.Categories()); err != nil {
		return nil, fmt.Errorf("save %s: %w", path, err)
	}
	return merged, nil
}
