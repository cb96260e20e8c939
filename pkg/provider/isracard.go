package provider

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/rs/zerolog"

	"github.com/voidshard/spendmap/pkg/table"
)

const (
	isracardExt     = ".xls"
	isracardCharset = "utf-8"
)

// full year dates are typed as dates, anything shorter is left as text
var dateLayouts = []string{"02/01/2006", "2/1/2006", "2006-01-02", time.RFC3339}

// Isracard reads the .xls exports of the Isracard site.
type Isracard struct {
	// SkipRows is how many rows above the holder row to drop. The exports
	// carry one caption row.
	SkipRows int

	log zerolog.Logger
}

// check it meets the interface
var _ Provider = &Isracard{}

func NewIsracard(skipRows int, log zerolog.Logger) *Isracard {
	return &Isracard{SkipRows: skipRows, log: log.With().Str("provider", "isracard").Logger()}
}

func (i *Isracard) Statements(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	found := []string{}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), isracardExt) {
			continue
		}
		found = append(found, filepath.Join(dir, e.Name()))
	}
	sort.Strings(found)

	i.log.Debug().Str("dir", dir).Int("statements", len(found)).Msg("found statements")
	return found, nil
}

func (i *Isracard) Open(path string) (table.Source, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), isracardCharset)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening XLS file %s: %v", path, err)
	}
	if wb.NumSheets() == 0 {
		return nil, nil, fmt.Errorf("no sheets found in XLS file %s", path)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil, fmt.Errorf("could not get first sheet of %s", path)
	}

	grid := [][]string{}
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			grid = append(grid, nil) // blank rows are significant
			continue
		}
		values := make([]string, row.LastCol())
		for c := range values {
			values[c] = row.Col(c)
		}
		grid = append(grid, values)
	}

	i.log.Debug().Str("file", path).Str("sheet", sheet.Name).Int("rows", len(grid)).Msg("read sheet")
	return FromGrid(grid, i.SkipRows), data, nil
}

// FromGrid types the cells of a sheet read as text and pads every row to the
// widest one, dropping the first skip rows.
func FromGrid(grid [][]string, skip int) *table.SliceSource {
	if skip > len(grid) {
		skip = len(grid)
	}
	if skip > 0 {
		grid = grid[skip:]
	}

	width := 0
	for _, values := range grid {
		if len(values) > width {
			width = len(values)
		}
	}

	rows := make([]table.Row, len(grid))
	for r, values := range grid {
		row := make(table.Row, width)
		for c := range row {
			if c < len(values) {
				row[c] = ParseCell(values[c])
			} else {
				row[c] = table.EmptyCell()
			}
		}
		rows[r] = row
	}
	return table.NewSliceSource(rows)
}

// ParseCell decides the kind of a cell from its text.
func ParseCell(s string) table.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return table.EmptyCell()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return table.NumberCell(f)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return table.DateCell(t)
		}
	}
	return table.TextCell(s)
}
