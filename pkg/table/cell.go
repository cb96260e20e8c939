package table

import (
	"fmt"
	"time"
)

type Kind int

const (
	// Empty marks a missing value. It is distinct from a zero number or an
	// empty string.
	Empty Kind = iota
	Text
	Number
	Date
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Text:
		return "text"
	case Number:
		return "number"
	case Date:
		return "date"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Cell is a single scanned value.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

// Row is an ordered sequence of cells. All rows of one table share an arity.
type Row []Cell

func EmptyCell() Cell { return Cell{Kind: Empty} }

func TextCell(s string) Cell { return Cell{Kind: Text, Text: s} }

func NumberCell(f float64) Cell { return Cell{Kind: Number, Number: f} }

func DateCell(t time.Time) Cell { return Cell{Kind: Date, Time: t} }

// String renders the cell value the way it would appear in the sheet.
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return fmt.Sprintf("%v", c.Number)
	case Date:
		return c.Time.Format("02/01/2006")
	}
	return ""
}

// Cell returns the i'th cell, or an empty cell when the row is shorter.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return EmptyCell()
	}
	return r[i]
}
