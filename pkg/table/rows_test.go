package table

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	e = EmptyCell()

	emptyRow   = Row{e, e, e, e, e, e, e, e}
	titleRow   = Row{TextCell("local transactions"), e, e, e, e, e, e, e}
	headingRow = Row{
		TextCell("date"), TextCell("business"), TextCell("amount"), TextCell("currency"),
		TextCell("billing"), TextCell("billing currency"), TextCell("voucher"), TextCell("details"),
	}
	overseasHeadingRow = Row{
		TextCell("date"), TextCell("business"), TextCell("amount"), TextCell("currency"),
		TextCell("billing"), TextCell("billing currency"), TextCell("voucher"), e,
	}
	dataRow = Row{
		TextCell("01/03/2023"), TextCell("Cafe X"), NumberCell(12.5), TextCell("ILS"),
		NumberCell(12.5), TextCell("ILS"), NumberCell(0), e,
	}
	subtotalRow = Row{e, e, e, e, NumberCell(120), TextCell("ILS"), e, e}
	endRow      = Row{TextCell("total"), e, e, e, e, e, e, NumberCell(120)}
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(e))
	assert.False(t, IsEmpty(NumberCell(0)))
	assert.False(t, IsEmpty(TextCell("")))
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		name                                         string
		row                                          Row
		empty, title, heading, nonTransaction, isEnd bool
	}{
		{"empty", emptyRow, true, false, false, true, true},
		{"title", titleRow, false, true, false, true, true},
		{"heading", headingRow, false, false, true, false, false},
		{"overseas heading", overseasHeadingRow, false, false, true, false, false},
		{"data", dataRow, false, false, false, false, false},
		{"subtotal", subtotalRow, false, false, false, true, false},
		{"end", endRow, false, false, false, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.empty, IsEmptyRow(c.row), "IsEmptyRow")
			assert.Equal(t, c.title, IsTitleRow(c.row), "IsTitleRow")
			assert.Equal(t, c.heading, IsTransactionHeadingRow(c.row), "IsTransactionHeadingRow")
			assert.Equal(t, c.nonTransaction, IsNonTransactionDataRow(c.row), "IsNonTransactionDataRow")
			assert.Equal(t, c.isEnd, IsEndOfTransactionRow(c.row), "IsEndOfTransactionRow")
		})
	}
}

func TestRowCellOutOfRange(t *testing.T) {
	r := Row{TextCell("a")}
	assert.Equal(t, "a", r.Cell(0).Text)
	assert.True(t, IsEmpty(r.Cell(1)))
	assert.True(t, IsEmpty(r.Cell(-1)))
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]Row{titleRow, dataRow})

	r, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, titleRow, r)

	r, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, dataRow, r)

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}
