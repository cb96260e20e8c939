package provider

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/spendmap/pkg/statement"
	"github.com/voidshard/spendmap/pkg/table"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		in   string
		want table.Cell
	}{
		{"", table.EmptyCell()},
		{"   ", table.EmptyCell()},
		{"12.5", table.NumberCell(12.5)},
		{" 0 ", table.NumberCell(0)},
		{"-3", table.NumberCell(-3)},
		{"01/03/2023", table.DateCell(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))},
		{"2023-03-01", table.DateCell(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))},
		{"10/04/23", table.TextCell("10/04/23")},
		{"1,200.50", table.TextCell("1,200.50")},
		{"Gold-1234", table.TextCell("Gold-1234")},
		{"NaN", table.TextCell("NaN")},
		{"כרטיס זהב", table.TextCell("כרטיס זהב")},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.want, ParseCell(tt.in), tt.in)
	}
}

func TestFromGrid(t *testing.T) {
	grid := [][]string{
		{"caption"},
		{"holder"},
		nil,
		{"Gold-1234", "", "10/04/23"},
	}

	src := FromGrid(grid, 1)

	rows := []table.Row{}
	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}

	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, table.TextCell("holder"), rows[0][0])
	assert.True(t, table.IsEmptyRow(rows[1]))
	assert.True(t, table.IsEmpty(rows[2][1]))

	// skipping past the end is an empty table
	_, err := FromGrid(grid, 10).Next()
	assert.Equal(t, io.EOF, err)
}

func TestFromGridParses(t *testing.T) {
	heading := []string{"date", "business", "amount", "currency", "billed", "billed currency", "voucher", "details"}
	grid := [][]string{
		{"Export 03/2023"},
		{"Dana Cohen"},
		{},
		{"Platinum-9876", "", "10/04/23"},
		{"local transactions"},
		heading,
		{"01/03/2023", "Cafe X", "12.5", "ILS", "12.5", "ILS", "1001", ""},
		{"", "", "", "", "12.5", "ILS", "", ""},
		{"total", "", "", "", "", "", "", "12.5"},
		{},
	}

	report, err := statement.Parse(FromGrid(grid, 1))
	require.NoError(t, err)

	assert.Equal(t, "Dana Cohen", report.Holder)
	require.Len(t, report.Cards, 1)
	assert.Equal(t, 9876, report.Cards[0].LastDigits)
	require.Len(t, report.Cards[0].LocalTransactions, 1)
	assert.Equal(t, int64(1001), report.Cards[0].LocalTransactions[0].VoucherNumber)
	assert.Empty(t, report.Cards[0].OverseasTransactions)
}

func TestStatements(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xls", "a.XLS", "notes.txt", ".hidden.xls", "summary.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xls"), 0755))

	p := NewIsracard(1, zerolog.Nop())
	found, err := p.Statements(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.XLS"), filepath.Join(dir, "b.xls")}, found)

	_, err = p.Statements(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenNotXLS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xls")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a workbook"), 0644))

	_, _, err := NewIsracard(1, zerolog.Nop()).Open(path)
	assert.Error(t, err)

	_, _, err = NewIsracard(1, zerolog.Nop()).Open(filepath.Join(t.TempDir(), "missing.xls"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
