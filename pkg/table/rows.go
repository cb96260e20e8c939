package table

// The predicates below are heuristics over the layout of a statement export.
// They overlap: an empty row is also an end-of-transactions row, and a title row
// is too. Callers must test end-of-transactions before non-transaction data.

func IsEmpty(c Cell) bool {
	return c.Kind == Empty
}

func IsEmptyRow(r Row) bool {
	return allEmpty(r)
}

// IsTitleRow matches a section caption: a first cell and nothing else.
func IsTitleRow(r Row) bool {
	if len(r) == 0 {
		return false
	}
	return !IsEmpty(r[0]) && allEmpty(r[1:])
}

// IsTransactionHeadingRow matches a column header row: every cell but the last
// is text. The overseas heading is one column narrower than the local one, so
// the last cell is never inspected.
func IsTransactionHeadingRow(r Row) bool {
	for _, c := range allButLast(r) {
		if c.Kind != Text {
			return false
		}
	}
	return true
}

// IsNonTransactionDataRow matches subtotal and footer lines that sit among the
// data rows: any cell but the last is empty.
func IsNonTransactionDataRow(r Row) bool {
	for _, c := range allButLast(r) {
		if IsEmpty(c) {
			return true
		}
	}
	return false
}

// IsEndOfTransactionRow matches the section terminator: every cell except the
// first and last is empty.
func IsEndOfTransactionRow(r Row) bool {
	if len(r) < 2 {
		return allEmpty(r)
	}
	return allEmpty(r[1 : len(r)-1])
}

func allEmpty(cells []Cell) bool {
	for _, c := range cells {
		if !IsEmpty(c) {
			return false
		}
	}
	return true
}

func allButLast(r Row) []Cell {
	if len(r) == 0 {
		return r
	}
	return r[:len(r)-1]
}
