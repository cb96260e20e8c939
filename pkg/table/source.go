package table

import (
	"io"
)

// Source is a forward-only cursor over the rows of one table. Next returns
// io.EOF once the rows are exhausted.
type Source interface {
	Next() (Row, error)
}

// SliceSource serves rows held in memory.
type SliceSource struct {
	rows []Row
	pos  int
}

// check it meets the interface
var _ Source = &SliceSource{}

func NewSliceSource(rows []Row) *SliceSource {
	return &SliceSource{rows: rows}
}

func (s *SliceSource) Next() (Row, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}
