package provider

import (
	"github.com/voidshard/spendmap/pkg/table"
)

// Provider finds statement exports and opens them as rows.
type Provider interface {
	// Statements lists the statement files in dir, sorted by name.
	Statements(dir string) ([]string, error)

	// Open reads the file at path, returning its rows and its raw bytes.
	Open(path string) (table.Source, []byte, error)
}
