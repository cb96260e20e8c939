package store

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/voidshard/spendmap/pkg/domain"
)

type JSONFile struct {
	filename string
}

// check it meets the interfaces
var (
	_ Document = &JSONFile{}
	_ Store    = &JSONFile{}
)

func NewJSONFile(filename string) *JSONFile {
	return &JSONFile{filename: filename}
}

// Load decodes the file into v. A missing file is reported with an error
// matching os.ErrNotExist.
func (f *JSONFile) Load(v interface{}) error {
	data, err := os.ReadFile(f.filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Save writes v tab indented, keeping non ascii text as is.
func (f *JSONFile) Save(v interface{}) error {
	return WriteFileAtomic(f.filename, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "\t")
		return enc.Encode(v)
	})
}

// Write appends txns to the transactions already in the file.
func (f *JSONFile) Write(txns []*domain.TaggedTransaction) error {
	all := []*domain.TaggedTransaction{}
	if err := f.Load(&all); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return f.Save(append(all, txns...))
}
