package store

import (
	"github.com/voidshard/spendmap/pkg/domain"
)

// Document is a single persisted value, loaded and saved whole.
type Document interface {
	Load(v interface{}) error
	Save(v interface{}) error
}

// Store archives classified transactions.
type Store interface {
	Write([]*domain.TaggedTransaction) error
}

// Ledger remembers which statements have been imported already.
type Ledger interface {
	Seen(fingerprint string) (bool, error)
	Remember(*domain.Report) error
}
