package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voidshard/spendmap/pkg/domain"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// SQLite archives tagged transactions and keeps the ledger of imported
// statements.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// check it meets the interfaces
var (
	_ Store  = &SQLite{}
	_ Ledger = &SQLite{}
)

func NewSQLite(dbPath string, log zerolog.Logger) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateLedger(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, log: log.With().Str("component", "sqlite").Logger()}, nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Write stores all transactions in one batch. Rows archived earlier for the
// same statements are replaced, so writing a statement twice keeps one copy.
func (s *SQLite) Write(txns []*domain.TaggedTransaction) error {
	batch := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	replaced := map[string]bool{}
	for _, t := range txns {
		if t.Statement == "" || replaced[t.Statement] {
			continue
		}
		replaced[t.Statement] = true
		res, err := tx.Exec(`DELETE FROM transactions WHERE statement = ?`, t.Statement)
		if err != nil {
			return fmt.Errorf("clear statement %s: %w", t.Statement, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			s.log.Warn().Str("statement", t.Statement).Int64("rows", n).Msg("replacing archived statement")
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO transactions (
			batch_id, statement, holder, date, business_name,
			transaction_amount, original_currency, billing_amount, billing_currency,
			voucher_number, details, category
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range txns {
		_, err := stmt.Exec(
			batch, t.Statement, t.Holder, t.Date.Format(dateLayout), t.BusinessName,
			t.TransactionAmount, t.OriginalCurrency, t.BillingAmount, t.BillingCurrency,
			t.VoucherNumber, t.Details, t.Category,
		)
		if err != nil {
			return fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.log.Info().Str("batch_id", batch).Int("transactions", len(txns)).Msg("archived transactions")
	return nil
}

// Seen reports whether a statement with this fingerprint was imported before.
func (s *SQLite) Seen(fingerprint string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM statements WHERE fingerprint = ?`, fingerprint).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("query statement %s: %w", fingerprint, err)
	}
	return true, nil
}

// Remember marks the statement as imported.
func (s *SQLite) Remember(report *domain.Report) error {
	if report.Fingerprint == "" {
		return fmt.Errorf("statement %q has no fingerprint", report.Source)
	}
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO statements (fingerprint, source, holder, imported_at) VALUES (?, ?, ?, ?)`,
		report.Fingerprint, report.Source, report.Holder, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record statement %s: %w", report.Source, err)
	}
	return nil
}

// Totals sums archived billing amounts per month and category.
func (s *SQLite) Totals() (map[domain.Month]map[string]float64, error) {
	rows, err := s.db.Query(`
		SELECT substr(date, 1, 7) AS ym, category, SUM(billing_amount)
		FROM transactions
		GROUP BY ym, category
	`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	totals := map[domain.Month]map[string]float64{}
	for rows.Next() {
		var (
			ym, category string
			sum          float64
		)
		if err := rows.Scan(&ym, &category, &sum); err != nil {
			return nil, fmt.Errorf("scan totals: %w", err)
		}
		t, err := time.Parse("2006-01", ym)
		if err != nil {
			return nil, fmt.Errorf("bad archived date %q: %w", ym, err)
		}
		month := domain.MonthOf(t)
		if totals[month] == nil {
			totals[month] = map[string]float64{}
		}
		totals[month][category] += sum
	}
	return totals, rows.Err()
}
