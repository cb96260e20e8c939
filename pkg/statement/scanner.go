// Package statement rebuilds the holder -> card -> transaction structure of a
// credit card statement export from its flat rows.
//
// The export has no schema markers. A statement is laid out as:
//
//	holder row
//	separator row
//	card row            "<credit type>-<last digits>", billing date in column 3
//	  [title row]       local transactions
//	  heading row
//	  data rows ...     subtotal lines mixed in
//	  end row
//	  [title row]       overseas transactions
//	  heading row
//	  data rows ...
//	  end row
//	card row ...
//
// A blank row in place of the local heading means the card has no
// transactions at all.
package statement

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/voidshard/spendmap/pkg/domain"
	"github.com/voidshard/spendmap/pkg/table"
)

const (
	colDate = iota
	colBusiness
	colTransactionAmount
	colOriginalCurrency
	colBillingAmount
	colBillingCurrency
	colVoucher
	colDetails
)

// the card row keeps its billing date in the third column
const colBillingDate = 2

type Option func(*Scanner)

// WithLogger traces row decisions at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scanner) {
		s.log = log.With().Str("component", "statement").Logger()
	}
}

// Scanner walks a table.Source once, front to back.
type Scanner struct {
	src table.Source
	row int // rows consumed so far
	log zerolog.Logger
}

func NewScanner(src table.Source, opts ...Option) *Scanner {
	s := &Scanner{src: src, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse reads a whole statement from src.
func Parse(src table.Source, opts ...Option) (*domain.Report, error) {
	return NewScanner(src, opts...).Report()
}

// Report consumes the source and returns the statement it holds. Running out
// of rows while looking for the next card is the normal way to finish.
func (s *Scanner) Report() (*domain.Report, error) {
	first, err := s.next()
	if err == io.EOF {
		return nil, ErrEmptyStatement
	} else if err != nil {
		return nil, err
	}

	report := &domain.Report{Holder: cellText(first.Cell(0)), Cards: []domain.Card{}}

	// fixed separator under the holder
	if _, err := s.next(); err == io.EOF {
		return report, nil
	} else if err != nil {
		return nil, err
	}

	for {
		card, err := s.Card()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		report.Cards = append(report.Cards, *card)
	}

	s.log.Debug().Str("holder", report.Holder).Int("cards", len(report.Cards)).Int("rows", s.row).Msg("statement parsed")
	return report, nil
}

// Card reads one card row and its two transaction blocks. It returns io.EOF
// if the source is exhausted before a card row is found.
func (s *Scanner) Card() (*domain.Card, error) {
	row, err := s.nextNonEmpty()
	if err != nil {
		return nil, err
	}

	card, err := s.cardDetails(row)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("row", s.row).Str("type", card.CreditType).Int("digits", card.LastDigits).Msg("card")

	local, err := s.block("local")
	switch {
	case err == errEmptySection, err == io.EOF:
		return card, nil
	case err != nil:
		return nil, err
	}
	card.LocalTransactions = local

	overseas, err := s.block("overseas")
	switch {
	case err == errEmptySection, err == io.EOF:
	case err != nil:
		return nil, err
	default:
		card.OverseasTransactions = overseas
	}

	return card, nil
}

func (s *Scanner) cardDetails(row table.Row) (*domain.Card, error) {
	id := cellText(row.Cell(0))
	idx := strings.LastIndex(id, "-")
	if idx < 0 {
		return nil, s.errorf(nil, "card id %q has no '-'", id)
	}

	digits, err := strconv.Atoi(strings.TrimSpace(id[idx+1:]))
	if err != nil {
		return nil, s.errorf(err, "card id %q has a non numeric suffix", id)
	}

	card := &domain.Card{
		CreditType:           strings.TrimSpace(id[:idx]),
		LastDigits:           digits,
		LocalTransactions:    []domain.Transaction{},
		OverseasTransactions: []domain.Transaction{},
	}

	if c := row.Cell(colBillingDate); !table.IsEmpty(c) {
		billing, err := cellDate(c, billingDateLayouts)
		if err != nil {
			return nil, s.errorf(err, "card %q billing date", id)
		}
		card.BillingDate = &billing
	}

	return card, nil
}

// block reads an optional title, a heading and the data rows up to the end
// row. It returns errEmptySection for a blank row where the heading should
// be, and io.EOF if the source runs out before a heading.
func (s *Scanner) block(name string) ([]domain.Transaction, error) {
	row, err := s.next()
	if err != nil {
		return nil, err
	}

	if table.IsTitleRow(row) {
		s.log.Debug().Int("row", s.row).Str("block", name).Str("title", cellText(row.Cell(0))).Msg("title")
		row, err = s.next()
		if err != nil {
			return nil, err
		}
	}

	if !table.IsTransactionHeadingRow(row) {
		if table.IsEmptyRow(row) {
			s.log.Debug().Int("row", s.row).Str("block", name).Msg("no transactions")
			return nil, errEmptySection
		}
		return nil, s.errorf(nil, "expected %s transactions heading", name)
	}

	txns := []domain.Transaction{}
	for {
		row, err := s.next()
		if err == io.EOF {
			return txns, nil
		} else if err != nil {
			return nil, err
		}

		// order matters, an end row also looks like a non transaction row
		if table.IsEndOfTransactionRow(row) {
			break
		}
		if table.IsNonTransactionDataRow(row) {
			s.log.Debug().Int("row", s.row).Str("block", name).Msg("skipping non transaction row")
			continue
		}

		txn, err := s.transaction(row)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}

	s.log.Debug().Int("row", s.row).Str("block", name).Int("transactions", len(txns)).Msg("block done")
	return txns, nil
}

func (s *Scanner) transaction(row table.Row) (domain.Transaction, error) {
	date, err := cellDate(row.Cell(colDate), transactionDateLayouts)
	if err != nil {
		return domain.Transaction{}, s.errorf(err, "transaction date")
	}

	amount, err := cellNumber(row.Cell(colTransactionAmount))
	if err != nil {
		return domain.Transaction{}, s.errorf(err, "transaction amount")
	}

	billing, err := cellNumber(row.Cell(colBillingAmount))
	if err != nil {
		return domain.Transaction{}, s.errorf(err, "billing amount")
	}

	voucher, err := cellNumber(row.Cell(colVoucher))
	if err != nil {
		return domain.Transaction{}, s.errorf(err, "voucher number")
	}

	return domain.Transaction{
		Date:              date,
		BusinessName:      cellText(row.Cell(colBusiness)),
		TransactionAmount: amount,
		OriginalCurrency:  cellText(row.Cell(colOriginalCurrency)),
		BillingAmount:     billing,
		BillingCurrency:   cellText(row.Cell(colBillingCurrency)),
		VoucherNumber:     int64(voucher),
		Details:           cellText(row.Cell(colDetails)),
	}, nil
}

func (s *Scanner) next() (table.Row, error) {
	row, err := s.src.Next()
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, fmt.Errorf("read row %d: %w", s.row+1, err)
	}
	s.row++
	return row, nil
}

// nextNonEmpty skips blank rows, which some exports leave between cards and
// at the very end.
func (s *Scanner) nextNonEmpty() (table.Row, error) {
	for {
		row, err := s.next()
		if err != nil {
			return nil, err
		}
		if !table.IsEmptyRow(row) {
			return row, nil
		}
	}
}

func (s *Scanner) errorf(err error, format string, args ...interface{}) error {
	return &ParseError{Row: s.row, Reason: fmt.Sprintf(format, args...), Err: err}
}
