package domain

import (
	"encoding/json"
	"time"
)

// Transaction is a single statement line, as found in one data row.
type Transaction struct {
	Date              time.Time `json:"date"`
	BusinessName      string    `json:"business_name"`
	TransactionAmount float64   `json:"transaction_amount"`
	OriginalCurrency  string    `json:"original_currency"`
	BillingAmount     float64   `json:"billing_amount"`
	BillingCurrency   string    `json:"billing_currency"`
	VoucherNumber     int64     `json:"voucher_number"`
	Details           string    `json:"details"`
}

type Card struct {
	LastDigits int    `json:"last_digits"`
	CreditType string `json:"credit_type"`

	// nil when the statement gives no billing date for the card
	BillingDate *time.Time `json:"billing_date"`

	LocalTransactions    []Transaction `json:"local_transactions"`
	OverseasTransactions []Transaction `json:"overseas_transactions"`
}

// Transactions returns local then overseas transactions.
func (c *Card) Transactions() []Transaction {
	all := make([]Transaction, 0, len(c.LocalTransactions)+len(c.OverseasTransactions))
	all = append(all, c.LocalTransactions...)
	return append(all, c.OverseasTransactions...)
}

// Report is one parsed statement: a holder and their cards.
type Report struct {
	Holder string `json:"holder"`
	Cards  []Card `json:"cards"`

	// where the report was read from, if known
	Source      string `json:"source,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// TaggedTransaction is a transaction with the holder it belongs to and the
// category it was classified into.
type TaggedTransaction struct {
	Transaction

	Holder   string `json:"holder"`
	Category string `json:"category"`

	// fingerprint of the statement the transaction came from
	Statement string `json:"statement,omitempty"`
}

func (t *TaggedTransaction) Month() Month {
	return MonthOf(t.Date)
}

func (t *TaggedTransaction) JSON() ([]byte, error) {
	return json.Marshal(t)
}
