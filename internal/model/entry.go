package model

import "github.com/shopspring/decimal"

// ReportKind identifies one of the derived reports.
type ReportKind string

const (
	ReportAccounts ReportKind = "accounts"
	ReportYearly   ReportKind = "yearly"
	ReportFS       ReportKind = "financial-statement"
)

// ReportKinds lists every report kind in generation order.
func ReportKinds() []ReportKind {
	return []ReportKind{ReportAccounts, ReportYearly, ReportFS}
}

// Entry represents one parsed ledger row. It lives only for the duration of
// an aggregation pass and is never persisted.
type Entry struct {
	Date    string
	Account string
	Debit   decimal.Decimal // zero when empty or malformed
	Credit  decimal.Decimal // zero when empty or malformed
}

// Balance returns debit minus credit for this entry.
func (e Entry) Balance() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}
