package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerflow-dev/ledgerflow/internal/model"
)

// CashAccount is the account name the yearly cash-flow report tracks.
const CashAccount = "Cash"

// AccountBalances accumulates per-account balances. Iteration order is the
// order accounts were first seen, which is the contract for the accounts
// report (not alphabetical).
type AccountBalances struct {
	order   []string
	amounts map[string]decimal.Decimal
}

// NewAccountBalances returns an empty balance table.
func NewAccountBalances() *AccountBalances {
	return &AccountBalances{amounts: make(map[string]decimal.Decimal)}
}

// Seed registers accounts with a zero balance, fixing their position in the
// iteration order. Used to pre-seed the financial-statement table with the
// category tree's closed account set.
func (b *AccountBalances) Seed(accounts ...string) {
	for _, account := range accounts {
		if _, ok := b.amounts[account]; !ok {
			b.order = append(b.order, account)
			b.amounts[account] = decimal.Zero
		}
	}
}

// Add accumulates amount onto an account, creating it if absent.
func (b *AccountBalances) Add(account string, amount decimal.Decimal) {
	if _, ok := b.amounts[account]; !ok {
		b.order = append(b.order, account)
	}
	b.amounts[account] = b.amounts[account].Add(amount)
}

// AddExisting accumulates amount only when the account is already present,
// reporting whether it was. Unknown accounts are dropped, which is the
// closed-set behavior of the financial-statement table.
func (b *AccountBalances) AddExisting(account string, amount decimal.Decimal) bool {
	if _, ok := b.amounts[account]; !ok {
		return false
	}
	b.amounts[account] = b.amounts[account].Add(amount)
	return true
}

// Get returns the balance for an account, zero if unknown.
func (b *AccountBalances) Get(account string) decimal.Decimal {
	return b.amounts[account]
}

// Accounts returns account names in first-seen order.
func (b *AccountBalances) Accounts() []string {
	return b.order
}

// Len returns the number of accounts in the table.
func (b *AccountBalances) Len() int {
	return len(b.order)
}

// YearlyCash accumulates cash balances keyed by calendar year.
type YearlyCash map[int]decimal.Decimal

// Add accumulates amount onto a year.
func (y YearlyCash) Add(year int, amount decimal.Decimal) {
	y[year] = y[year].Add(amount)
}

// Years returns the recorded years sorted ascending.
func (y YearlyCash) Years() []int {
	years := make([]int, 0, len(y))
	for year := range y {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Tables holds the accumulators populated by one aggregation pass. Any nil
// table is skipped, so a single Fold serves both the per-kind tasks and the
// combined single-pass runner.
type Tables struct {
	Accounts *AccountBalances // open set, trial-balance report
	Yearly   YearlyCash       // Cash rows only, keyed by year
	Category *AccountBalances // pre-seeded closed set, financial statement
}

// Fold applies entries to every non-nil table. Aggregation is commutative
// across files and rows, so callers may fold file contents in any order.
func (t *Tables) Fold(entries []model.Entry) {
	for _, e := range entries {
		balance := e.Balance()

		if t.Accounts != nil {
			t.Accounts.Add(e.Account, balance)
		}
		if t.Yearly != nil && e.Account == CashAccount {
			if year, ok := ParseYear(e.Date); ok {
				t.Yearly.Add(year, balance)
			}
		}
		if t.Category != nil {
			t.Category.AddExisting(e.Account, balance)
		}
	}
}
