package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow-dev/ledgerflow/internal/ledger"
	"github.com/ledgerflow-dev/ledgerflow/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCategoryAccountsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, account := range CategoryAccounts() {
		assert.False(t, seen[account], "account %q appears twice in the taxonomy", account)
		seen[account] = true
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "accounts.csv", FileName(model.ReportAccounts))
	assert.Equal(t, "yearly.csv", FileName(model.ReportYearly))
	assert.Equal(t, "fs.csv", FileName(model.ReportFS))
}

func TestFormatAccounts(t *testing.T) {
	balances := ledger.NewAccountBalances()
	balances.Add("Sales Revenue", dec("-100"))
	balances.Add("Cash", dec("82.5"))

	lines := FormatAccounts(balances)
	require.Equal(t, []string{
		"Account,Balance",
		"Sales Revenue,-100.00",
		"Cash,82.50",
	}, lines, "lines follow first-seen order, values to two decimals")
}

func TestFormatYearly_SortedAscending(t *testing.T) {
	cash := ledger.YearlyCash{}
	cash.Add(2024, dec("-30"))
	cash.Add(2023, dec("150"))

	lines := FormatYearly(cash)
	require.Equal(t, []string{
		"Financial Year,Cash Balance",
		"2023,150.00",
		"2024,-30.00",
	}, lines)
}

// A fixture whose raw debit-minus-credit balances satisfy the closing
// identity: an expense paid from cash plus a revenue-to-retained-earnings
// closing pair.
func balancedFixture() *ledger.AccountBalances {
	balances := ledger.NewAccountBalances()
	balances.Seed(CategoryAccounts()...)
	balances.AddExisting("Rent Expense", dec("50"))
	balances.AddExisting("Cash", dec("-50"))
	balances.AddExisting("Sales Revenue", dec("100"))
	balances.AddExisting("Retained Earnings", dec("-100"))
	return balances
}

func TestFormatFinancialStatement_Shape(t *testing.T) {
	lines := FormatFinancialStatement(balancedFixture())

	require.Equal(t, "Basic Financial Statement", lines[0])
	require.Equal(t, "", lines[1])
	require.Equal(t, "Income Statement", lines[2])

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Net Income,50.00")
	assert.Contains(t, joined, "Total Assets,-50.00")
	assert.Contains(t, joined, "Total Liabilities,0.00")
	assert.Contains(t, joined, "Retained Earnings (Net Income),50.00")
	assert.Contains(t, joined, "Total Equity,-50.00")
}

func TestFormatFinancialStatement_ClosingIdentity(t *testing.T) {
	lines := FormatFinancialStatement(balancedFixture())

	last := lines[len(lines)-1]
	require.True(t, strings.HasPrefix(last, "Assets = Liabilities + Equity, "))

	sides := strings.Split(strings.TrimPrefix(last, "Assets = Liabilities + Equity, "), " = ")
	require.Len(t, sides, 2)
	assert.Equal(t, sides[0], sides[1], "balanced data must produce equal sides")
}

func TestFormatFinancialStatement_ImbalanceDoesNotAbort(t *testing.T) {
	balances := ledger.NewAccountBalances()
	balances.Seed(CategoryAccounts()...)
	balances.AddExisting("Cash", dec("500")) // one-sided, deliberately unbalanced

	lines := FormatFinancialStatement(balances)
	last := lines[len(lines)-1]
	assert.Equal(t, "Assets = Liabilities + Equity, 500.00 = 0.00", last)
}

func TestFormatFinancialStatement_Deterministic(t *testing.T) {
	first := strings.Join(FormatFinancialStatement(balancedFixture()), "\n")
	second := strings.Join(FormatFinancialStatement(balancedFixture()), "\n")
	assert.Equal(t, first, second)
}
