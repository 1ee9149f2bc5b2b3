package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerflow-dev/ledgerflow/internal/ledger"
	"github.com/ledgerflow-dev/ledgerflow/internal/model"
)

// Output file names, one per report kind, overwritten on each generation.
const (
	AccountsFile = "accounts.csv"
	YearlyFile   = "yearly.csv"
	FSFile       = "fs.csv"
)

// FileName returns the output file name for a report kind.
func FileName(kind model.ReportKind) string {
	switch kind {
	case model.ReportAccounts:
		return AccountsFile
	case model.ReportYearly:
		return YearlyFile
	case model.ReportFS:
		return FSFile
	}
	return string(kind) + ledger.SourceExt
}

// OutputFiles returns every report file name, used to exclude generated
// output from source listings.
func OutputFiles() []string {
	return []string{AccountsFile, YearlyFile, FSFile}
}

// FormatAccounts renders the trial-balance report: one line per account in
// first-seen order.
func FormatAccounts(balances *ledger.AccountBalances) []string {
	lines := make([]string, 0, balances.Len()+1)
	lines = append(lines, "Account,Balance")
	for _, account := range balances.Accounts() {
		lines = append(lines, fmt.Sprintf("%s,%s", account, balances.Get(account).StringFixed(2)))
	}
	return lines
}

// FormatYearly renders the cash-flow summary sorted ascending by year.
func FormatYearly(cash ledger.YearlyCash) []string {
	lines := make([]string, 0, len(cash)+1)
	lines = append(lines, "Financial Year,Cash Balance")
	for _, year := range cash.Years() {
		lines = append(lines, fmt.Sprintf("%d,%s", year, cash[year].StringFixed(2)))
	}
	return lines
}

// FormatFinancialStatement renders the categorized income statement and
// balance sheet. The closing identity line is diagnostic: the two sides may
// differ when the supplied data is unbalanced, and the formatter never
// aborts on a mismatch.
func FormatFinancialStatement(balances *ledger.AccountBalances) []string {
	var lines []string
	lines = append(lines, "Basic Financial Statement")
	lines = append(lines, "")

	lines = append(lines, "Income Statement")
	totalRevenue := decimal.Zero
	for _, account := range revenueAccounts {
		value := balances.Get(account)
		lines = append(lines, fmt.Sprintf("%s,%s", account, value.StringFixed(2)))
		totalRevenue = totalRevenue.Add(value)
	}
	totalExpenses := decimal.Zero
	for _, account := range expenseAccounts {
		value := balances.Get(account)
		lines = append(lines, fmt.Sprintf("%s,%s", account, value.StringFixed(2)))
		totalExpenses = totalExpenses.Add(value)
	}
	netIncome := totalRevenue.Sub(totalExpenses)
	lines = append(lines, fmt.Sprintf("Net Income,%s", netIncome.StringFixed(2)))

	lines = append(lines, "")
	lines = append(lines, "Balance Sheet")

	lines = append(lines, "Assets")
	totalAssets := decimal.Zero
	for _, account := range assetAccounts {
		value := balances.Get(account)
		lines = append(lines, fmt.Sprintf("%s,%s", account, value.StringFixed(2)))
		totalAssets = totalAssets.Add(value)
	}
	lines = append(lines, fmt.Sprintf("Total Assets,%s", totalAssets.StringFixed(2)))

	lines = append(lines, "")
	lines = append(lines, "Liabilities")
	totalLiabilities := decimal.Zero
	for _, account := range liabilityAccounts {
		value := balances.Get(account)
		lines = append(lines, fmt.Sprintf("%s,%s", account, value.StringFixed(2)))
		totalLiabilities = totalLiabilities.Add(value)
	}
	lines = append(lines, fmt.Sprintf("Total Liabilities,%s", totalLiabilities.StringFixed(2)))

	lines = append(lines, "")
	lines = append(lines, "Equity")
	totalEquity := decimal.Zero
	for _, account := range equityAccounts {
		value := balances.Get(account)
		lines = append(lines, fmt.Sprintf("%s,%s", account, value.StringFixed(2)))
		totalEquity = totalEquity.Add(value)
	}
	lines = append(lines, fmt.Sprintf("Retained Earnings (Net Income),%s", netIncome.StringFixed(2)))
	totalEquity = totalEquity.Add(netIncome)
	lines = append(lines, fmt.Sprintf("Total Equity,%s", totalEquity.StringFixed(2)))

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Assets = Liabilities + Equity, %s = %s",
		totalAssets.StringFixed(2), totalLiabilities.Add(totalEquity).StringFixed(2)))

	return lines
}
