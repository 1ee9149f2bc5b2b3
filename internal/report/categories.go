package report

// The financial statement is driven by a fixed three-level taxonomy:
// Section -> Group -> account names. It is configuration, not runtime state;
// every account name is unique across the whole tree.

// Group is a named list of accounts within a statement section.
type Group struct {
	Name     string
	Accounts []string
}

// Section is a titled block of the financial statement.
type Section struct {
	Name   string
	Groups []Group
}

var (
	revenueAccounts = []string{"Sales Revenue"}

	expenseAccounts = []string{
		"Cost of Goods Sold",
		"Salaries Expense",
		"Rent Expense",
		"Utilities Expense",
		"Interest Expense",
		"Tax Expense",
	}

	assetAccounts = []string{
		"Cash",
		"Accounts Receivable",
		"Inventory",
		"Fixed Assets",
		"Prepaid Expenses",
	}

	liabilityAccounts = []string{
		"Accounts Payable",
		"Loan Payable",
		"Sales Tax Payable",
		"Accrued Liabilities",
		"Unearned Revenue",
		"Dividends Payable",
	}

	equityAccounts = []string{"Common Stock", "Retained Earnings"}
)

// Categories is the taxonomy in report line order.
var Categories = []Section{
	{
		Name: "Income Statement",
		Groups: []Group{
			{Name: "Revenues", Accounts: revenueAccounts},
			{Name: "Expenses", Accounts: expenseAccounts},
		},
	},
	{
		Name: "Balance Sheet",
		Groups: []Group{
			{Name: "Assets", Accounts: assetAccounts},
			{Name: "Liabilities", Accounts: liabilityAccounts},
			{Name: "Equity", Accounts: equityAccounts},
		},
	},
}

// CategoryAccounts returns every account in the taxonomy in tree order,
// used to pre-seed the financial-statement balance table.
func CategoryAccounts() []string {
	var accounts []string
	for _, section := range Categories {
		for _, group := range section.Groups {
			accounts = append(accounts, group.Accounts...)
		}
	}
	return accounts
}
