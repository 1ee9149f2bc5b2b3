package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow-dev/ledgerflow/internal/model"
)

func entry(date, account, debit, credit string) model.Entry {
	return model.Entry{Date: date, Account: account, Debit: dec(debit), Credit: dec(credit)}
}

func TestAccountBalances_Additivity(t *testing.T) {
	// Final balance is the sum of debit-credit across all rows for the
	// account, regardless of row order.
	rows := []model.Entry{
		entry("2024-01-01", "Cash", "100.00", "0"),
		entry("2024-01-02", "Cash", "0", "30.00"),
		entry("2024-01-03", "Cash", "12.50", "0"),
	}

	forward := Tables{Accounts: NewAccountBalances()}
	forward.Fold(rows)

	reversed := Tables{Accounts: NewAccountBalances()}
	reversed.Fold([]model.Entry{rows[2], rows[1], rows[0]})

	assert.True(t, forward.Accounts.Get("Cash").Equal(dec("82.50")))
	assert.True(t, reversed.Accounts.Get("Cash").Equal(dec("82.50")))
}

func TestAccountBalances_InsertionOrder(t *testing.T) {
	tables := Tables{Accounts: NewAccountBalances()}
	tables.Fold([]model.Entry{
		entry("2024-01-01", "Sales Revenue", "0", "100.00"),
		entry("2024-01-01", "Cash", "100.00", "0"),
		entry("2024-01-02", "Sales Revenue", "0", "50.00"),
	})

	assert.Equal(t, []string{"Sales Revenue", "Cash"}, tables.Accounts.Accounts())
}

func TestYearlyCash_FiltersAndSorts(t *testing.T) {
	tables := Tables{Yearly: YearlyCash{}}
	tables.Fold([]model.Entry{
		entry("2024-02-01", "Cash", "0", "30.00"),
		entry("2023-06-01", "Cash", "150.00", "0"),
		entry("2023-01-01", "Sales Revenue", "0", "100.00"), // not Cash, skipped
	})

	require.Equal(t, []int{2023, 2024}, tables.Yearly.Years())
	assert.True(t, tables.Yearly[2023].Equal(dec("150.00")))
	assert.True(t, tables.Yearly[2024].Equal(dec("-30.00")))
}

func TestYearlyCash_UnparseableDateSkipsRow(t *testing.T) {
	tables := Tables{Yearly: YearlyCash{}}
	tables.Fold([]model.Entry{
		entry("garbage", "Cash", "10.00", "0"),
		entry("2024-01-01", "Cash", "5.00", "0"),
	})

	require.Equal(t, []int{2024}, tables.Yearly.Years())
	assert.True(t, tables.Yearly[2024].Equal(dec("5.00")))
}

func TestCategoryTable_DropsUnknownAccounts(t *testing.T) {
	seeded := NewAccountBalances()
	seeded.Seed("Cash", "Sales Revenue")

	tables := Tables{Category: seeded}
	tables.Fold([]model.Entry{
		entry("2024-01-01", "Cash", "100.00", "0"),
		entry("2024-01-01", "Mystery Account", "999.00", "0"),
	})

	assert.True(t, seeded.Get("Cash").Equal(dec("100.00")))
	assert.True(t, seeded.Get("Mystery Account").IsZero())
	assert.Equal(t, 2, seeded.Len(), "unknown account must not be added")
}

func TestFold_CombinedPass(t *testing.T) {
	// One pass populates all three accumulators, matching three separate
	// passes over the same rows.
	seeded := NewAccountBalances()
	seeded.Seed("Cash")

	tables := Tables{
		Accounts: NewAccountBalances(),
		Yearly:   YearlyCash{},
		Category: seeded,
	}
	tables.Fold([]model.Entry{
		entry("2023-06-01", "Cash", "150.00", "0"),
		entry("2023-01-01", "Sales Revenue", "0", "100.00"),
	})

	assert.True(t, tables.Accounts.Get("Cash").Equal(dec("150.00")))
	assert.True(t, tables.Accounts.Get("Sales Revenue").Equal(dec("-100.00")))
	assert.True(t, tables.Yearly[2023].Equal(dec("150.00")))
	assert.True(t, seeded.Get("Cash").Equal(dec("150.00")))
}
