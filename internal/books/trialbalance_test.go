package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() []Account {
	return []Account{
		{Code: "1001", Name: "Cash in Hand", Type: TypeAsset},
		{Code: "2001", Name: "Accounts Payable - Suppliers", Type: TypeLiability},
		{Code: "4005", Name: "Clinical Services Income", Type: TypeRevenue},
		{Code: "6002", Name: "Rent Expense", Type: TypeExpense},
	}
}

func findRow(t *testing.T, tb *TrialBalance, code string) TrialBalanceRow {
	t.Helper()
	for _, g := range tb.Groups {
		for _, r := range g.Rows {
			if r.Code == code {
				return r
			}
		}
	}
	t.Fatalf("row %s not found", code)
	return TrialBalanceRow{}
}

func TestComputeTrialBalance_BalancedFromBalancedVouchers(t *testing.T) {
	vouchers := []Voucher{
		simpleVoucher("JV-001", "2025-01-10", "1001", "4005", 500),
		simpleVoucher("JV-002", "2025-01-12", "6002", "1001", 200),
	}

	tb := ComputeTrialBalance(testChart(), vouchers, "")

	assert.Equal(t, tb.TotalDebit, tb.TotalCredit)
	assert.True(t, tb.Balanced)
	assert.Equal(t, 0.0, tb.Difference)

	cash := findRow(t, tb, "1001")
	assert.Equal(t, 500.0, cash.Debit)
	assert.Equal(t, 200.0, cash.Credit)
}

func TestComputeTrialBalance_OpeningBalancesSeedColumns(t *testing.T) {
	accounts := []Account{
		{Code: "1001", Name: "Cash in Hand", Type: TypeAsset, OpeningBalance: 1000},
		{Code: "3001", Name: "Owner Capital", Type: TypeEquity, OpeningBalance: -1000},
	}

	tb := ComputeTrialBalance(accounts, nil, "")

	assert.Equal(t, 1000.0, tb.TotalDebit)
	assert.Equal(t, 1000.0, tb.TotalCredit)
	assert.True(t, tb.Balanced)

	capital := findRow(t, tb, "3001")
	assert.Equal(t, 0.0, capital.Debit)
	assert.Equal(t, 1000.0, capital.Credit)
}

func TestComputeTrialBalance_UnknownBucketForDanglingCodes(t *testing.T) {
	vouchers := []Voucher{
		{
			VoucherNo: "JV-001",
			Date:      "2025-01-10",
			Lines: []VoucherLine{
				{AccountCode: "1001", Debit: 100},
				{AccountCode: "9999", AccountName: "Mystery Account", Credit: 100},
			},
		},
	}

	tb := ComputeTrialBalance(testChart(), vouchers, "")

	row := findRow(t, tb, "9999")
	assert.Equal(t, TypeUnknown, row.Type)
	assert.Equal(t, "Mystery Account", row.Name)
	assert.Equal(t, 100.0, row.Credit)
	assert.True(t, tb.Balanced)
}

func TestComputeTrialBalance_DropsAllZeroRows(t *testing.T) {
	vouchers := []Voucher{
		simpleVoucher("JV-001", "2025-01-10", "1001", "4005", 500),
	}

	tb := ComputeTrialBalance(testChart(), vouchers, "")

	for _, g := range tb.Groups {
		for _, r := range g.Rows {
			assert.False(t, r.Debit == 0 && r.Credit == 0, "zero row %s survived", r.Code)
		}
	}
	// Liability and expense accounts had no activity at all.
	for _, g := range tb.Groups {
		assert.NotEqual(t, TypeLiability, g.Type)
		assert.NotEqual(t, TypeExpense, g.Type)
	}
}

func TestComputeTrialBalance_AsOfExcludesLaterVouchers(t *testing.T) {
	vouchers := []Voucher{
		simpleVoucher("JV-001", "2025-01-10", "1001", "4005", 500),
		simpleVoucher("JV-002", "2025-03-01", "1001", "4005", 999),
	}

	tb := ComputeTrialBalance(testChart(), vouchers, "2025-01-31")

	assert.Equal(t, "2025-01-31", tb.AsOf)
	assert.Equal(t, 500.0, tb.TotalDebit)
	assert.Equal(t, 500.0, tb.TotalCredit)
}

func TestComputeTrialBalance_GroupsInFirstSeenTypeOrder(t *testing.T) {
	accounts := []Account{
		{Code: "1001", Name: "Cash in Hand", Type: TypeAsset, OpeningBalance: 10},
		{Code: "4005", Name: "Clinical Services Income", Type: TypeRevenue, OpeningBalance: -10},
		{Code: "1002", Name: "Bank Account", Type: TypeAsset, OpeningBalance: 5},
		{Code: "3001", Name: "Owner Capital", Type: TypeEquity, OpeningBalance: -5},
	}

	tb := ComputeTrialBalance(accounts, nil, "")

	require.Len(t, tb.Groups, 3)
	assert.Equal(t, TypeAsset, tb.Groups[0].Type)
	assert.Equal(t, TypeRevenue, tb.Groups[1].Type)
	assert.Equal(t, TypeEquity, tb.Groups[2].Type)
	require.Len(t, tb.Groups[0].Rows, 2)
	assert.Equal(t, "1001", tb.Groups[0].Rows[0].Code)
	assert.Equal(t, "1002", tb.Groups[0].Rows[1].Code)
}

func TestComputeTrialBalance_UnbalancedDifference(t *testing.T) {
	vouchers := []Voucher{
		{
			VoucherNo: "JV-001",
			Date:      "2025-01-10",
			Lines: []VoucherLine{
				{AccountCode: "1001", Debit: 100},
				{AccountCode: "4005", Credit: 70},
			},
		},
	}

	tb := ComputeTrialBalance(testChart(), vouchers, "")

	assert.False(t, tb.Balanced)
	assert.InDelta(t, 30.0, tb.Difference, 1e-9)
}
