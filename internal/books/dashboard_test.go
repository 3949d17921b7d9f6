package books

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDashboard_Counts(t *testing.T) {
	accounts := testChart()
	vouchers := []Voucher{
		simpleVoucher("JV-001", "2025-01-10", "1001", "4005", 100),
	}
	stock := []StockItem{
		{ItemCode: "ITM-001", Quantity: 200, UnitPrice: 15, Value: 3000},
		{ItemCode: "ITM-002", Quantity: 5, UnitPrice: 25, Value: 125},
	}
	sales := []SaleInvoice{
		{InvoiceNo: "INV-001", Date: "2025-01-08", Total: 110},
	}

	d := ComputeDashboard(accounts, vouchers, stock, sales)

	assert.Equal(t, 4, d.AccountCount)
	assert.Equal(t, 1, d.VoucherCount)
	assert.Equal(t, 1, d.SaleCount)
	assert.Equal(t, 2, d.StockItemCount)
	assert.Equal(t, 110.0, d.TotalRevenue)
	assert.Equal(t, 3125.0, d.InventoryValue)
}

func TestComputeDashboard_LowStock(t *testing.T) {
	stock := []StockItem{
		{ItemCode: "ITM-001", Quantity: 200},
		{ItemCode: "ITM-002", Quantity: 19},
		{ItemCode: "ITM-003", Quantity: 0},
		{ItemCode: "ITM-004", Quantity: 20},
	}

	d := ComputeDashboard(nil, nil, stock, nil)

	require.Len(t, d.LowStock, 2)
	assert.Equal(t, "ITM-002", d.LowStock[0].ItemCode)
	assert.Equal(t, "ITM-003", d.LowStock[1].ItemCode)
}

func TestComputeDashboard_RecentListsNewestFirst(t *testing.T) {
	var vouchers []Voucher
	for i := 1; i <= 7; i++ {
		no := fmt.Sprintf("JV-%03d", i)
		vouchers = append(vouchers, simpleVoucher(no, "2025-01-10", "1001", "4005", 10))
	}

	d := ComputeDashboard(nil, vouchers, nil, nil)

	require.Len(t, d.RecentVouchers, 5)
	assert.Equal(t, "JV-007", d.RecentVouchers[0].VoucherNo)
	assert.Equal(t, "JV-003", d.RecentVouchers[4].VoucherNo)
}
