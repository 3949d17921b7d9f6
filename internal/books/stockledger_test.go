package books

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grnFor(no, date, itemCode string, qty, price float64) GRN {
	return GRN{
		GRNNo: no,
		Date:  date,
		Lines: []GRNLine{
			{ItemCode: itemCode, OrderedQty: qty, ReceivedQty: qty, UnitPrice: price, Amount: qty * price},
		},
		Total: qty * price,
	}
}

func saleFor(no, date, itemCode string, qty, price float64) SaleInvoice {
	return SaleInvoice{
		InvoiceNo: no,
		Date:      date,
		Lines: []SaleLine{
			{ItemCode: itemCode, Quantity: qty, UnitPrice: price, Amount: qty * price},
		},
		Subtotal: qty * price,
		Total:    qty * price,
	}
}

func TestComputeStockLedger_OpeningRow(t *testing.T) {
	item := &StockItem{ItemCode: "ITM-001", ItemName: "Canine Multivitamins", Quantity: 200}

	sl := ComputeStockLedger(item, nil, nil, "", "")

	require.Len(t, sl.Rows, 1)
	open := sl.Rows[0]
	assert.Equal(t, "Adjustment", open.Type)
	assert.Equal(t, "Opening Balance", open.ReferenceNo)
	assert.Equal(t, 200.0, open.In)
	assert.Equal(t, 200.0, open.Balance)
	assert.Equal(t, 200.0, sl.ClosingBalance)
}

func TestComputeStockLedger_ReceiptThenIssue(t *testing.T) {
	item := &StockItem{ItemCode: "ITM-001", ItemName: "Canine Multivitamins", Quantity: 10}
	grns := []GRN{grnFor("GRN-001", "2025-01-05", "ITM-001", 5, 15)}
	sales := []SaleInvoice{saleFor("INV-001", "2025-01-08", "ITM-001", 3, 20)}

	sl := ComputeStockLedger(item, grns, sales, "", "")

	require.Len(t, sl.Rows, 3)
	assert.Equal(t, 15.0, sl.TotalIn)
	assert.Equal(t, 3.0, sl.TotalOut)
	assert.Equal(t, 12.0, sl.ClosingBalance)

	// Rows come back date-sorted.
	dates := make([]string, len(sl.Rows))
	for i, r := range sl.Rows {
		dates[i] = r.Date
	}
	assert.True(t, sort.StringsAreSorted(dates))
}

func TestComputeStockLedger_BalanceReadsInCollectionOrder(t *testing.T) {
	// A sale dated before a receipt: the balance column is computed with
	// receipts first, then re-sorted by date, so the interleaved rows keep
	// their collection-order balances.
	item := &StockItem{ItemCode: "ITM-001", ItemName: "Canine Multivitamins", Quantity: 10}
	grns := []GRN{grnFor("GRN-001", "2025-01-10", "ITM-001", 5, 15)}
	sales := []SaleInvoice{saleFor("INV-001", "2025-01-05", "ITM-001", 3, 20)}

	sl := ComputeStockLedger(item, grns, sales, "", "")

	require.Len(t, sl.Rows, 3)
	assert.Equal(t, "INV-001", sl.Rows[1].ReferenceNo)
	assert.Equal(t, "GRN-001", sl.Rows[2].ReferenceNo)
	// Collection-order balances: opening 10, GRN 15, sale 12.
	assert.Equal(t, 12.0, sl.Rows[1].Balance)
	assert.Equal(t, 15.0, sl.Rows[2].Balance)
	// Closing is the last row after the date sort, not the arithmetic end.
	assert.Equal(t, 15.0, sl.ClosingBalance)
}

func TestComputeStockLedger_SkipsZeroReceipts(t *testing.T) {
	item := &StockItem{ItemCode: "ITM-001", ItemName: "Canine Multivitamins", Quantity: 10}
	grns := []GRN{
		{
			GRNNo: "GRN-001",
			Date:  "2025-01-05",
			Lines: []GRNLine{
				{ItemCode: "ITM-001", OrderedQty: 5, ReceivedQty: 0, UnitPrice: 15},
			},
		},
	}

	sl := ComputeStockLedger(item, grns, nil, "", "")

	require.Len(t, sl.Rows, 1)
}

func TestComputeStockLedger_DateRangeExcludesOutside(t *testing.T) {
	item := &StockItem{ItemCode: "ITM-001", ItemName: "Canine Multivitamins", Quantity: 10}
	grns := []GRN{
		grnFor("GRN-001", "2025-01-05", "ITM-001", 5, 15),
		grnFor("GRN-002", "2025-03-05", "ITM-001", 7, 15),
	}

	sl := ComputeStockLedger(item, grns, nil, "2025-01-01", "2025-01-31")

	require.Len(t, sl.Rows, 2)
	assert.Equal(t, "GRN-001", sl.Rows[1].ReferenceNo)
	assert.Equal(t, 15.0, sl.TotalIn) // opening In counts toward TotalIn
}

func TestComputeStockLedger_NilItem(t *testing.T) {
	sl := ComputeStockLedger(nil, nil, nil, "", "")

	assert.Empty(t, sl.Rows)
	assert.Equal(t, 0.0, sl.ClosingBalance)
}

func TestComputeStockLedger_OtherItemsIgnored(t *testing.T) {
	item := &StockItem{ItemCode: "ITM-002", ItemName: "Feline Deworming Tablets", Quantity: 150}
	grns := []GRN{grnFor("GRN-001", "2025-01-05", "ITM-001", 5, 15)}
	sales := []SaleInvoice{saleFor("INV-001", "2025-01-08", "ITM-001", 3, 20)}

	sl := ComputeStockLedger(item, grns, sales, "", "")

	require.Len(t, sl.Rows, 1)
	assert.Equal(t, 150.0, sl.ClosingBalance)
}
