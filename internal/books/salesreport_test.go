package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSalesReport_Totals(t *testing.T) {
	sales := []SaleInvoice{
		{InvoiceNo: "INV-001", Date: "2025-01-05", Customer: "Happy Paws", Subtotal: 100, Tax: 10, Total: 110},
		{InvoiceNo: "INV-002", Date: "2025-01-06", Customer: "City Kennel", Subtotal: 200, Tax: 20, Total: 220},
	}

	rep := ComputeSalesReport(sales, "", "")

	assert.Len(t, rep.Invoices, 2)
	assert.Equal(t, 300.0, rep.TotalSubtotal)
	assert.Equal(t, 30.0, rep.TotalTax)
	assert.Equal(t, 330.0, rep.TotalSales)
}

func TestComputeSalesReport_DateRange(t *testing.T) {
	sales := []SaleInvoice{
		{InvoiceNo: "INV-001", Date: "2025-01-05", Customer: "Happy Paws", Total: 110},
		{InvoiceNo: "INV-002", Date: "2025-02-06", Customer: "City Kennel", Total: 220},
	}

	rep := ComputeSalesReport(sales, "2025-01-01", "2025-01-31")

	require.Len(t, rep.Invoices, 1)
	assert.Equal(t, "INV-001", rep.Invoices[0].InvoiceNo)
	assert.Equal(t, 110.0, rep.TotalSales)
}

func TestComputeSalesReport_ByDateSortedAscending(t *testing.T) {
	sales := []SaleInvoice{
		{InvoiceNo: "INV-002", Date: "2025-01-08", Customer: "A", Total: 50},
		{InvoiceNo: "INV-001", Date: "2025-01-05", Customer: "A", Total: 30},
		{InvoiceNo: "INV-003", Date: "2025-01-05", Customer: "B", Total: 20},
	}

	rep := ComputeSalesReport(sales, "", "")

	require.Len(t, rep.ByDate, 2)
	assert.Equal(t, SalesTotal{Key: "2025-01-05", Total: 50}, rep.ByDate[0])
	assert.Equal(t, SalesTotal{Key: "2025-01-08", Total: 50}, rep.ByDate[1])
}

func TestComputeSalesReport_ByCustomerSortedByAmountDescending(t *testing.T) {
	sales := []SaleInvoice{
		{InvoiceNo: "INV-001", Date: "2025-01-05", Customer: "Happy Paws", Total: 30},
		{InvoiceNo: "INV-002", Date: "2025-01-06", Customer: "City Kennel", Total: 100},
		{InvoiceNo: "INV-003", Date: "2025-01-07", Customer: "Happy Paws", Total: 40},
	}

	rep := ComputeSalesReport(sales, "", "")

	require.Len(t, rep.ByCustomer, 2)
	assert.Equal(t, "City Kennel", rep.ByCustomer[0].Key)
	assert.Equal(t, 100.0, rep.ByCustomer[0].Total)
	assert.Equal(t, "Happy Paws", rep.ByCustomer[1].Key)
	assert.Equal(t, 70.0, rep.ByCustomer[1].Total)
}

func TestComputeSalesReport_Empty(t *testing.T) {
	rep := ComputeSalesReport(nil, "", "")

	assert.Empty(t, rep.Invoices)
	assert.Equal(t, 0.0, rep.TotalSales)
	assert.Empty(t, rep.ByDate)
	assert.Empty(t, rep.ByCustomer)
}
