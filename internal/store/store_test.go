package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microbooks/microbooks/internal/books"
)

func TestAccounts_SeedsDefaultChart(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, len(books.DefaultChart))

	// Seeding persists: the key now exists in the KV.
	_, ok, err := s.kv.Load(ctx, KeyChartOfAccounts)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccounts_ExistingDataNotReseeded(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.SaveAccounts(ctx, []books.Account{
		{ID: "1", Code: "1001", Name: "Cash in Hand", Type: books.TypeAsset},
	}))

	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "1001", accounts[0].Code)
}

func TestAccounts_EmptyListStaysEmpty(t *testing.T) {
	// An explicitly saved empty chart is not the same as a missing one.
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.SaveAccounts(ctx, nil))

	accounts, err := s.Accounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestCreateAccount(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	acct := &books.Account{Code: "7001", Name: "Sundry Income", Type: books.TypeRevenue}
	require.NoError(t, s.CreateAccount(ctx, acct))
	assert.NotEmpty(t, acct.ID)

	got, err := s.Account(ctx, "7001")
	require.NoError(t, err)
	assert.Equal(t, "Sundry Income", got.Name)

	dup := &books.Account{Code: "7001", Name: "Duplicate", Type: books.TypeRevenue}
	assert.ErrorIs(t, s.CreateAccount(ctx, dup), books.ErrDuplicateAccount)
}

func TestUpdateAccount(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	updated := &books.Account{Code: "1001", Name: "Petty Cash", Type: books.TypeAsset, OpeningBalance: 50}
	require.NoError(t, s.UpdateAccount(ctx, updated))

	got, err := s.Account(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "Petty Cash", got.Name)
	assert.Equal(t, 50.0, got.OpeningBalance)
	assert.NotEmpty(t, got.ID) // ID carried over from the seeded row

	missing := &books.Account{Code: "9999", Name: "Nope", Type: books.TypeAsset}
	assert.ErrorIs(t, s.UpdateAccount(ctx, missing), books.ErrAccountNotFound)
}

func TestDeleteAccount(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.DeleteAccount(ctx, "1001"))

	_, err := s.Account(ctx, "1001")
	assert.ErrorIs(t, err, books.ErrAccountNotFound)

	assert.ErrorIs(t, s.DeleteAccount(ctx, "1001"), books.ErrAccountNotFound)
}

func TestAppendVoucher(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	v := &books.Voucher{
		VoucherNo: "JV-001",
		Date:      "2025-01-10",
		Type:      books.VoucherJournal,
		Lines: []books.VoucherLine{
			{AccountCode: "1001", Debit: 100},
			{AccountCode: "4005", Credit: 100},
		},
	}
	require.NoError(t, s.AppendVoucher(ctx, v))
	assert.NotEmpty(t, v.ID)

	vouchers, err := s.Vouchers(ctx)
	require.NoError(t, err)
	require.Len(t, vouchers, 1)
	assert.Equal(t, "JV-001", vouchers[0].VoucherNo)
}

func TestAppendVoucher_StructuralValidation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	noLines := &books.Voucher{VoucherNo: "JV-001", Date: "2025-01-10", Type: books.VoucherJournal}
	assert.ErrorIs(t, s.AppendVoucher(ctx, noLines), books.ErrVoucherNoLines)

	// An unbalanced voucher is structurally fine: balance enforcement belongs
	// to the API layer.
	unbalanced := &books.Voucher{
		VoucherNo: "JV-002",
		Date:      "2025-01-10",
		Type:      books.VoucherJournal,
		Lines: []books.VoucherLine{
			{AccountCode: "1001", Debit: 100},
		},
	}
	assert.NoError(t, s.AppendVoucher(ctx, unbalanced))
}

func TestStock_SeedsSampleInventory(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	stock, err := s.Stock(ctx)
	require.NoError(t, err)
	assert.Len(t, stock, len(books.SampleStock))
}

func TestSaveGRN_AppendsAndBumpsStock(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	before, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)

	grn := &books.GRN{
		GRNNo: "GRN-001",
		Date:  "2025-01-05",
		Lines: []books.GRNLine{
			{ItemCode: "ITM-001", OrderedQty: 10, ReceivedQty: 10, UnitPrice: before.UnitPrice},
		},
	}
	require.NoError(t, s.SaveGRN(ctx, grn))

	grns, err := s.GRNs(ctx)
	require.NoError(t, err)
	require.Len(t, grns, 1)

	after, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)
	assert.Equal(t, before.Quantity+10, after.Quantity)
	assert.InDelta(t, after.Quantity*after.UnitPrice, after.Value, 1e-9)
}

func TestSaveGRN_CreatesUnknownItem(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	grn := &books.GRN{
		GRNNo: "GRN-001",
		Date:  "2025-01-05",
		Lines: []books.GRNLine{
			{ItemCode: "ITM-NEW", ItemName: "Equine Supplement", OrderedQty: 4, ReceivedQty: 4, UnitPrice: 30},
		},
	}
	require.NoError(t, s.SaveGRN(ctx, grn))

	item, err := s.StockItem(ctx, "ITM-NEW")
	require.NoError(t, err)
	assert.Equal(t, "Equine Supplement", item.ItemName)
	assert.Equal(t, 4.0, item.Quantity)
	assert.Equal(t, 120.0, item.Value)
}

func TestSaveGRN_ZeroReceiptHasNoStockEffect(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	before, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)
	beforeQty := before.Quantity

	grn := &books.GRN{
		GRNNo: "GRN-001",
		Date:  "2025-01-05",
		Lines: []books.GRNLine{
			{ItemCode: "ITM-001", OrderedQty: 10, ReceivedQty: 0, UnitPrice: 15},
		},
	}
	require.NoError(t, s.SaveGRN(ctx, grn))

	after, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)
	assert.Equal(t, beforeQty, after.Quantity)
}

func TestSaveSale_DecrementsStock(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	before, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)

	sale := &books.SaleInvoice{
		InvoiceNo: "INV-001",
		Date:      "2025-01-08",
		Customer:  "Happy Paws",
		Lines: []books.SaleLine{
			{ItemCode: "ITM-001", Quantity: 3, UnitPrice: 20, Amount: 60},
		},
		Subtotal: 60,
		Total:    60,
	}
	require.NoError(t, s.SaveSale(ctx, sale))

	after, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)
	assert.Equal(t, before.Quantity-3, after.Quantity)
	assert.InDelta(t, after.Quantity*after.UnitPrice, after.Value, 1e-9)
}

func TestSaveSale_UnknownItemSkipped(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	sale := &books.SaleInvoice{
		InvoiceNo: "INV-001",
		Date:      "2025-01-08",
		Lines: []books.SaleLine{
			{ItemCode: "ITM-MISSING", Quantity: 3, UnitPrice: 20},
		},
	}
	require.NoError(t, s.SaveSale(ctx, sale))

	_, err := s.StockItem(ctx, "ITM-MISSING")
	assert.ErrorIs(t, err, books.ErrStockItemNotFound)
}

func TestSaveSale_AllowsNegativeStock(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	before, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)

	sale := &books.SaleInvoice{
		InvoiceNo: "INV-001",
		Date:      "2025-01-08",
		Lines: []books.SaleLine{
			{ItemCode: "ITM-001", Quantity: before.Quantity + 5, UnitPrice: 20},
		},
	}
	require.NoError(t, s.SaveSale(ctx, sale))

	after, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)
	assert.Equal(t, -5.0, after.Quantity)
}

func TestSavePurchaseOrder_DefaultsStatus(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	po := &books.PurchaseOrder{
		PONo: "PO-001",
		Date: "2025-01-02",
		Lines: []books.POLine{
			{ItemCode: "ITM-001", Quantity: 10, UnitPrice: 15, Amount: 150},
		},
		Total: 150,
	}
	require.NoError(t, s.SavePurchaseOrder(ctx, po))
	assert.Equal(t, books.POPending, po.Status)

	orders, err := s.PurchaseOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	stock, err := s.StockItem(ctx, "ITM-001")
	require.NoError(t, err)
	assert.Equal(t, books.SampleStock[0].Quantity, stock.Quantity) // no stock effect
}

func TestSaveSaleOrder_DefaultsStatus(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	so := &books.SaleOrder{
		OrderNo:  "SO-001",
		Date:     "2025-01-02",
		Customer: "Happy Paws",
		Lines: []books.SaleOrderLine{
			{ItemCode: "ITM-001", Quantity: 2, UnitPrice: 20},
		},
		Total: 40,
	}
	require.NoError(t, s.SaveSaleOrder(ctx, so))
	assert.Equal(t, books.SaleOrderPending, so.Status)
}

func TestSaveCollection_NilStoredAsEmptyArray(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.SaveAccounts(ctx, nil))

	data, ok, err := s.kv.Load(ctx, KeyChartOfAccounts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", string(data))
}
