package books

// recentLimit caps the recent-activity lists on the dashboard.
const recentLimit = 5

// DashboardSummary is the landing-page overview: headline totals plus the
// most recent activity and any items running low.
type DashboardSummary struct {
	TotalRevenue   float64       `json:"totalRevenue"`
	InventoryValue float64       `json:"inventoryValue"`
	AccountCount   int           `json:"accountCount"`
	VoucherCount   int           `json:"voucherCount"`
	SaleCount      int           `json:"saleCount"`
	StockItemCount int           `json:"stockItemCount"`
	RecentVouchers []Voucher     `json:"recentVouchers"`
	RecentSales    []SaleInvoice `json:"recentSales"`
	LowStock       []StockItem   `json:"lowStock"`
}

// ComputeDashboard derives the summary from the full dataset. Recent lists
// take the tail of each append-only log, newest first.
func ComputeDashboard(accounts []Account, vouchers []Voucher, stock []StockItem, sales []SaleInvoice) *DashboardSummary {
	d := &DashboardSummary{
		AccountCount:   len(accounts),
		VoucherCount:   len(vouchers),
		SaleCount:      len(sales),
		StockItemCount: len(stock),
	}

	for _, s := range sales {
		d.TotalRevenue += s.Total
	}
	for _, it := range stock {
		d.InventoryValue += it.Value
		if it.Quantity < LowStockThreshold {
			d.LowStock = append(d.LowStock, it)
		}
	}

	for i := len(vouchers) - 1; i >= 0 && len(d.RecentVouchers) < recentLimit; i-- {
		d.RecentVouchers = append(d.RecentVouchers, vouchers[i])
	}
	for i := len(sales) - 1; i >= 0 && len(d.RecentSales) < recentLimit; i-- {
		d.RecentSales = append(d.RecentSales, sales[i])
	}

	return d
}
