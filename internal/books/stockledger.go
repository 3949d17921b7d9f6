package books

import "sort"

// StockLedgerRow is one quantity movement for an item: the opening snapshot,
// a GRN receipt, or a sale issue.
type StockLedgerRow struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	ReferenceNo string  `json:"referenceNo"`
	In          float64 `json:"in"`
	Out         float64 `json:"out"`
	Balance     float64 `json:"balance"`
}

type StockLedger struct {
	ItemCode       string           `json:"itemCode"`
	ItemName       string           `json:"itemName"`
	From           string           `json:"from"`
	To             string           `json:"to"`
	Rows           []StockLedgerRow `json:"rows"`
	TotalIn        float64          `json:"totalIn"`
	TotalOut       float64          `json:"totalOut"`
	ClosingBalance float64          `json:"closingBalance"`
}

// ComputeStockLedger reconstructs an item's quantity history from the GRN and
// sale logs against the item's current snapshot quantity as the opening
// baseline. Rows are collected GRNs-first then sales, with the running balance
// computed in that collection order; the full set is sorted by date ascending
// only afterwards. When receipts and sales interleave across dates the balance
// column therefore reads in collection order, not chronological order. That
// is long-standing behavior downstream consumers rely on, kept as is.
// A nil item yields an empty report.
func ComputeStockLedger(item *StockItem, grns []GRN, sales []SaleInvoice, from, to string) *StockLedger {
	if item == nil || item.ItemCode == "" {
		return &StockLedger{}
	}

	sl := &StockLedger{
		ItemCode: item.ItemCode,
		ItemName: item.ItemName,
		From:     from,
		To:       to,
	}

	openDate := from
	if openDate == "" {
		openDate = openingDateSentinel
	}
	balance := item.Quantity
	sl.Rows = append(sl.Rows, StockLedgerRow{
		Date:        openDate,
		Type:        "Adjustment",
		ReferenceNo: "Opening Balance",
		In:          item.Quantity,
		Out:         0,
		Balance:     balance,
	})

	for _, g := range grns {
		if !inDateRange(g.Date, from, to) {
			continue
		}
		for _, line := range g.Lines {
			if line.ItemCode != item.ItemCode || line.ReceivedQty <= 0 {
				continue
			}
			balance += line.ReceivedQty
			sl.Rows = append(sl.Rows, StockLedgerRow{
				Date:        g.Date,
				Type:        "GRN",
				ReferenceNo: g.GRNNo,
				In:          line.ReceivedQty,
				Balance:     balance,
			})
		}
	}

	for _, s := range sales {
		if !inDateRange(s.Date, from, to) {
			continue
		}
		for _, line := range s.Lines {
			if line.ItemCode != item.ItemCode {
				continue
			}
			balance -= line.Quantity
			sl.Rows = append(sl.Rows, StockLedgerRow{
				Date:        s.Date,
				Type:        "Sale",
				ReferenceNo: s.InvoiceNo,
				Out:         line.Quantity,
				Balance:     balance,
			})
		}
	}

	sort.SliceStable(sl.Rows, func(i, j int) bool {
		return sl.Rows[i].Date < sl.Rows[j].Date
	})

	for _, r := range sl.Rows {
		sl.TotalIn += r.In
		sl.TotalOut += r.Out
	}
	sl.ClosingBalance = sl.Rows[len(sl.Rows)-1].Balance
	return sl
}
