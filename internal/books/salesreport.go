package books

import "sort"

// SalesTotal is an aggregation bucket for the sales report.
type SalesTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// SalesReport summarizes the sale invoices in a date range.
type SalesReport struct {
	From          string        `json:"from"`
	To            string        `json:"to"`
	Invoices      []SaleInvoice `json:"invoices"`
	TotalSubtotal float64       `json:"totalSubtotal"`
	TotalTax      float64       `json:"totalTax"`
	TotalSales    float64       `json:"totalSales"`
	ByDate        []SalesTotal  `json:"byDate"`
	ByCustomer    []SalesTotal  `json:"byCustomer"`
}

// ComputeSalesReport filters the sale log by the inclusive date range and
// totals the results overall, per date, and per customer. ByDate is sorted
// ascending by date; ByCustomer descending by amount.
func ComputeSalesReport(sales []SaleInvoice, from, to string) *SalesReport {
	rep := &SalesReport{From: from, To: to}

	byDate := make(map[string]float64)
	byCustomer := make(map[string]float64)

	for _, s := range sales {
		if !inDateRange(s.Date, from, to) {
			continue
		}
		rep.Invoices = append(rep.Invoices, s)
		rep.TotalSubtotal += s.Subtotal
		rep.TotalTax += s.Tax
		rep.TotalSales += s.Total
		byDate[s.Date] += s.Total
		byCustomer[s.Customer] += s.Total
	}

	for date, total := range byDate {
		rep.ByDate = append(rep.ByDate, SalesTotal{Key: date, Total: total})
	}
	sort.Slice(rep.ByDate, func(i, j int) bool {
		return rep.ByDate[i].Key < rep.ByDate[j].Key
	})

	for customer, total := range byCustomer {
		rep.ByCustomer = append(rep.ByCustomer, SalesTotal{Key: customer, Total: total})
	}
	sort.Slice(rep.ByCustomer, func(i, j int) bool {
		if rep.ByCustomer[i].Total != rep.ByCustomer[j].Total {
			return rep.ByCustomer[i].Total > rep.ByCustomer[j].Total
		}
		return rep.ByCustomer[i].Key < rep.ByCustomer[j].Key
	})

	return rep
}
