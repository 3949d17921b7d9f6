package books

import "math"

// TrialBalanceRow aggregates one account's total debits and credits as of the
// report date, opening balance included.
type TrialBalanceRow struct {
	Code   string      `json:"code"`
	Name   string      `json:"name"`
	Type   AccountType `json:"type"`
	Debit  float64     `json:"debit"`
	Credit float64     `json:"credit"`
}

// TrialBalanceGroup holds the rows of one account type, in registry order.
type TrialBalanceGroup struct {
	Type AccountType       `json:"type"`
	Rows []TrialBalanceRow `json:"rows"`
}

type TrialBalance struct {
	AsOf        string              `json:"asOf"`
	Groups      []TrialBalanceGroup `json:"groups"`
	TotalDebit  float64             `json:"totalDebit"`
	TotalCredit float64             `json:"totalCredit"`
	Balanced    bool                `json:"balanced"`
	// Difference is |totalDebit - totalCredit|, reported unsigned.
	Difference float64 `json:"difference"`
}

// ComputeTrialBalance aggregates every account's opening balance plus all
// voucher lines dated on or before asOf into per-account debit/credit totals.
// Voucher lines referencing codes absent from the registry get a synthesized
// entry of type Unknown, named after whatever the line itself carries. Rows
// where both columns are exactly zero are dropped. Groups appear in
// first-seen-type order; within a group, rows keep insertion order (registry
// order first, then unknown codes in voucher-encounter order).
func ComputeTrialBalance(accounts []Account, vouchers []Voucher, asOf string) *TrialBalance {
	byCode := make(map[string]*TrialBalanceRow)
	var order []string

	for _, a := range accounts {
		debit, credit := OpeningDebitCredit(a.OpeningBalance)
		if _, ok := byCode[a.Code]; !ok {
			order = append(order, a.Code)
		}
		byCode[a.Code] = &TrialBalanceRow{
			Code:   a.Code,
			Name:   a.Name,
			Type:   a.Type,
			Debit:  debit,
			Credit: credit,
		}
	}

	for _, v := range vouchers {
		if asOf != "" && v.Date > asOf {
			continue
		}
		for _, line := range v.Lines {
			row, ok := byCode[line.AccountCode]
			if !ok {
				row = &TrialBalanceRow{
					Code: line.AccountCode,
					Name: line.AccountName,
					Type: TypeUnknown,
				}
				byCode[line.AccountCode] = row
				order = append(order, line.AccountCode)
			}
			row.Debit += line.Debit
			row.Credit += line.Credit
		}
	}

	tb := &TrialBalance{AsOf: asOf}
	groupIdx := make(map[AccountType]int)
	for _, code := range order {
		row := byCode[code]
		if row.Debit == 0 && row.Credit == 0 {
			continue
		}
		idx, ok := groupIdx[row.Type]
		if !ok {
			idx = len(tb.Groups)
			groupIdx[row.Type] = idx
			tb.Groups = append(tb.Groups, TrialBalanceGroup{Type: row.Type})
		}
		tb.Groups[idx].Rows = append(tb.Groups[idx].Rows, *row)
		tb.TotalDebit += row.Debit
		tb.TotalCredit += row.Credit
	}

	tb.Difference = math.Abs(tb.TotalDebit - tb.TotalCredit)
	tb.Balanced = tb.Difference < BalanceEpsilon
	return tb
}
