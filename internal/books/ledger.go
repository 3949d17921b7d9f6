package books

// BalanceEpsilon is the float tolerance for the double-entry balance checks.
// It absorbs floating-point rounding, not business rounding.
const BalanceEpsilon = 0.01

// openingDateSentinel stands in for "beginning of books" when a ledger is
// generated without a from-date.
const openingDateSentinel = "2024-01-01"

// LedgerRow is one line of an account ledger: a voucher line applied to the
// running balance, or the synthetic opening row.
type LedgerRow struct {
	Date        string  `json:"date"`
	VoucherNo   string  `json:"voucherNo"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
}

// Ledger is the computed transaction history for one account.
type Ledger struct {
	AccountCode    string      `json:"accountCode"`
	AccountName    string      `json:"accountName"`
	From           string      `json:"from"`
	To             string      `json:"to"`
	Rows           []LedgerRow `json:"rows"`
	TotalDebit     float64     `json:"totalDebit"`
	TotalCredit    float64     `json:"totalCredit"`
	ClosingBalance float64     `json:"closingBalance"`
}

// inDateRange applies the inclusive lexical ISO-date bounds; an empty bound is
// unbounded on that side.
func inDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// ComputeLedger replays the voucher log against one account and returns its
// running-balance history. Rows come out in voucher-log insertion order, not
// re-sorted by date: vouchers entered out of date order appear in entry order,
// matching how the books were actually kept. The first row is always the
// opening balance; an account with no matching lines yields just that row.
// A nil account produces an empty report rather than an error.
func ComputeLedger(account *Account, vouchers []Voucher, from, to string) *Ledger {
	if account == nil || account.Code == "" {
		return &Ledger{}
	}

	led := &Ledger{
		AccountCode: account.Code,
		AccountName: account.Name,
		From:        from,
		To:          to,
	}

	balance := account.OpeningBalance
	openDate := from
	if openDate == "" {
		openDate = openingDateSentinel
	}
	openDebit, openCredit := OpeningDebitCredit(balance)
	led.Rows = append(led.Rows, LedgerRow{
		Date:        openDate,
		VoucherNo:   "-",
		Description: "Opening Balance",
		Debit:       openDebit,
		Credit:      openCredit,
		Balance:     balance,
	})

	for _, v := range vouchers {
		if !inDateRange(v.Date, from, to) {
			continue
		}
		for _, line := range v.Lines {
			if line.AccountCode != account.Code {
				continue
			}
			balance += line.Debit - line.Credit
			led.Rows = append(led.Rows, LedgerRow{
				Date:        v.Date,
				VoucherNo:   v.VoucherNo,
				Description: line.Description,
				Debit:       line.Debit,
				Credit:      line.Credit,
				Balance:     balance,
			})
		}
	}

	for _, r := range led.Rows {
		led.TotalDebit += r.Debit
		led.TotalCredit += r.Credit
	}
	led.ClosingBalance = led.Rows[len(led.Rows)-1].Balance
	return led
}
