package books

import "math"

type VoucherType string

const (
	VoucherJournal VoucherType = "Journal"
	VoucherPayment VoucherType = "Payment"
	VoucherReceipt VoucherType = "Receipt"
	VoucherContra  VoucherType = "Contra"
)

var AllVoucherTypes = []VoucherType{
	VoucherJournal,
	VoucherPayment,
	VoucherReceipt,
	VoucherContra,
}

// VoucherLine is one debit/credit leg. AccountCode is a weak reference into
// the chart of accounts: dangling codes are tolerated everywhere and surface
// as an "Unknown" bucket in the trial balance. Conventionally exactly one of
// Debit/Credit is non-zero, but that is not enforced.
type VoucherLine struct {
	ID          string  `json:"id"`
	AccountCode string  `json:"accountCode"`
	AccountName string  `json:"accountName"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
}

// Voucher is a dated multi-line journal entry. Vouchers are created whole and
// never edited afterwards; the voucher log is append-only. The type is a
// classification only and has no effect on posting. Dates are ISO yyyy-mm-dd
// strings and compare lexically.
type Voucher struct {
	ID        string        `json:"id"`
	VoucherNo string        `json:"voucherNo"`
	Date      string        `json:"date"`
	Type      VoucherType   `json:"type"`
	Reference string        `json:"reference"`
	Lines     []VoucherLine `json:"lines"`
}

func ValidVoucherType(t VoucherType) bool {
	for _, vt := range AllVoucherTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// LineTotals sums the debit and credit columns of a line set.
func LineTotals(lines []VoucherLine) (debit, credit float64) {
	for _, l := range lines {
		debit += l.Debit
		credit += l.Credit
	}
	return debit, credit
}

// ValidateBalance reports whether a line set satisfies the double-entry
// invariant within the float tolerance. The engines never call this
// themselves: balance is advisory, and the caller decides whether to enforce.
func ValidateBalance(lines []VoucherLine) bool {
	debit, credit := LineTotals(lines)
	return math.Abs(debit-credit) <= BalanceEpsilon
}

// Validate checks the structural invariants a voucher must satisfy before it
// enters the log. Balance is checked separately via ValidateBalance.
func (v *Voucher) Validate() error {
	if v.VoucherNo == "" {
		return ErrVoucherNoRequired
	}
	if len(v.Lines) == 0 {
		return ErrVoucherNoLines
	}
	if !ValidVoucherType(v.Type) {
		return ErrInvalidVoucherType
	}
	return nil
}
