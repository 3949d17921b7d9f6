package books

type AccountType string

const (
	TypeAsset     AccountType = "Asset"
	TypeLiability AccountType = "Liability"
	TypeEquity    AccountType = "Equity"
	TypeRevenue   AccountType = "Revenue"
	TypeExpense   AccountType = "Expense"

	// TypeUnknown is synthesized for voucher lines whose account code is
	// missing from the chart of accounts. It never appears in the registry.
	TypeUnknown AccountType = "Unknown"
)

var AllAccountTypes = []AccountType{
	TypeAsset,
	TypeLiability,
	TypeEquity,
	TypeRevenue,
	TypeExpense,
}

// Account is one row of the chart of accounts. OpeningBalance is a static
// starting value, never a running total: positive means debit-normal, negative
// means credit-normal. The JSON field names mirror the stored collection and
// must not change.
type Account struct {
	ID             string      `json:"id"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	OpeningBalance float64     `json:"balance"`
}

// Validate checks account invariants for create/update.
func (a *Account) Validate() error {
	if a.Code == "" {
		return ErrInvalidAccountCode
	}
	if a.Name == "" {
		return ErrAccountNameRequired
	}
	if !ValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}
	return nil
}

// ValidAccountType reports whether t is one of the five registry types.
// TypeUnknown is deliberately excluded: it is report-only.
func ValidAccountType(t AccountType) bool {
	for _, at := range AllAccountTypes {
		if at == t {
			return true
		}
	}
	return false
}

// NormalBalance returns "Debit" or "Credit" for the account type.
// Assets and Expenses are debit-normal; the rest are credit-normal.
func NormalBalance(t AccountType) string {
	switch t {
	case TypeAsset, TypeExpense:
		return "Debit"
	default:
		return "Credit"
	}
}

// OpeningDebitCredit splits a signed opening balance into the debit/credit
// pair used by reports: debit-normal balances land in the debit column,
// credit-normal (negative) balances in the credit column.
func OpeningDebitCredit(balance float64) (debit, credit float64) {
	if balance > 0 {
		return balance, 0
	}
	if balance < 0 {
		return 0, -balance
	}
	return 0, 0
}
