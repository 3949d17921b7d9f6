package books

import "errors"

var (
	ErrInvalidAccountCode  = errors.New("account code is required")
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNotFound     = errors.New("account not found")
	ErrDuplicateAccount    = errors.New("account already exists")

	ErrVoucherNoRequired   = errors.New("voucher number is required")
	ErrVoucherNoLines      = errors.New("voucher must have at least one line")
	ErrUnbalancedVoucher   = errors.New("voucher debits and credits do not balance")
	ErrInvalidVoucherType  = errors.New("invalid voucher type")
	ErrVoucherNotFound     = errors.New("voucher not found")

	ErrStockItemNotFound = errors.New("stock item not found")
	ErrDocumentNoRequired = errors.New("document number is required")
	ErrDocumentNoLines    = errors.New("document must have at least one line")
)
