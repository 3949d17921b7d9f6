package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/microbooks/microbooks/internal/books"
)

// CreateAccount appends a new account to the chart. Codes must be unique
// within the registry.
func (s *Store) CreateAccount(ctx context.Context, acct *books.Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Code == acct.Code {
			return fmt.Errorf("%w: %s", books.ErrDuplicateAccount, acct.Code)
		}
	}
	if acct.ID == "" {
		acct.ID = uuid.Must(uuid.NewV7()).String()
	}
	return s.SaveAccounts(ctx, append(accounts, *acct))
}

// UpdateAccount replaces the account with the same code.
func (s *Store) UpdateAccount(ctx context.Context, acct *books.Account) error {
	if err := acct.Validate(); err != nil {
		return err
	}
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Code == acct.Code {
			if acct.ID == "" {
				acct.ID = accounts[i].ID
			}
			accounts[i] = *acct
			return s.SaveAccounts(ctx, accounts)
		}
	}
	return books.ErrAccountNotFound
}

// DeleteAccount removes an account by code. Vouchers referencing the code are
// left alone: the trial balance tolerates dangling codes by design.
func (s *Store) DeleteAccount(ctx context.Context, code string) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Code == code {
			return s.SaveAccounts(ctx, append(accounts[:i], accounts[i+1:]...))
		}
	}
	return books.ErrAccountNotFound
}

// AppendVoucher adds a voucher to the log. Structural invariants are checked
// here; the debit/credit balance check is the caller's decision (the HTTP
// handler enforces it, the engine never does).
func (s *Store) AppendVoucher(ctx context.Context, v *books.Voucher) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if v.ID == "" {
		v.ID = uuid.Must(uuid.NewV7()).String()
	}
	vouchers, err := s.Vouchers(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeyVouchers, append(vouchers, *v))
}

// SaveGRN appends a goods-received note and applies its stock effect: each
// line with a positive received quantity finds or creates its stock item,
// bumps the quantity, and recomputes value as quantity x unit price. The
// recompute rule is the same one the sale path uses, so the snapshot cannot
// drift between the two.
func (s *Store) SaveGRN(ctx context.Context, grn *books.GRN) error {
	if err := grn.Validate(); err != nil {
		return err
	}
	if grn.ID == "" {
		grn.ID = uuid.Must(uuid.NewV7()).String()
	}

	grns, err := s.GRNs(ctx)
	if err != nil {
		return err
	}
	if err := saveCollection(ctx, s.kv, KeyGRNs, append(grns, *grn)); err != nil {
		return err
	}

	stock, err := s.Stock(ctx)
	if err != nil {
		return err
	}
	for _, line := range grn.Lines {
		if line.ReceivedQty <= 0 {
			continue
		}
		found := false
		for i := range stock {
			if stock[i].ItemCode == line.ItemCode {
				stock[i].Quantity += line.ReceivedQty
				stock[i].Value = stock[i].Quantity * stock[i].UnitPrice
				found = true
				break
			}
		}
		if !found {
			stock = append(stock, books.StockItem{
				ItemCode:  line.ItemCode,
				ItemName:  line.ItemName,
				Quantity:  line.ReceivedQty,
				UnitPrice: line.UnitPrice,
				Value:     line.ReceivedQty * line.UnitPrice,
			})
		}
	}
	return s.SaveStock(ctx, stock)
}

// SaveSale appends a sale invoice and decrements stock for each line whose
// item code resolves. Unknown codes are skipped, and quantity may go negative:
// oversell is recorded silently rather than rejected.
func (s *Store) SaveSale(ctx context.Context, sale *books.SaleInvoice) error {
	if err := sale.Validate(); err != nil {
		return err
	}
	if sale.ID == "" {
		sale.ID = uuid.Must(uuid.NewV7()).String()
	}

	sales, err := s.Sales(ctx)
	if err != nil {
		return err
	}
	if err := saveCollection(ctx, s.kv, KeySales, append(sales, *sale)); err != nil {
		return err
	}

	stock, err := s.Stock(ctx)
	if err != nil {
		return err
	}
	for _, line := range sale.Lines {
		for i := range stock {
			if stock[i].ItemCode == line.ItemCode {
				stock[i].Quantity -= line.Quantity
				stock[i].Value = stock[i].Quantity * stock[i].UnitPrice
				break
			}
		}
	}
	return s.SaveStock(ctx, stock)
}

// SavePurchaseOrder appends a purchase order. No stock effect.
func (s *Store) SavePurchaseOrder(ctx context.Context, po *books.PurchaseOrder) error {
	if err := po.Validate(); err != nil {
		return err
	}
	if po.ID == "" {
		po.ID = uuid.Must(uuid.NewV7()).String()
	}
	if po.Status == "" {
		po.Status = books.POPending
	}
	orders, err := s.PurchaseOrders(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeyPurchaseOrders, append(orders, *po))
}

// SaveSaleOrder appends a sale order. No stock effect.
func (s *Store) SaveSaleOrder(ctx context.Context, so *books.SaleOrder) error {
	if err := so.Validate(); err != nil {
		return err
	}
	if so.ID == "" {
		so.ID = uuid.Must(uuid.NewV7()).String()
	}
	if so.Status == "" {
		so.Status = books.SaleOrderPending
	}
	orders, err := s.SaleOrders(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, KeySaleOrders, append(orders, *so))
}
