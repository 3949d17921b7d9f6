package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/microbooks/microbooks/internal/books"
)

// Collection keys. These names are the wire contract with the stored data and
// must be preserved byte-for-byte.
const (
	KeyChartOfAccounts = "chartOfAccounts"
	KeyVouchers        = "vouchers"
	KeyStock           = "stock"
	KeyGRNs            = "grns"
	KeySales           = "sales"
	KeyPurchaseOrders  = "purchaseOrders"
	KeySaleOrders      = "saleOrders"
)

// loadCollection unmarshals the array stored under key. A missing key yields
// (nil, false) so callers can decide whether to seed.
func loadCollection[T any](ctx context.Context, kv KV, key string) ([]T, bool, error) {
	data, ok, err := kv.Load(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, true, nil
}

// saveCollection replaces the array stored under key. The empty collection is
// stored as [] rather than null to keep the serialized shape stable.
func saveCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Save(ctx, key, data)
}

// Accounts returns the chart of accounts, seeding and persisting the default
// chart on first access.
func (s *Store) Accounts(ctx context.Context) ([]books.Account, error) {
	accounts, ok, err := loadCollection[books.Account](ctx, s.kv, KeyChartOfAccounts)
	if err != nil {
		return nil, err
	}
	if !ok {
		accounts = append([]books.Account(nil), books.DefaultChart...)
		if err := saveCollection(ctx, s.kv, KeyChartOfAccounts, accounts); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func (s *Store) SaveAccounts(ctx context.Context, accounts []books.Account) error {
	return saveCollection(ctx, s.kv, KeyChartOfAccounts, accounts)
}

// Account looks one account up by code.
func (s *Store) Account(ctx context.Context, code string) (*books.Account, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Code == code {
			return &accounts[i], nil
		}
	}
	return nil, books.ErrAccountNotFound
}

// Vouchers returns the voucher log. A missing key is just an empty log; there
// is no voucher seed data.
func (s *Store) Vouchers(ctx context.Context) ([]books.Voucher, error) {
	vouchers, _, err := loadCollection[books.Voucher](ctx, s.kv, KeyVouchers)
	return vouchers, err
}

// Stock returns the current stock snapshot, seeding the sample inventory on
// first access.
func (s *Store) Stock(ctx context.Context) ([]books.StockItem, error) {
	stock, ok, err := loadCollection[books.StockItem](ctx, s.kv, KeyStock)
	if err != nil {
		return nil, err
	}
	if !ok {
		stock = append([]books.StockItem(nil), books.SampleStock...)
		if err := saveCollection(ctx, s.kv, KeyStock, stock); err != nil {
			return nil, err
		}
	}
	return stock, nil
}

func (s *Store) SaveStock(ctx context.Context, stock []books.StockItem) error {
	return saveCollection(ctx, s.kv, KeyStock, stock)
}

// StockItem looks one item up by code.
func (s *Store) StockItem(ctx context.Context, code string) (*books.StockItem, error) {
	stock, err := s.Stock(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stock {
		if stock[i].ItemCode == code {
			return &stock[i], nil
		}
	}
	return nil, books.ErrStockItemNotFound
}

func (s *Store) GRNs(ctx context.Context) ([]books.GRN, error) {
	grns, _, err := loadCollection[books.GRN](ctx, s.kv, KeyGRNs)
	return grns, err
}

func (s *Store) Sales(ctx context.Context) ([]books.SaleInvoice, error) {
	sales, _, err := loadCollection[books.SaleInvoice](ctx, s.kv, KeySales)
	return sales, err
}

func (s *Store) PurchaseOrders(ctx context.Context) ([]books.PurchaseOrder, error) {
	orders, _, err := loadCollection[books.PurchaseOrder](ctx, s.kv, KeyPurchaseOrders)
	return orders, err
}

func (s *Store) SaleOrders(ctx context.Context) ([]books.SaleOrder, error) {
	orders, _, err := loadCollection[books.SaleOrder](ctx, s.kv, KeySaleOrders)
	return orders, err
}
