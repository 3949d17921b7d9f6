package books

import "strings"

// StockItem is the denormalized current-state snapshot of one inventory item.
// Quantity and Value are running totals maintained at GRN/sale save time,
// independent of the document logs they are derived from. Quantity may go
// negative (oversell is silently permitted).
type StockItem struct {
	ItemCode  string  `json:"itemCode"`
	ItemName  string  `json:"itemName"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Value     float64 `json:"value"`
}

// GRNLine records receipt of one ordered item. Only lines with a positive
// ReceivedQty affect stock.
type GRNLine struct {
	ID          string  `json:"id"`
	ItemCode    string  `json:"itemCode"`
	ItemName    string  `json:"itemName"`
	OrderedQty  float64 `json:"orderedQty"`
	ReceivedQty float64 `json:"receivedQty"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// GRN is a goods-received note: an immutable record of physical receipt
// against a purchase order.
type GRN struct {
	ID         string    `json:"id"`
	GRNNo      string    `json:"grnNo"`
	Date       string    `json:"date"`
	PONo       string    `json:"poNo"`
	Supplier   string    `json:"supplier"`
	ReceivedBy string    `json:"receivedBy"`
	Lines      []GRNLine `json:"lines"`
	Total      float64   `json:"total"`
}

func (g *GRN) Validate() error {
	if g.GRNNo == "" {
		return ErrDocumentNoRequired
	}
	if len(g.Lines) == 0 {
		return ErrDocumentNoLines
	}
	return nil
}

type SaleLine struct {
	ID          string  `json:"id"`
	ItemCode    string  `json:"itemCode"`
	ItemName    string  `json:"itemName"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// SaleInvoice is an immutable sales document. Saving one decrements stock for
// every line whose item code resolves.
type SaleInvoice struct {
	ID        string     `json:"id"`
	InvoiceNo string     `json:"invoiceNo"`
	Date      string     `json:"date"`
	Customer  string     `json:"customer"`
	Lines     []SaleLine `json:"lines"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
}

func (s *SaleInvoice) Validate() error {
	if s.InvoiceNo == "" {
		return ErrDocumentNoRequired
	}
	if len(s.Lines) == 0 {
		return ErrDocumentNoLines
	}
	return nil
}

type POStatus string

const (
	POPending  POStatus = "Pending"
	POApproved POStatus = "Approved"
	POReceived POStatus = "Received"
)

type POLine struct {
	ID          string  `json:"id"`
	ItemCode    string  `json:"itemCode"`
	ItemName    string  `json:"itemName"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// PurchaseOrder is an order placed with a supplier. It has no stock effect;
// stock moves when a GRN is recorded against it.
type PurchaseOrder struct {
	ID           string   `json:"id"`
	PONo         string   `json:"poNo"`
	Date         string   `json:"date"`
	Supplier     string   `json:"supplier"`
	DeliveryDate string   `json:"deliveryDate"`
	Terms        string   `json:"terms"`
	Lines        []POLine `json:"lines"`
	Total        float64  `json:"total"`
	Status       POStatus `json:"status"`
}

func (p *PurchaseOrder) Validate() error {
	if p.PONo == "" {
		return ErrDocumentNoRequired
	}
	if len(p.Lines) == 0 {
		return ErrDocumentNoLines
	}
	return nil
}

type SaleOrderStatus string

const (
	SaleOrderPending   SaleOrderStatus = "Pending"
	SaleOrderConfirmed SaleOrderStatus = "Confirmed"
	SaleOrderDelivered SaleOrderStatus = "Delivered"
)

type SaleOrderLine struct {
	ItemCode    string  `json:"itemCode"`
	ItemName    string  `json:"itemName"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// SaleOrder is a customer order awaiting invoicing. No stock effect.
type SaleOrder struct {
	ID       string          `json:"id"`
	OrderNo  string          `json:"orderNo"`
	Customer string          `json:"customer"`
	Date     string          `json:"date"`
	Lines    []SaleOrderLine `json:"lines"`
	Total    float64         `json:"total"`
	Status   SaleOrderStatus `json:"status"`
}

func (s *SaleOrder) Validate() error {
	if s.OrderNo == "" {
		return ErrDocumentNoRequired
	}
	if len(s.Lines) == 0 {
		return ErrDocumentNoLines
	}
	return nil
}

// LowStockThreshold is the quantity below which an item counts as low stock.
const LowStockThreshold = 20

// StockStatus labels an on-hand quantity for the stock inquiry view.
func StockStatus(quantity float64) string {
	switch {
	case quantity == 0:
		return "Out of Stock"
	case quantity < LowStockThreshold:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// FilterStock returns the items whose code or name contains the search term,
// case-insensitive. An empty term matches everything.
func FilterStock(items []StockItem, term string) []StockItem {
	if term == "" {
		return items
	}
	term = strings.ToLower(term)
	var out []StockItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.ItemCode), term) ||
			strings.Contains(strings.ToLower(it.ItemName), term) {
			out = append(out, it)
		}
	}
	return out
}
