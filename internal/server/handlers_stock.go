package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/microbooks/microbooks/internal/books"
)

// stockRow is a stock item plus its inquiry status label.
type stockRow struct {
	books.StockItem
	Status string `json:"status"`
}

func (s *Server) listStock(w http.ResponseWriter, r *http.Request) {
	stock, err := s.store.Stock(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	stock = books.FilterStock(stock, r.URL.Query().Get("q"))

	rows := make([]stockRow, 0, len(stock))
	var totalQty, totalValue float64
	for _, it := range stock {
		rows = append(rows, stockRow{StockItem: it, Status: books.StockStatus(it.Quantity)})
		totalQty += it.Quantity
		totalValue += it.Value
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":         rows,
		"totalQuantity": totalQty,
		"totalValue":    totalValue,
	})
}

func (s *Server) getStockItem(w http.ResponseWriter, r *http.Request) {
	code, _ := url.PathUnescape(chi.URLParam(r, "code"))
	item, err := s.store.StockItem(r.Context(), code)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stockRow{StockItem: *item, Status: books.StockStatus(item.Quantity)})
}

func (s *Server) createGRN(w http.ResponseWriter, r *http.Request) {
	var grn books.GRN
	if err := json.NewDecoder(r.Body).Decode(&grn); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.store.SaveGRN(r.Context(), &grn); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, grn)
}

func (s *Server) listGRNs(w http.ResponseWriter, r *http.Request) {
	grns, err := s.store.GRNs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if grns == nil {
		grns = []books.GRN{}
	}
	writeJSON(w, http.StatusOK, grns)
}

func (s *Server) createSale(w http.ResponseWriter, r *http.Request) {
	var sale books.SaleInvoice
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.store.SaveSale(r.Context(), &sale); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (s *Server) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := s.store.Sales(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sales == nil {
		sales = []books.SaleInvoice{}
	}
	writeJSON(w, http.StatusOK, sales)
}

func (s *Server) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var po books.PurchaseOrder
	if err := json.NewDecoder(r.Body).Decode(&po); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.store.SavePurchaseOrder(r.Context(), &po); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, po)
}

func (s *Server) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.store.PurchaseOrders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []books.PurchaseOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) createSaleOrder(w http.ResponseWriter, r *http.Request) {
	var so books.SaleOrder
	if err := json.NewDecoder(r.Body).Decode(&so); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.store.SaveSaleOrder(r.Context(), &so); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, so)
}

func (s *Server) listSaleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.store.SaleOrders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []books.SaleOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}
