package server

import (
	"net/http"

	"github.com/microbooks/microbooks/internal/books"
)

// ledgerReport computes the account ledger. No account selected, or a code
// that resolves to nothing, yields an empty report rather than an error:
// report generation degrades, it never fails.
func (s *Server) ledgerReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := q.Get("account")
	if code == "" {
		writeJSON(w, http.StatusOK, &books.Ledger{})
		return
	}

	account, err := s.store.Account(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusOK, &books.Ledger{})
		return
	}
	vouchers, err := s.store.Vouchers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, books.ComputeLedger(account, vouchers, q.Get("from"), q.Get("to")))
}

func (s *Server) trialBalanceReport(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.Accounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	vouchers, err := s.store.Vouchers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, books.ComputeTrialBalance(accounts, vouchers, r.URL.Query().Get("asOf")))
}

func (s *Server) stockLedgerReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := q.Get("item")
	if code == "" {
		writeJSON(w, http.StatusOK, &books.StockLedger{})
		return
	}

	item, err := s.store.StockItem(r.Context(), code)
	if err != nil {
		writeJSON(w, http.StatusOK, &books.StockLedger{})
		return
	}
	grns, err := s.store.GRNs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sales, err := s.store.Sales(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, books.ComputeStockLedger(item, grns, sales, q.Get("from"), q.Get("to")))
}

func (s *Server) salesReport(w http.ResponseWriter, r *http.Request) {
	sales, err := s.store.Sales(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, books.ComputeSalesReport(sales, q.Get("from"), q.Get("to")))
}

func (s *Server) dashboardReport(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.Accounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	vouchers, err := s.store.Vouchers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	stock, err := s.store.Stock(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	sales, err := s.store.Sales(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, books.ComputeDashboard(accounts, vouchers, stock, sales))
}
