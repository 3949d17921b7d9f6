package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microbooks/microbooks/internal/books"
)

func (s *Server) createVoucher(w http.ResponseWriter, r *http.Request) {
	var v books.Voucher
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if v.Type == "" {
		v.Type = books.VoucherJournal
	}

	// The engines treat balance as advisory; the API is where an unbalanced
	// voucher gets stopped.
	if !books.ValidateBalance(v.Lines) {
		debit, credit := books.LineTotals(v.Lines)
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%v: debit %.2f != credit %.2f", books.ErrUnbalancedVoucher, debit, credit))
		return
	}

	if err := s.store.AppendVoucher(r.Context(), &v); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) listVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := s.store.Vouchers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if vouchers == nil {
		vouchers = []books.Voucher{}
	}
	writeJSON(w, http.StatusOK, vouchers)
}

func (s *Server) getVoucher(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	vouchers, err := s.store.Vouchers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for i := range vouchers {
		if vouchers[i].ID == id {
			writeJSON(w, http.StatusOK, vouchers[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, books.ErrVoucherNotFound.Error())
}
