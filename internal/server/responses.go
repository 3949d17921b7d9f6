package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/microbooks/microbooks/internal/books"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, books.ErrAccountNotFound),
		errors.Is(err, books.ErrVoucherNotFound),
		errors.Is(err, books.ErrStockItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, books.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, books.ErrInvalidAccountCode),
		errors.Is(err, books.ErrInvalidAccountType),
		errors.Is(err, books.ErrAccountNameRequired),
		errors.Is(err, books.ErrVoucherNoRequired),
		errors.Is(err, books.ErrVoucherNoLines),
		errors.Is(err, books.ErrInvalidVoucherType),
		errors.Is(err, books.ErrUnbalancedVoucher),
		errors.Is(err, books.ErrDocumentNoRequired),
		errors.Is(err, books.ErrDocumentNoLines):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
