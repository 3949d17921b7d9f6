package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/microbooks/microbooks/internal/books"
)

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var acct books.Account
	if err := json.NewDecoder(r.Body).Decode(&acct); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if err := s.store.CreateAccount(r.Context(), &acct); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, acct)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.Accounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if t := r.URL.Query().Get("type"); t != "" {
		filtered := accounts[:0]
		for _, a := range accounts {
			if a.Type == books.AccountType(t) {
				filtered = append(filtered, a)
			}
		}
		accounts = filtered
	}

	if accounts == nil {
		accounts = []books.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	code, _ := url.PathUnescape(chi.URLParam(r, "code"))
	acct, err := s.store.Account(r.Context(), code)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	code, _ := url.PathUnescape(chi.URLParam(r, "code"))
	var acct books.Account
	if err := json.NewDecoder(r.Body).Decode(&acct); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	acct.Code = code

	if err := s.store.UpdateAccount(r.Context(), &acct); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	code, _ := url.PathUnescape(chi.URLParam(r, "code"))
	if err := s.store.DeleteAccount(r.Context(), code); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
