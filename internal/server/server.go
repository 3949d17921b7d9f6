package server

import (
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microbooks/microbooks/internal/store"
)

type Server struct {
	store  *store.Store
	router chi.Router
	addr   string
}

func New(st *store.Store, addr string) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{store: st, router: r, addr: addr}

	r.Route("/api/v1", func(r chi.Router) {
		// Chart of accounts
		r.Post("/accounts", s.createAccount)
		r.Get("/accounts", s.listAccounts)
		r.Get("/accounts/{code}", s.getAccount)
		r.Put("/accounts/{code}", s.updateAccount)
		r.Delete("/accounts/{code}", s.deleteAccount)

		// Vouchers
		r.Post("/vouchers", s.createVoucher)
		r.Get("/vouchers", s.listVouchers)
		r.Get("/vouchers/{id}", s.getVoucher)

		// Stock and inventory documents
		r.Get("/stock", s.listStock)
		r.Get("/stock/{code}", s.getStockItem)
		r.Post("/grns", s.createGRN)
		r.Get("/grns", s.listGRNs)
		r.Post("/sales", s.createSale)
		r.Get("/sales", s.listSales)
		r.Post("/purchase-orders", s.createPurchaseOrder)
		r.Get("/purchase-orders", s.listPurchaseOrders)
		r.Post("/sale-orders", s.createSaleOrder)
		r.Get("/sale-orders", s.listSaleOrders)

		// Reports
		r.Get("/reports/ledger", s.ledgerReport)
		r.Get("/reports/trial-balance", s.trialBalanceReport)
		r.Get("/reports/stock-ledger", s.stockLedgerReport)
		r.Get("/reports/sales", s.salesReport)
		r.Get("/reports/dashboard", s.dashboardReport)

		r.Get("/health", s.health)
	})

	return s
}

func (s *Server) ListenAndServe() error {
	log.Printf("microbooks server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	log.Printf("microbooks server listening on %s", ln.Addr())
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
