package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/microbooks/microbooks/internal/books"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) CreateAccount(ctx context.Context, acct *books.Account) (*books.Account, error) {
	var result books.Account
	if err := c.post(ctx, "/api/v1/accounts", acct, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListAccounts(ctx context.Context, accountType string) ([]books.Account, error) {
	params := url.Values{}
	if accountType != "" {
		params.Set("type", accountType)
	}
	var result []books.Account
	if err := c.get(ctx, "/api/v1/accounts?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetAccount(ctx context.Context, code string) (*books.Account, error) {
	var result books.Account
	if err := c.get(ctx, "/api/v1/accounts/"+url.PathEscape(code), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateAccount(ctx context.Context, acct *books.Account) (*books.Account, error) {
	var result books.Account
	if err := c.put(ctx, "/api/v1/accounts/"+url.PathEscape(acct.Code), acct, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteAccount(ctx context.Context, code string) error {
	return c.del(ctx, "/api/v1/accounts/"+url.PathEscape(code))
}

func (c *Client) CreateVoucher(ctx context.Context, v *books.Voucher) (*books.Voucher, error) {
	var result books.Voucher
	if err := c.post(ctx, "/api/v1/vouchers", v, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListVouchers(ctx context.Context) ([]books.Voucher, error) {
	var result []books.Voucher
	if err := c.get(ctx, "/api/v1/vouchers", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StockListing is the stock inquiry response: items with status labels plus
// whole-inventory totals.
type StockListing struct {
	Items []struct {
		books.StockItem
		Status string `json:"status"`
	} `json:"items"`
	TotalQuantity float64 `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
}

func (c *Client) ListStock(ctx context.Context, search string) (*StockListing, error) {
	params := url.Values{}
	if search != "" {
		params.Set("q", search)
	}
	var result StockListing
	if err := c.get(ctx, "/api/v1/stock?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateGRN(ctx context.Context, grn *books.GRN) (*books.GRN, error) {
	var result books.GRN
	if err := c.post(ctx, "/api/v1/grns", grn, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListGRNs(ctx context.Context) ([]books.GRN, error) {
	var result []books.GRN
	if err := c.get(ctx, "/api/v1/grns", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateSale(ctx context.Context, sale *books.SaleInvoice) (*books.SaleInvoice, error) {
	var result books.SaleInvoice
	if err := c.post(ctx, "/api/v1/sales", sale, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListSales(ctx context.Context) ([]books.SaleInvoice, error) {
	var result []books.SaleInvoice
	if err := c.get(ctx, "/api/v1/sales", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreatePurchaseOrder(ctx context.Context, po *books.PurchaseOrder) (*books.PurchaseOrder, error) {
	var result books.PurchaseOrder
	if err := c.post(ctx, "/api/v1/purchase-orders", po, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListPurchaseOrders(ctx context.Context) ([]books.PurchaseOrder, error) {
	var result []books.PurchaseOrder
	if err := c.get(ctx, "/api/v1/purchase-orders", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateSaleOrder(ctx context.Context, so *books.SaleOrder) (*books.SaleOrder, error) {
	var result books.SaleOrder
	if err := c.post(ctx, "/api/v1/sale-orders", so, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListSaleOrders(ctx context.Context) ([]books.SaleOrder, error) {
	var result []books.SaleOrder
	if err := c.get(ctx, "/api/v1/sale-orders", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Ledger(ctx context.Context, accountCode, from, to string) (*books.Ledger, error) {
	params := url.Values{}
	params.Set("account", accountCode)
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}
	var result books.Ledger
	if err := c.get(ctx, "/api/v1/reports/ledger?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) TrialBalance(ctx context.Context, asOf string) (*books.TrialBalance, error) {
	params := url.Values{}
	if asOf != "" {
		params.Set("asOf", asOf)
	}
	var result books.TrialBalance
	if err := c.get(ctx, "/api/v1/reports/trial-balance?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) StockLedger(ctx context.Context, itemCode, from, to string) (*books.StockLedger, error) {
	params := url.Values{}
	params.Set("item", itemCode)
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}
	var result books.StockLedger
	if err := c.get(ctx, "/api/v1/reports/stock-ledger?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SalesReport(ctx context.Context, from, to string) (*books.SalesReport, error) {
	params := url.Values{}
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}
	var result books.SalesReport
	if err := c.get(ctx, "/api/v1/reports/sales?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Dashboard(ctx context.Context) (*books.DashboardSummary, error) {
	var result books.DashboardSummary
	if err := c.get(ctx, "/api/v1/reports/dashboard", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks if the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	return c.send(ctx, "POST", path, body, result)
}

func (c *Client) put(ctx context.Context, path string, body any, result any) error {
	return c.send(ctx, "PUT", path, body, result)
}

func (c *Client) send(ctx context.Context, method, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	return nil
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	var apiErr apiError
	if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
}
