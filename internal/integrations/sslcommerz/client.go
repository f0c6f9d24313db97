package sslcommerz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client client for the SSLCommerz payment gateway
type Client struct {
	baseURL       string
	storeID       string
	storePassword string
	successURL    string
	failURL       string
	cancelURL     string
	httpClient    *http.Client
	log           Logger
}

// Config gateway connection settings
type Config struct {
	BaseURL       string
	StoreID       string
	StorePassword string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	Timeout       time.Duration
}

// NewClient creates an SSLCommerz gateway client
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		storeID:       cfg.StoreID,
		storePassword: cfg.StorePassword,
		successURL:    cfg.SuccessURL,
		failURL:       cfg.FailURL,
		cancelURL:     cfg.CancelURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// CreateSession opens a hosted checkout session. The gateway returns
// a session key and the page URL the customer is redirected to.
func (c *Client) CreateSession(ctx context.Context, sr SessionRequest) (*SessionResponse, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePassword)
	form.Set("total_amount", sr.Amount)
	form.Set("currency", sr.Currency)
	form.Set("tran_id", sr.TransactionID)
	form.Set("success_url", c.successURL)
	form.Set("fail_url", c.failURL)
	form.Set("cancel_url", c.cancelURL)
	form.Set("cus_name", sr.CustomerName)
	form.Set("cus_email", sr.CustomerEmail)
	form.Set("cus_phone", sr.CustomerPhone)
	form.Set("product_name", sr.ProductName)
	form.Set("product_category", "hotel_booking")
	form.Set("product_profile", "general")
	form.Set("shipping_method", "NO")
	form.Set("value_a", sr.BookingRef)

	endpoint := c.baseURL + "/gwprocess/v4/api.php"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var session SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !strings.EqualFold(session.Status, "SUCCESS") {
		c.log.Warn("Gateway rejected session for tran_id=%s: %s", sr.TransactionID, session.FailedReason)
		return nil, fmt.Errorf("%w: %s", ErrSessionRejected, session.FailedReason)
	}

	c.log.Info("Opened gateway session for tran_id=%s, sessionkey=%s", sr.TransactionID, session.SessionKey)
	return &session, nil
}

// ValidateTransaction verifies a completed transaction with the
// gateway's validation API. Callbacks are never trusted on their own.
func (c *Client) ValidateTransaction(ctx context.Context, valID string) (*ValidationResponse, error) {
	query := url.Values{}
	query.Set("val_id", valID)
	query.Set("store_id", c.storeID)
	query.Set("store_passwd", c.storePassword)
	query.Set("format", "json")

	endpoint := c.baseURL + "/validator/api/validationserverAPI.php?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Gateway validation unreachable for val_id=%s: %v", valID, err)
		return nil, fmt.Errorf("%w: val_id=%s, error=%v", ErrGatewayUnavailable, valID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var validation ValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Gateway validation for val_id=%s returned status=%s", valID, validation.Status)
	return &validation, nil
}
