// Package client is the Go counterpart of the storefront: a thin API
// client plus a local cart and an offline order queue backed by sqlite.
// Orders placed while the API is unreachable are parked locally and
// replayed once connectivity returns.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
}

type Shipping struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
}

type OrderRequest struct {
	Items    []OrderItem            `json:"items"`
	Shipping Shipping               `json:"shipping"`
	Payment  map[string]interface{} `json:"payment,omitempty"`
	Total    float64                `json:"total"`
}

type OrderConfirmation struct {
	ID          uint    `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
}

// APIError is a response the server produced; unlike a transport error
// the request did arrive.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Errors, "; "))
	}
	return e.Message
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type API struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Errors:     env.Errors,
		}
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (a *API) CreateOrder(ctx context.Context, req *OrderRequest) (*OrderConfirmation, error) {
	var conf OrderConfirmation
	if err := a.do(ctx, http.MethodPost, "/api/orders", req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (a *API) GetOrder(ctx context.Context, id uint) (map[string]interface{}, error) {
	var order map[string]interface{}
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return order, nil
}
