package asaas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type InterfaceClient interface {
	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	CreateSubscription(ctx context.Context, arg CreateSubscriptionParams) (Subscription, error)
	GetSubscription(ctx context.Context, id string) (Subscription, error)
	GetSubscriptionPayments(ctx context.Context, id string) (PaymentList, error)
	GetPixQrCode(ctx context.Context, paymentID string) (PixQrCode, error)
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	var customer Customer
	err := c.do(ctx, http.MethodPost, "/customers", arg, &customer)
	return customer, err
}

func (c *Client) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	var payment Payment
	err := c.do(ctx, http.MethodPost, "/payments", arg, &payment)
	return payment, err
}

func (c *Client) CreateSubscription(ctx context.Context, arg CreateSubscriptionParams) (Subscription, error) {
	var subscription Subscription
	err := c.do(ctx, http.MethodPost, "/subscriptions", arg, &subscription)
	return subscription, err
}

func (c *Client) GetSubscription(ctx context.Context, id string) (Subscription, error) {
	var subscription Subscription
	err := c.do(ctx, http.MethodGet, "/subscriptions/"+id, nil, &subscription)
	return subscription, err
}

func (c *Client) GetSubscriptionPayments(ctx context.Context, id string) (PaymentList, error) {
	var payments PaymentList
	err := c.do(ctx, http.MethodGet, "/subscriptions/"+id+"/payments", nil, &payments)
	return payments, err
}

func (c *Client) GetPixQrCode(ctx context.Context, paymentID string) (PixQrCode, error) {
	var pix PixQrCode
	err := c.do(ctx, http.MethodGet, "/payments/"+paymentID+"/pixQrCode", nil, &pix)
	return pix, err
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && len(apiErr.Errors) > 0 {
			return fmt.Errorf("asaas: %s", apiErr.Errors[0].Description)
		}
		return fmt.Errorf("asaas: status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
