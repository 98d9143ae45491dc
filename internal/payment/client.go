package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/monibBormon/carhouse/internal/models"
)

const (
	defaultBaseURL = "https://api.stripe.com"
	intentsPath    = "/v1/payment_intents"

	requestTimeout = 5 * time.Second
	retryDelay     = 500 * time.Millisecond
)

// Client talks to the payment provider's payment-intent endpoint.
type Client struct {
	client    *http.Client
	baseURL   string
	secretKey string
}

// NewClient creates new payment Client instance. An empty baseURL
// selects the provider's public API.
func NewClient(baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

// IntentRequest describes a payment intent to create. Amount is in
// minor currency units.
type IntentRequest struct {
	Amount         int64
	Currency       string
	MethodTypes    []string
	IdempotencyKey string
}

// Intent is the provider's view of a created payment intent.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// CreateIntent creates a payment intent. Transient failures (network
// error or provider 5xx) are retried once, provider rejections are
// terminal.
func (c *Client) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	intent, retriable, err := c.createIntent(ctx, req)
	if err == nil || !retriable {
		return intent, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	intent, _, err = c.createIntent(ctx, req)
	return intent, err
}

func (c *Client) createIntent(ctx context.Context, req IntentRequest) (*Intent, bool, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	for _, mt := range req.MethodTypes {
		form.Add("payment_method_types[]", mt)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+intentsPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, false, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	resp, err := c.client.Do(httpReq)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, true, models.ErrPaymentUnavailable
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		intent := Intent{}
		if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
			return nil, false, err
		}
		return &intent, false, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, models.ErrPaymentUnavailable
	default:
		// 4xx: invalid amount, bad key, declined request
		return nil, false, models.ErrPaymentRejected
	}
}
