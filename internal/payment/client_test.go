package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/monibBormon/carhouse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intentReq() IntentRequest {
	return IntentRequest{
		Amount:         1999,
		Currency:       "usd",
		MethodTypes:    []string{"card"},
		IdempotencyKey: "order:635a11111111111111111111",
	}
}

func TestClient_CreateIntent(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotReq = r

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123")

	intent, err := client.CreateIntent(context.Background(), intentReq())
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_456", intent.ClientSecret)

	assert.Equal(t, "/v1/payment_intents", gotReq.URL.Path)
	assert.Equal(t, "1999", gotReq.PostFormValue("amount"))
	assert.Equal(t, "usd", gotReq.PostFormValue("currency"))
	assert.Equal(t, []string{"card"}, gotReq.PostForm["payment_method_types[]"])
	assert.Equal(t, "Bearer sk_test_123", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "order:635a11111111111111111111", gotReq.Header.Get("Idempotency-Key"))
}

func TestClient_CreateIntentRetriesTransientOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123")

	intent, err := client.CreateIntent(context.Background(), intentReq())
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", intent.ClientSecret)
	assert.Equal(t, 2, calls)
}

func TestClient_CreateIntentGivesUpAfterRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123")

	_, err := client.CreateIntent(context.Background(), intentReq())
	assert.ErrorIs(t, err, models.ErrPaymentUnavailable)
	assert.Equal(t, 2, calls)
}

func TestClient_CreateIntentRejectionIsTerminal(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123")

	_, err := client.CreateIntent(context.Background(), intentReq())
	assert.ErrorIs(t, err, models.ErrPaymentRejected)
	assert.Equal(t, 1, calls)
}
