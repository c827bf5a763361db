package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	orderID := gofakeit.UUID()
	externalKey := gofakeit.UUID()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, routeConfirm, r.URL.Path)
		// Секрет уходит basic-авторизацией с пустым паролем.
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "secret", user)
		assert.Empty(t, pass)

		var req confirmRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, orderID, req.OrderID)
		assert.Equal(t, externalKey, req.PaymentKey)
		assert.Equal(t, int64(5000), req.Amount)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"DONE","method":"card","approvedAt":"2026-08-30T12:00:00Z"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	confirmation, err := client.Confirm(context.Background(), externalKey, orderID, 5000)
	require.NoError(t, err)
	assert.Equal(t, "DONE", confirmation.Status)
	assert.Equal(t, "card", confirmation.Method)
}

// Ответ 200 с неуспешным статусом платежа - ошибка, а не молчаливый успех.
func TestConfirmNonDoneStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"CANCELED"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	_, err := client.Confirm(context.Background(), "key", "order", 5000)
	require.Error(t, err)

	var statusErr *GatewayStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "CANCELED", statusErr.Status)
}

func TestConfirmBadStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	_, err := client.Confirm(context.Background(), "key", "order", 5000)

	var codeErr *StatusCodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadGateway, codeErr.Code)
}

func TestCancel(t *testing.T) {
	externalKey := gofakeit.UUID()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/"+externalKey+"/cancel", r.URL.Path)

		var req cancelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buyer request", req.CancelReason)

		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	require.NoError(t, client.Cancel(context.Background(), externalKey, "buyer request"))
}

func TestCancelBadStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")
	err := client.Cancel(context.Background(), "key", "reason")

	var codeErr *StatusCodeError
	require.ErrorAs(t, err, &codeErr)
}
