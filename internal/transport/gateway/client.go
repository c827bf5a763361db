// Package gateway реализует клиент внешнего платежного шлюза: подтверждение
// одобренных платежей и отмена ранее одобренных.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
)

const (
	routeConfirm = "/v1/payments/confirm"
	routeCancel  = "/v1/payments/%s/cancel"
)

// Client HTTP-клиент шлюза. Реализует service.Gateway. Любой ответ со
// статусом отличным от 200, как и транспортная ошибка, возвращается ошибкой:
// молчаливого успеха не бывает.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func New(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: http.DefaultClient,
	}
}

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

type confirmResponse struct {
	Status     string    `json:"status"`
	Method     string    `json:"method"`
	ApprovedAt time.Time `json:"approvedAt"`
}

// Confirm подтверждает платеж в шлюзе. Успехом считается только статус DONE
// в теле ответа 200.
func (c *Client) Confirm(
	ctx context.Context,
	externalKey, orderID string,
	amount int64,
) (*domain.GatewayConfirmation, error) {
	payload, marshalErr := json.Marshal(confirmRequest{
		PaymentKey: externalKey,
		OrderID:    orderID,
		Amount:     amount,
	})
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal confirm request: %s", marshalErr.Error())
	}

	body, doErr := c.post(ctx, c.baseURL+routeConfirm, payload)
	if doErr != nil {
		return nil, fmt.Errorf("confirm payment %s: %w", orderID, doErr)
	}

	var resp confirmResponse
	if jsonErr := json.Unmarshal(body, &resp); jsonErr != nil {
		return nil, fmt.Errorf("parse confirm response: %s", jsonErr.Error())
	}
	if resp.Status != "DONE" {
		return nil, NewGatewayStatusError(resp.Status)
	}

	return &domain.GatewayConfirmation{
		Status:     resp.Status,
		Method:     resp.Method,
		ApprovedAt: resp.ApprovedAt,
	}, nil
}

type cancelRequest struct {
	CancelReason string `json:"cancelReason"`
}

// Cancel отменяет ранее одобренный платеж.
func (c *Client) Cancel(ctx context.Context, externalKey, reason string) error {
	payload, marshalErr := json.Marshal(cancelRequest{CancelReason: reason})
	if marshalErr != nil {
		return fmt.Errorf("marshal cancel request: %s", marshalErr.Error())
	}

	url := c.baseURL + fmt.Sprintf(routeCancel, externalKey)
	if _, doErr := c.post(ctx, url, payload); doErr != nil {
		return fmt.Errorf("cancel payment: %w", doErr)
	}
	return nil
}

//nolint:nonamedreturns
func (c *Client) post(ctx context.Context, url string, payload []byte) (body []byte, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.secretKey+":")))

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}
	return body, nil
}
