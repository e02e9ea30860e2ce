package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to PaymentService over its internal HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitRefund submits a refund for a cancelled booking.
func (c *Client) SubmitRefund(ctx context.Context, refund RefundRequest) (*RefundResponse, error) {
	url := fmt.Sprintf("%s/internal/refunds", c.baseURL)

	payload, err := json.Marshal(refund)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// fall through to decode
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result RefundResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// SubmitRefundWithGracefulDegradation submits the refund but converts any
// failure into ErrServiceDegraded. Cancellation must not be blocked by
// PaymentService downtime; the caller logs the outcome and an out-of-band
// job reconciles missed refunds.
func (c *Client) SubmitRefundWithGracefulDegradation(ctx context.Context, refund RefundRequest) (*RefundResponse, error) {
	c.log.Info("Submitting refund for booking_id=%d, tier=%s", refund.BookingID, refund.Tier)

	result, err := c.SubmitRefund(ctx, refund)
	if err != nil {
		c.log.Error("PaymentService unavailable, applying graceful degradation for booking_id=%d: %v", refund.BookingID, err)
		return nil, fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, refund.BookingID, err)
	}

	c.log.Info("Refund submitted for booking_id=%d, refund_id=%s", refund.BookingID, result.RefundID)
	return result, nil
}
