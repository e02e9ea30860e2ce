package caregiverservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to CaregiverService over its internal HTTP API.
// Caregiver existence and service checks are part of booking validation,
// so this client has no degraded mode. An unreachable CaregiverService
// fails the request.
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

// GetCaregiver fetches a caregiver profile.
func (c *Client) GetCaregiver(ctx context.Context, caregiverID int64) (*Caregiver, error) {
	url := fmt.Sprintf("%s/internal/caregivers/%d", c.baseURL, caregiverID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
	case http.StatusOK:
		// fall through to decode
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid caregiver ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCaregiverNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var caregiver Caregiver
	if err := json.NewDecoder(resp.Body).Decode(&caregiver); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &caregiver, nil
}
