package petservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to PetService over its internal HTTP API.
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

// GetPet fetches one of an owner's pets.
func (c *Client) GetPet(ctx context.Context, ownerID, petID int64) (*Pet, error) {
	url := fmt.Sprintf("%s/internal/owners/%d/pets/%d", c.baseURL, ownerID, petID)

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
		return nil, fmt.Errorf("%w: invalid owner or pet ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPetNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var pet Pet
	if err := json.NewDecoder(resp.Body).Decode(&pet); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &pet, nil
}

// GetPetWithGracefulDegradation fetches the pet but converts availability
// failures into ErrServiceDegraded. Booking creation then proceeds with
// the pet snapshot missing instead of failing the whole request.
// A genuine not-found is still surfaced as ErrPetNotFound.
func (c *Client) GetPetWithGracefulDegradation(ctx context.Context, ownerID, petID int64) (*Pet, error) {
	c.log.Info("Fetching pet pet_id=%d for owner_id=%d", petID, ownerID)

	pet, err := c.GetPet(ctx, ownerID, petID)
	if err != nil {
		if errors.Is(err, ErrPetNotFound) {
			c.log.Info("No pet pet_id=%d found for owner_id=%d", petID, ownerID)
			return nil, err
		}

		c.log.Error("PetService unavailable, applying graceful degradation for pet_id=%d: %v", petID, err)
		return nil, fmt.Errorf("%w: pet_id=%d, error=%v", ErrServiceDegraded, petID, err)
	}

	c.log.Info("Successfully fetched pet pet_id=%d, species=%s", petID, pet.Species)
	return pet, nil
}
