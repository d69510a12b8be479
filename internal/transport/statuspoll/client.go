package statuspoll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/google/uuid"
)

const routeStatus = "/api/product-status/"

// StatusCodeError ответ сервера отличный от 200.
type StatusCodeError struct {
	Code int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

// statusResponse тело ответа GET /api/product-status/{id}.
type statusResponse struct {
	ListingID uuid.UUID           `json:"listingId"`
	Status    domain.AIStatusType `json:"status"`
	Message   string              `json:"message"`
	Timestamp *time.Time          `json:"timestamp"`
}

// HTTPClient реализация Fetcher поверх HTTP API аукциона.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

//nolint:nonamedreturns
func (c HTTPClient) FetchStatus(ctx context.Context, listingID uuid.UUID) (status *domain.ListingStatus, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+routeStatus+listingID.String(), nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusCodeError{Code: resp.StatusCode}
	}

	var body statusResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !body.Status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", body.Status)
	}

	return &domain.ListingStatus{
		ListingID: listingID,
		Status:    body.Status,
		Message:   body.Message,
		Timestamp: body.Timestamp,
	}, nil
}
