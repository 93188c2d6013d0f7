package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kinetrack/kinetrack/internal/models"
	"github.com/kinetrack/kinetrack/pkg/api"
)

const (
	defaultTimeout = 30 * time.Second
	maxRedirects   = 10
)

// Client is the HTTP implementation of ClientAPI.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	authToken  string
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL, authToken string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				// The default client drops Authorization on redirect.
				if len(via) > 0 {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// doRequest performs an HTTP request and returns the raw response body and
// status code. A non-nil error means the request never produced a response.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

// toUpload converts a local record to its wire representation.
func toUpload(record *models.MeasurementRecord) api.MeasurementUpload {
	return api.MeasurementUpload{
		ID:        record.ID,
		UserID:    record.UserID,
		Type:      record.Type,
		JSONData:  record.Data,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// failOutcome builds a failed outcome for a record from a transport error.
func failOutcome(recordID string, err error) PushOutcome {
	kind := classifyError(err)
	return PushOutcome{
		RecordID:     recordID,
		ErrorKind:    kind,
		ErrorMessage: kind.Message(),
	}
}

// statusOutcome builds a failed outcome from a non-2xx response.
func statusOutcome(recordID string, code int, body []byte) PushOutcome {
	kind := classifyStatus(code)
	msg := kind.Message()

	var errResp api.ErrorResponse
	if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Message != "" {
		msg = errResp.Message
	}

	return PushOutcome{
		RecordID:     recordID,
		ErrorKind:    kind,
		ErrorMessage: msg,
	}
}

// Push uploads a single record.
func (c *Client) Push(ctx context.Context, record *models.MeasurementRecord) PushOutcome {
	body, code, err := c.doRequest(ctx, http.MethodPost, "/api/v1/measurements", toUpload(record))
	if err != nil {
		c.logger.Debug("push transport failure", "record_id", record.ID, "error", err)
		return failOutcome(record.ID, err)
	}

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return statusOutcome(record.ID, code, body)
	}

	var resp api.PushResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return PushOutcome{
			RecordID:     record.ID,
			ErrorKind:    ErrorKindUnknown,
			ErrorMessage: "malformed server response",
		}
	}

	return outcomeFromResponse(record.ID, resp)
}

// PushBatch uploads records in one request. Outcomes are returned in input
// order, one per record, matched by id.
func (c *Client) PushBatch(ctx context.Context, records []*models.MeasurementRecord) []PushOutcome {
	if len(records) == 0 {
		return nil
	}

	uploads := make([]api.MeasurementUpload, 0, len(records))
	for _, record := range records {
		uploads = append(uploads, toUpload(record))
	}

	body, code, err := c.doRequest(ctx, http.MethodPost, "/api/v1/measurements/batch", uploads)
	if err != nil {
		c.logger.Debug("batch transport failure", "count", len(records), "error", err)
		return uniformFailure(records, failOutcome("", err))
	}

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return uniformFailure(records, statusOutcome("", code, body))
	}

	var resps []api.PushResponse
	if err := json.Unmarshal(body, &resps); err != nil {
		return uniformFailure(records, PushOutcome{
			ErrorKind:    ErrorKindUnknown,
			ErrorMessage: "malformed server response",
		})
	}

	byID := make(map[string]api.PushResponse, len(resps))
	for _, resp := range resps {
		byID[resp.ID] = resp
	}

	outcomes := make([]PushOutcome, 0, len(records))
	for _, record := range records {
		resp, ok := byID[record.ID]
		if !ok {
			outcomes = append(outcomes, PushOutcome{
				RecordID:     record.ID,
				ErrorKind:    ErrorKindUnknown,
				ErrorMessage: "no server response for record",
			})
			continue
		}
		outcomes = append(outcomes, outcomeFromResponse(record.ID, resp))
	}

	return outcomes
}

// Health probes the unauthenticated health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, code, err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return fmt.Errorf("health check returned status %d", code)
	}
	return nil
}

// outcomeFromResponse maps a per-record server response to an outcome.
// A 2xx response with success=false means the server rejected this
// particular record, which is a client-side problem with the record.
func outcomeFromResponse(recordID string, resp api.PushResponse) PushOutcome {
	if resp.Success {
		return PushOutcome{
			RecordID:  recordID,
			BackendID: resp.BackendID,
			Success:   true,
		}
	}

	msg := resp.ErrorMessage
	if msg == "" {
		msg = ErrorKindClientError.Message()
	}

	return PushOutcome{
		RecordID:     recordID,
		ErrorKind:    ErrorKindClientError,
		ErrorMessage: msg,
	}
}

// uniformFailure replicates a batch-level failure onto every record.
func uniformFailure(records []*models.MeasurementRecord, template PushOutcome) []PushOutcome {
	outcomes := make([]PushOutcome, 0, len(records))
	for _, record := range records {
		outcome := template
		outcome.RecordID = record.ID
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
