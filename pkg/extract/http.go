package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxResponseBytes bounds how much of an LLM response body is read.
const maxResponseBytes = 4 << 20

// apiError is returned for non-200 responses from a backend.
type apiError struct {
	backend string
	status  int
	detail  string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.backend, e.status, e.detail)
}

// postJSON marshals payload, POSTs it to url with headers, and returns the
// raw body of a 200 response. errDetail extracts a readable message from a
// non-200 body; when nil or when it returns "", the raw body is used.
func postJSON(
	ctx context.Context,
	client *http.Client,
	backend, url string,
	headers map[string]string,
	payload any,
	errDetail func([]byte) string,
) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", backend, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := ""
		if errDetail != nil {
			detail = errDetail(respBody)
		}
		if detail == "" {
			detail = string(respBody)
		}
		return nil, &apiError{backend: backend, status: resp.StatusCode, detail: detail}
	}

	return respBody, nil
}
