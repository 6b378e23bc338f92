package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	internal_errors "github.com/bagooon/chatease-go/shared/errors"
)

// HTTPTransport performs the POST. It is the only part of the client that does I/O.
// Implementations return a non-nil error only when no HTTP response was received
// in full; any status code, including 4xx and 5xx, is a successful round trip.
type HTTPTransport interface {
	Post(ctx context.Context, url string, body []byte) (statusCode int, respBody []byte, err error)
}

type httpTransport struct {
	client *http.Client
	token  string
}

// NewHTTPTransport returns the network transport that sends the token as a bearer credential.
func NewHTTPTransport(apiToken string, client *http.Client) HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &httpTransport{client: client, token: apiToken}
}

func (t *httpTransport) Post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, &internal_errors.TransportError{Op: "new request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, &internal_errors.TransportError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &internal_errors.TransportError{
			Op:  "read body",
			Err: fmt.Errorf("status %d: %w", resp.StatusCode, err),
		}
	}
	return resp.StatusCode, respBody, nil
}
