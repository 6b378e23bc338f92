package apiclient

import (
	"context"
	"sync"
)

type postCall struct {
	URL  string
	Body []byte
}

// MockTransport records every Post and answers with MockPost.
type MockTransport struct {
	MockPost func(ctx context.Context, url string, body []byte) (int, []byte, error)

	mu    sync.Mutex
	calls []postCall
}

func (m *MockTransport) Post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, postCall{URL: url, Body: append([]byte(nil), body...)})
	m.mu.Unlock()

	if m.MockPost != nil {
		return m.MockPost(ctx, url, body)
	}
	return 201, []byte(`{"slug":"default","hostURL":"https://host","guestURL":"https://guest"}`), nil // Default behavior
}

func (m *MockTransport) Calls() []postCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]postCall(nil), m.calls...)
}

func respondWith(status int, body string) func(context.Context, string, []byte) (int, []byte, error) {
	return func(context.Context, string, []byte) (int, []byte, error) {
		return status, []byte(body), nil
	}
}
