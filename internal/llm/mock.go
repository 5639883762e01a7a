package llm

import "context"

// MockClient allows tests without calling a real backend.
type MockClient struct {
	Response string
	Err      error

	Calls        int
	LastModel    string
	LastMessages []Message
}

func (m *MockClient) Generate(_ context.Context, model string, messages []Message) (string, error) {
	m.Calls++
	m.LastModel = model
	m.LastMessages = messages
	return m.Response, m.Err
}
