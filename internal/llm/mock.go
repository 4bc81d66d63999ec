package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
	Calls    int
	Last     []Message
}

func (m *MockClient) Complete(ctx context.Context, messages []Message) (string, error) {
	m.Calls++
	m.Last = messages
	return m.Response, m.Err
}
