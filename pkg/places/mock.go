package places

import (
	"context"
	"errors"
	"sync"
)

// MockClient 可配置的地点预览 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []string

	// Result 非空时所有调用返回它
	Result *Metadata

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]string, 0),
	}
}

func (m *MockClient) Preview(ctx context.Context, url string) (*Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, url)

	if m.FailNext {
		m.FailNext = false
		return nil, errors.New("mock preview failure")
	}

	if m.Result != nil {
		r := *m.Result
		r.SourceURL = url
		return &r, nil
	}

	return &Metadata{
		Title:     "Mock place",
		SourceURL: url,
	}, nil
}
