package hotels

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// MockClient 可配置的酒店搜索 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []SearchQuery

	// Results 非空时所有调用返回它
	Results []Hotel

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]SearchQuery, 0),
	}
}

func (m *MockClient) Search(ctx context.Context, q SearchQuery) ([]Hotel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, q)

	if m.FailNext {
		m.FailNext = false
		return nil, errors.New("mock hotel search failure")
	}

	if m.Results != nil {
		return m.Results, nil
	}

	return []Hotel{
		{
			Name:          fmt.Sprintf("Mock Hotel %s", q.City),
			Address:       fmt.Sprintf("1 Main St, %s", q.City),
			PricePerNight: "120.00",
			Currency:      "USD",
			Rating:        4.2,
		},
	}, nil
}
