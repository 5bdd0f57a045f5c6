package engine

import (
	"context"
	"errors"

	"github.com/dm/eia-go/internal/client"
)

// MockESClient implements client.ESClient for testing. Each fetch records a
// call count so tests can assert which endpoints a run touched.
type MockESClient struct {
	IndexStatsFn    func(ctx context.Context) (*client.IndexStatsResponse, error)
	IndexSettingsFn func(ctx context.Context) (client.IndexSettingsResponse, error)
	NodeStatsFn     func(ctx context.Context) (*client.NodeStatsResponse, error)

	IndexStatsCalls    int
	IndexSettingsCalls int
	NodeStatsCalls     int
}

func (m *MockESClient) GetIndexStats(ctx context.Context) (*client.IndexStatsResponse, error) {
	m.IndexStatsCalls++
	if m.IndexStatsFn != nil {
		return m.IndexStatsFn(ctx)
	}
	return &client.IndexStatsResponse{Indices: map[string]client.IndexStatEntry{}}, nil
}

func (m *MockESClient) GetIndexSettings(ctx context.Context) (client.IndexSettingsResponse, error) {
	m.IndexSettingsCalls++
	if m.IndexSettingsFn != nil {
		return m.IndexSettingsFn(ctx)
	}
	return client.IndexSettingsResponse{}, nil
}

func (m *MockESClient) GetNodeStats(ctx context.Context) (*client.NodeStatsResponse, error) {
	m.NodeStatsCalls++
	if m.NodeStatsFn != nil {
		return m.NodeStatsFn(ctx)
	}
	return &client.NodeStatsResponse{Nodes: map[string]client.NodeStats{}}, nil
}

func (m *MockESClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockESClient) BaseURL() string {
	return "http://mock:9200"
}

var errMockFailure = errors.New("mock failure")
