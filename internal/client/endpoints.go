package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	endpointIndexStats    = "/_stats?metric=store,docs,segments,fielddata,query_cache,request_cache&level=indices"
	endpointIndexSettings = "/_settings?filter_path=**.settings.index.number_of_shards,**.settings.index.number_of_replicas,**.settings.index.auto_expand_replicas"
	endpointNodeStats     = "/_nodes/stats/jvm,fs?filter_path=nodes.*.roles,nodes.*.jvm.mem.heap_max_in_bytes,nodes.*.fs.total.total_in_bytes"
)

// GetIndexStats fetches per-index storage, doc, segment, and cache statistics
// from /_stats.
func (c *DefaultClient) GetIndexStats(ctx context.Context) (*IndexStatsResponse, error) {
	body, err := c.doGet(ctx, endpointIndexStats)
	if err != nil {
		return nil, fmt.Errorf("GetIndexStats: %w", err)
	}

	var result IndexStatsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetIndexStats decode: %w", err)
	}
	return &result, nil
}

// GetIndexSettings fetches per-index shard and replica settings from
// /_settings, filtered to the three keys replica resolution needs.
func (c *DefaultClient) GetIndexSettings(ctx context.Context) (IndexSettingsResponse, error) {
	body, err := c.doGet(ctx, endpointIndexSettings)
	if err != nil {
		return nil, fmt.Errorf("GetIndexSettings: %w", err)
	}

	var result IndexSettingsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetIndexSettings decode: %w", err)
	}
	return result, nil
}

// GetNodeStats fetches per-node roles, heap capacity, and disk capacity from
// /_nodes/stats.
func (c *DefaultClient) GetNodeStats(ctx context.Context) (*NodeStatsResponse, error) {
	body, err := c.doGet(ctx, endpointNodeStats)
	if err != nil {
		return nil, fmt.Errorf("GetNodeStats: %w", err)
	}

	var result NodeStatsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetNodeStats decode: %w", err)
	}
	return &result, nil
}
