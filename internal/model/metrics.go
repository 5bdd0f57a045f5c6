package model

// IndexMetric holds the normalized metrics for one physical index, produced
// by a single collection pass. Storage figures are in binary GB, memory and
// cache figures in binary MB.
type IndexMetric struct {
	Name             string
	PrimaryStorageGB float64
	TotalStorageGB   float64
	DocCount         int64
	TotalShards      int // numShards * (1 + effective replicas)
	TotalSegments    int64
	SegmentMemoryMB  float64
	FielddataMB      float64
	QueryCacheMB     float64
	RequestCacheMB   float64
}

// GroupMetrics is the field-wise sum of the IndexMetrics folded into a
// stream group.
type GroupMetrics struct {
	PrimaryStorageGB float64
	TotalStorageGB   float64
	DocCount         int64
	TotalShards      int
	TotalSegments    int64
	SegmentMemoryMB  float64
	FielddataMB      float64
	QueryCacheMB     float64
	RequestCacheMB   float64
}

// Add accumulates m into g field by field.
func (g *GroupMetrics) Add(m IndexMetric) {
	g.PrimaryStorageGB += m.PrimaryStorageGB
	g.TotalStorageGB += m.TotalStorageGB
	g.DocCount += m.DocCount
	g.TotalShards += m.TotalShards
	g.TotalSegments += m.TotalSegments
	g.SegmentMemoryMB += m.SegmentMemoryMB
	g.FielddataMB += m.FielddataMB
	g.QueryCacheMB += m.QueryCacheMB
	g.RequestCacheMB += m.RequestCacheMB
}

// StreamGroup aggregates all indices that share one logical stream name.
type StreamGroup struct {
	LogName     string
	IndexCount  int
	ImpactScore float64
	Metrics     GroupMetrics
	Indices     []string // member index names, insertion order
}

// CapacityInfo holds cluster-wide capacity totals summed over data-capable
// nodes only. The zero value means "capacity unknown".
type CapacityInfo struct {
	DiskTotalBytes int64
	HeapMaxBytes   int64
	DataNodes      int
}

const (
	bytesPerGB = 1 << 30
	bytesPerMB = 1 << 20
)

// DiskTotalGB returns the cluster disk total in binary GB.
func (c CapacityInfo) DiskTotalGB() float64 {
	return float64(c.DiskTotalBytes) / bytesPerGB
}

// HeapMaxMB returns the cluster heap maximum in binary MB.
func (c CapacityInfo) HeapMaxMB() float64 {
	return float64(c.HeapMaxBytes) / bytesPerMB
}

// Weights are the weighted-mode scoring coefficients. Any float is accepted;
// this is a free-form relative weighting, not a normalized distribution.
type Weights struct {
	StorageGB    float64 `json:"storage_gb"`
	ShardCount   float64 `json:"shard_count"`
	SegmentCount float64 `json:"segment_count"`
	FielddataMB  float64 `json:"fielddata_mb"`
	QueryCacheMB float64 `json:"query_cache_mb"`
}

// DefaultWeights returns the documented default coefficients.
func DefaultWeights() Weights {
	return Weights{
		StorageGB:    1.0,
		ShardCount:   5.0,
		SegmentCount: 0.1,
		FielddataMB:  2.0,
		QueryCacheMB: 0.5,
	}
}
