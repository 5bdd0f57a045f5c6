package client

// IndexStatsResponse represents the response from /_stats.
type IndexStatsResponse struct {
	Indices map[string]IndexStatEntry `json:"indices"`
}

// IndexStatEntry holds per-index statistics split by primaries and total.
// Either section may be absent in a filtered response.
type IndexStatEntry struct {
	Primaries *IndexStatSection `json:"primaries,omitempty"`
	Total     *IndexStatSection `json:"total,omitempty"`
}

// IndexStatSection holds the metric blocks of one primaries/total section.
// Absent blocks decode to zero values, which is the documented default.
type IndexStatSection struct {
	Store        StoreStats    `json:"store"`
	Docs         DocsStats     `json:"docs"`
	Segments     SegmentsStats `json:"segments"`
	Fielddata    MemoryStats   `json:"fielddata"`
	QueryCache   MemoryStats   `json:"query_cache"`
	RequestCache MemoryStats   `json:"request_cache"`
}

// StoreStats holds the stored size of a section.
type StoreStats struct {
	SizeInBytes int64 `json:"size_in_bytes"`
}

// DocsStats holds the document count of a section.
type DocsStats struct {
	Count int64 `json:"count"`
}

// SegmentsStats holds segment count and segment memory of a section.
type SegmentsStats struct {
	Count         int64 `json:"count"`
	MemoryInBytes int64 `json:"memory_in_bytes"`
}

// MemoryStats holds the memory size of a cache block (fielddata,
// query_cache, request_cache).
type MemoryStats struct {
	MemorySizeInBytes int64 `json:"memory_size_in_bytes"`
}

// IndexSettingsResponse maps index name to its settings entry, as returned
// by /_settings.
type IndexSettingsResponse map[string]IndexSettingsEntry

// IndexSettingsEntry wraps the nested settings.index block.
type IndexSettingsEntry struct {
	Settings struct {
		Index IndexSettings `json:"index"`
	} `json:"settings"`
}

// IndexSettings holds the shard/replica settings of one index. Elasticsearch
// returns these as strings; absent keys decode to "".
type IndexSettings struct {
	NumberOfShards     string `json:"number_of_shards"`
	NumberOfReplicas   string `json:"number_of_replicas"`
	AutoExpandReplicas string `json:"auto_expand_replicas"`
}

// NodeStatsResponse represents the response from /_nodes/stats/jvm,fs.
type NodeStatsResponse struct {
	Nodes map[string]NodeStats `json:"nodes"`
}

// NodeStats holds the role list and capacity figures of one node.
type NodeStats struct {
	Roles []string      `json:"roles"`
	JVM   *NodeJVMStats `json:"jvm,omitempty"`
	FS    *NodeFSStats  `json:"fs,omitempty"`
}

// NodeJVMStats holds JVM heap capacity.
type NodeJVMStats struct {
	Mem struct {
		HeapMaxInBytes int64 `json:"heap_max_in_bytes"`
	} `json:"mem"`
}

// NodeFSStats holds filesystem capacity.
type NodeFSStats struct {
	Total struct {
		TotalInBytes int64 `json:"total_in_bytes"`
	} `json:"total"`
}
