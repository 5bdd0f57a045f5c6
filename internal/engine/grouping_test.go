package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/eia-go/internal/model"
)

func TestNewPatternMatcherInvalid(t *testing.T) {
	_, err := NewPatternMatcher("([unclosed")
	assert.Error(t, err)
}

func TestPatternMatcherKeys(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		index   string
		matched bool
		wantKey string
	}{
		{"positional capture", `^logstash-(.+)-\d+$`, "logstash-nginx-20240105", true, "nginx"},
		{"no match", `^logstash-(.+)-\d+$`, "metrics-summary", false, ""},
		{"dotted date suffix is not all digits", `^logstash-(.+)-\d+$`, "logstash-nginx-2024.01.05", false, ""},
		{"named log_name group", `^(?P<env>\w+)-(?P<log_name>\w+)-\d+$`, "prod-nginx-42", true, "nginx"},
		{"named group preferred over first capture", `^(?P<log_name>\w+)-(\d+)$`, "nginx-42", true, "nginx"},
		{"no capture groups", `^logstash-.*$`, "logstash-nginx-2024.01.05", true, "logstash-nginx-2024.01.05"},
		{"empty capture falls back to full name", `^logstash-(\d*)nginx$`, "logstash-nginx", true, "logstash-nginx"},
		{"anchored at start", `nginx-(\d+)$`, "logstash-nginx-42", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewPatternMatcher(tc.pattern)
			require.NoError(t, err)
			res := m.Match(tc.index)
			assert.Equal(t, tc.matched, res.Matched)
			if tc.matched {
				assert.Equal(t, tc.wantKey, res.Key)
			}
		})
	}
}

func TestHasCaptureGroups(t *testing.T) {
	m, err := NewPatternMatcher(`^logstash-.*$`)
	require.NoError(t, err)
	assert.False(t, m.HasCaptureGroups())

	m, err = NewPatternMatcher(`^logstash-(.+)$`)
	require.NoError(t, err)
	assert.True(t, m.HasCaptureGroups())
}

func metric(name string, storageGB float64, shards int) model.IndexMetric {
	return model.IndexMetric{
		Name:           name,
		TotalStorageGB: storageGB,
		TotalShards:    shards,
		DocCount:       100,
		FielddataMB:    1,
	}
}

func TestGroupStreams(t *testing.T) {
	m, err := NewPatternMatcher(`^logstash-(.+)-\d+$`)
	require.NoError(t, err)

	metrics := []model.IndexMetric{
		metric("logstash-nginx-20240105", 2, 4),
		metric("logstash-app-20240105", 1, 2),
		metric("logstash-nginx-20240106", 3, 4),
		metric("metrics-summary", 9, 9),
	}

	groups, unmatched := GroupStreams(metrics, m)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"metrics-summary"}, unmatched)

	// First-appearance order.
	nginx, app := groups[0], groups[1]
	assert.Equal(t, "nginx", nginx.LogName)
	assert.Equal(t, "app", app.LogName)

	assert.Equal(t, 2, nginx.IndexCount)
	assert.Equal(t, []string{"logstash-nginx-20240105", "logstash-nginx-20240106"}, nginx.Indices)
	assert.Equal(t, 5.0, nginx.Metrics.TotalStorageGB)
	assert.Equal(t, 8, nginx.Metrics.TotalShards)
	assert.Equal(t, int64(200), nginx.Metrics.DocCount)
	assert.Equal(t, 2.0, nginx.Metrics.FielddataMB)

	assert.Equal(t, 1, app.IndexCount)
	assert.Equal(t, 1.0, app.Metrics.TotalStorageGB)
}

func TestGroupStreamsAggregationOrderIndependent(t *testing.T) {
	m, err := NewPatternMatcher(`^logstash-(.+)-\d+$`)
	require.NoError(t, err)

	forward := []model.IndexMetric{
		metric("logstash-nginx-1", 1.5, 2),
		metric("logstash-nginx-2", 2.5, 4),
		metric("logstash-nginx-3", 4.0, 6),
	}
	reversed := []model.IndexMetric{forward[2], forward[0], forward[1]}

	a, _ := GroupStreams(forward, m)
	b, _ := GroupStreams(reversed, m)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].Metrics, b[0].Metrics)
	assert.Equal(t, a[0].IndexCount, b[0].IndexCount)
}

func TestGroupStreamsNothingMatches(t *testing.T) {
	m, err := NewPatternMatcher(`^logstash-(.+)-\d+$`)
	require.NoError(t, err)

	groups, unmatched := GroupStreams([]model.IndexMetric{metric("kibana", 1, 1)}, m)
	assert.Empty(t, groups)
	assert.Equal(t, []string{"kibana"}, unmatched)
}

func TestGroupStreamsNoCaptureGroupsOneGroupPerIndex(t *testing.T) {
	m, err := NewPatternMatcher(`^logstash-.*`)
	require.NoError(t, err)

	groups, unmatched := GroupStreams([]model.IndexMetric{
		metric("logstash-a-1", 1, 1),
		metric("logstash-b-1", 1, 1),
	}, m)
	assert.Empty(t, unmatched)
	require.Len(t, groups, 2)
	assert.Equal(t, "logstash-a-1", groups[0].LogName)
	assert.Equal(t, "logstash-b-1", groups[1].LogName)
}
