package encoding

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeDecode(FixedHeader{Type: CONNECT})
		m.observeEncode(FixedHeader{Type: CONNECT})
	})
}

func TestMetrics_RecordsByControlType(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.observeDecode(FixedHeader{Type: PUBLISH, RemainingLength: 42})
	m.observeEncode(FixedHeader{Type: PUBLISH, RemainingLength: 42})

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawCounter, sawHistogram bool
	for _, f := range families {
		switch f.GetName() {
		case "mqtt_codec_packets_total":
			sawCounter = true
		case "mqtt_codec_remaining_length_bytes":
			sawHistogram = true
		}
	}
	assert.True(t, sawCounter)
	assert.True(t, sawHistogram)
}
