package encoding

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axmq/mqtt311/pkg/logger"
)

func TestParser_ZeroValueBehavesLikeBareCodec(t *testing.T) {
	var p Parser
	vp := NewVariablePacket(NewPingreqPacket())

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf, vp))

	decoded, err := p.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, PINGREQ, decoded.Type)
}

func TestParser_WithMetricsAndLogger(t *testing.T) {
	reg := prometheus.NewRegistry()
	var logBuf bytes.Buffer
	p := Parser{
		Metrics: NewMetrics(reg),
		Logger:  logger.NewSlogLogger(slog.LevelDebug, &logBuf),
	}

	vp := NewVariablePacket(NewConnectPacket("MQTT", "abc"))
	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf, vp))

	_, err := p.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, metricFamilies)
	assert.Contains(t, logBuf.String(), "mqtt packet decoded")
}

func TestParser_LogsWarnOnMalformedPacket(t *testing.T) {
	var logBuf bytes.Buffer
	p := Parser{Logger: logger.NewSlogLogger(slog.LevelDebug, &logBuf)}

	_, err := p.Decode(bytes.NewReader([]byte{0x00, 0x02, 0xAA, 0xBB}))
	assert.Error(t, err)
	assert.Contains(t, logBuf.String(), "mqtt decode failed")
}
