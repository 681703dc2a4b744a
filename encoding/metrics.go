package encoding

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments the codec's hot path: how many packets of each
// control type cross the wire, and how their remaining_length is
// distributed. Wire one into a Parser through its Metrics field; a nil
// *Metrics is always safe to call into (every method is a no-op on nil).
type Metrics struct {
	packetsTotal    *prometheus.CounterVec
	remainingLength *prometheus.HistogramVec
}

// NewMetrics builds a Metrics instance and registers it with reg. Pass a
// dedicated *prometheus.Registry (not the global DefaultRegisterer) when
// more than one codec instance shares a process.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		packetsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mqtt",
			Subsystem: "codec",
			Name:      "packets_total",
			Help:      "Packets encoded or decoded by control type.",
		}, []string{"direction", "type"}),
		remainingLength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mqtt",
			Subsystem: "codec",
			Name:      "remaining_length_bytes",
			Help:      "Distribution of decoded remaining_length values.",
			Buckets:   prometheus.ExponentialBuckets(2, 4, 10),
		}, []string{"type"}),
	}
	if reg != nil {
		reg.MustRegister(m.packetsTotal, m.remainingLength)
	}
	return m
}

func (m *Metrics) observeDecode(fh FixedHeader) {
	if m == nil {
		return
	}
	m.packetsTotal.WithLabelValues("decode", fh.Type.String()).Inc()
	m.remainingLength.WithLabelValues(fh.Type.String()).Observe(float64(fh.RemainingLength))
}

func (m *Metrics) observeEncode(fh FixedHeader) {
	if m == nil {
		return
	}
	m.packetsTotal.WithLabelValues("encode", fh.Type.String()).Inc()
}
