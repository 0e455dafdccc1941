package snapshot

import "github.com/prometheus/client_golang/prometheus"

// Resultados registrados por operación.
const (
	outcomeOK      = "ok"
	outcomeMissing = "missing"
	outcomeCorrupt = "corrupt"
	outcomeError   = "error"
)

// Metrics contadores Prometheus del store. Un *Metrics nil no registra nada.
type Metrics struct {
	ops   *prometheus.CounterVec
	bytes prometheus.Gauge
}

// NewMetrics registra los colectores en reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recout",
			Subsystem: "snapshot",
			Name:      "operations_total",
			Help:      "Cargas y guardados del snapshot por resultado.",
		}, []string{"op", "outcome"}),
		bytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "recout",
			Subsystem: "snapshot",
			Name:      "size_bytes",
			Help:      "Tamaño del último snapshot guardado.",
		}),
	}
	reg.MustRegister(m.ops, m.bytes)
	return m
}

func (m *Metrics) observe(op, outcome string) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) size(n int) {
	if m == nil {
		return
	}
	m.bytes.Set(float64(n))
}
