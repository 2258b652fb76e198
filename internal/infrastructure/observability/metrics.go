package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry        *prometheus.Registry
	ActiveSessions  prometheus.Gauge
	FramesPublished *prometheus.CounterVec
	FramesServed    prometheus.Counter
	CaptureErrors   prometheus.Counter
	InputEvents     *prometheus.CounterVec
	InputErrors     prometheus.Counter
	Transfers       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()
	m := &Metrics{
		registry: r,
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "webdesk",
			Name:      "active_sessions",
			Help:      "Number of active sharing sessions",
		}),
		FramesPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdesk",
			Name:      "frames_published_total",
			Help:      "Frames published into session buffers by origin",
		}, []string{"origin"}),
		FramesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "webdesk",
			Name:      "frames_served_total",
			Help:      "Frames served to polling viewers",
		}),
		CaptureErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "webdesk",
			Name:      "capture_errors_total",
			Help:      "Screen capture or encode failures",
		}),
		InputEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdesk",
			Name:      "input_events_total",
			Help:      "Input events dispatched by kind",
		}, []string{"kind"}),
		InputErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "webdesk",
			Name:      "input_errors_total",
			Help:      "Input events rejected or failed at injection",
		}),
		Transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webdesk",
			Name:      "transfers_total",
			Help:      "File transfers by direction and terminal status",
		}, []string{"direction", "status"}),
	}
	r.MustRegister(m.ActiveSessions, m.FramesPublished, m.FramesServed, m.CaptureErrors, m.InputEvents, m.InputErrors, m.Transfers)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
