package editor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics инкапсулирует Prometheus-метрики редактора
type Metrics struct {
	raycasts prometheus.Counter
	hits     prometheus.Counter
	actions  *prometheus.CounterVec
	blocks   prometheus.Gauge
}

// NewMetrics создаёт метрики и регистрирует их в reg.
// nil означает глобальный регистр Prometheus.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		raycasts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tinycraft",
			Subsystem: "editor",
			Name:      "raycasts_total",
			Help:      "Число трассировок луча по событиям редактирования.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tinycraft",
			Subsystem: "editor",
			Name:      "raycast_hits_total",
			Help:      "Трассировки, попавшие в блок.",
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tinycraft",
			Subsystem: "editor",
			Name:      "actions_total",
			Help:      "Действия редактора по типу и результату.",
		}, []string{"action", "outcome"}),
		blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tinycraft",
			Subsystem: "world",
			Name:      "blocks",
			Help:      "Текущее количество блоков в мире.",
		}),
	}

	reg.MustRegister(m.raycasts, m.hits, m.actions, m.blocks)
	return m
}

func (m *Metrics) observeRaycast(found bool) {
	if m == nil {
		return
	}
	m.raycasts.Inc()
	if found {
		m.hits.Inc()
	}
}

func (m *Metrics) observeAction(kind ActionKind, outcome Outcome, blocks int) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(kind.String(), outcome.String()).Inc()
	m.blocks.Set(float64(blocks))
}
