package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry собственный, чтобы не тащить глобальные метрики чужих библиотек.
var registry = prometheus.NewRegistry()

var (
	RoundsPaired = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "tabledraw",
		Name:      "rounds_paired_total",
		Help:      "Rounds paired since start, labelled by pairing policy.",
	}, []string{"policy"})

	RoundsVoided = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "tabledraw",
		Name:      "rounds_voided_total",
		Help:      "Paired rounds rolled back before any score was recorded.",
	})

	ScoresRecorded = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "tabledraw",
		Name:      "scores_recorded_total",
		Help:      "Match results recorded, amendments included.",
	})

	SimulationsRun = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "tabledraw",
		Name:      "simulations_run_total",
		Help:      "What-if standings simulations served.",
	})

	WebSocketClients = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "tabledraw",
		Name:      "websocket_clients",
		Help:      "Currently connected WebSocket clients across all rooms.",
	})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler отдаёт /metrics для Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
