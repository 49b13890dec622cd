package metrics

import (
	"net/http"
	"strconv"

	"Cofrinho/internal/domain/goal"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cofrinho"

// Metrics agrupa os coletores da aplicacao num registry proprio, sem tocar no
// registry global do client_golang.
type Metrics struct {
	Registry          *prometheus.Registry
	StatusTransitions *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
}

var _ goal.TransitionRecorder = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_status_transitions_total",
			Help:      "Status de metas regravados porque o status derivado divergia do armazenado.",
		}, []string{"from", "to"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisicoes HTTP atendidas, por metodo, rota e status.",
		}, []string{"method", "route", "status"}),
	}

	m.Registry.MustRegister(
		m.StatusTransitions,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) RecordTransition(from, to goal.GoalStatus) {
	m.StatusTransitions.WithLabelValues(string(from), string(to)).Inc()
}

// Middleware conta cada requisicao pela rota registrada, nao pelo path bruto,
// para que ids nao explodam a cardinalidade.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
