package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		BackendRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pelada_backend_requests_total",
			Help: "The total number of requests made to the pelada backend.",
		}),
		BackendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pelada_backend_errors_total",
			Help: "The total number of backend requests that failed.",
		}),
		ViewDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pelada_view_duration_seconds",
			Help:    "The duration of building a single gateway view.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pelada_roster_validation_failures_total",
			Help: "The total number of match submissions rejected by local validation.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pelada_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pelada_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pelada_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.BackendRequests,
		s.BackendErrors,
		s.ViewDuration,
		s.ValidationFailures,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncBackendRequests() {
	s.BackendRequests.Inc()
}

func (s *Service) IncBackendErrors() {
	s.BackendErrors.Inc()
}

func (s *Service) ObserveViewDuration(duration float64) {
	s.ViewDuration.Observe(duration)
}

func (s *Service) IncValidationFailures() {
	s.ValidationFailures.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
