// Package metrics exports check results in the Prometheus text format so a
// node_exporter textfile collector can pick them up after a CI run.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"i18ncheck/internal/domain/entities"
)

// Recorder holds the gauges describing one check run.
type Recorder struct {
	registry  *prometheus.Registry
	issues    *prometheus.GaugeVec
	sameRatio *prometheus.GaugeVec
	locales   *prometheus.GaugeVec
}

// NewRecorder returns a Recorder backed by its own Prometheus registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		issues: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "i18n_check_issues",
			Help: "Number of catalog issues found, by namespace and kind.",
		}, []string{"namespace", "kind"}),
		sameRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "i18n_check_same_ratio",
			Help: "Fraction of locale values identical to the base catalog.",
		}, []string{"namespace", "locale"}),
		locales: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "i18n_check_locales",
			Help: "Number of locale catalogs compared against the base catalog.",
		}, []string{"namespace"}),
	}
	r.registry.MustRegister(r.issues, r.sameRatio, r.locales)
	return r
}

// Observe records a report. Same ratios are only exported for locales whose
// key set matched the base catalog.
func (r *Recorder) Observe(report *entities.Report) {
	for _, issue := range report.Issues {
		r.issues.WithLabelValues(issue.Namespace, string(issue.Kind)).Inc()
	}
	for _, res := range report.Results {
		r.locales.WithLabelValues(res.Namespace).Inc()
		if res.KeysMatch {
			r.sameRatio.WithLabelValues(res.Namespace, res.Locale).Set(res.Ratio())
		}
	}
}

// WriteTextfile atomically writes the gathered metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
