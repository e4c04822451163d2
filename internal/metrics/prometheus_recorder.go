package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	registry      *prom.Registry
	filesScanned  prom.Counter
	issues        *prom.CounterVec
	fixesApplied  *prom.CounterVec
	checkDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.once.Do(func() {
		pr.filesScanned = prom.NewCounter(prom.CounterOpts{
			Namespace: "blogbuilder",
			Name:      "files_scanned_total",
			Help:      "Content files scanned across check runs",
		})
		pr.issues = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogbuilder",
			Name:      "issues_total",
			Help:      "Check issues by severity and rule",
		}, []string{"severity", "rule"})
		pr.fixesApplied = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogbuilder",
			Name:      "fixes_applied_total",
			Help:      "Frontmatter fixes by action",
		}, []string{"action"})
		pr.checkDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "blogbuilder",
			Name:      "check_duration_seconds",
			Help:      "Duration of full check runs",
			Buckets:   prom.DefBuckets,
		})
		reg.MustRegister(pr.filesScanned, pr.issues, pr.fixesApplied, pr.checkDuration)
	})
	return pr
}

// Registry exposes the backing registry for export.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.registry
}

func (p *PrometheusRecorder) IncFilesScanned(n int) {
	if p == nil || p.filesScanned == nil {
		return
	}
	p.filesScanned.Add(float64(n))
}

func (p *PrometheusRecorder) IncIssue(severity, rule string) {
	if p == nil || p.issues == nil {
		return
	}
	p.issues.WithLabelValues(severity, rule).Inc()
}

func (p *PrometheusRecorder) IncFixApplied(action string) {
	if p == nil || p.fixesApplied == nil {
		return
	}
	p.fixesApplied.WithLabelValues(action).Inc()
}

func (p *PrometheusRecorder) ObserveCheckDuration(d time.Duration) {
	if p == nil || p.checkDuration == nil {
		return
	}
	p.checkDuration.Observe(d.Seconds())
}
