// Package metrics records check and fix run statistics. A one-shot CLI has
// nothing to scrape, so the Prometheus recorder exports through the textfile
// collector convention instead of an HTTP endpoint.
package metrics

import "time"

// Recorder defines the observability hooks for check and fix runs.
// Implementations must be safe for nil receivers so injection stays optional.
type Recorder interface {
	IncFilesScanned(n int)
	IncIssue(severity, rule string)
	IncFixApplied(action string)
	ObserveCheckDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) IncFilesScanned(int)                {}
func (NoopRecorder) IncIssue(string, string)            {}
func (NoopRecorder) IncFixApplied(string)               {}
func (NoopRecorder) ObserveCheckDuration(time.Duration) {}
