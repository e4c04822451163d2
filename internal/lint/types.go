// Package lint checks the declarative integrity of a blog source tree:
// frontmatter shape, navigation references, pagination settings, link lists,
// and Markdown structure the renderer would otherwise fail on at build time.
package lint

import (
	"encoding/json"
	"fmt"

	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/metrics"
	"github.com/hwnotes/blogbuilder/internal/site"
)

// Severity indicates the importance level of a check issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues that should be fixed but don't block builds.
	SeverityWarning
	// SeverityError indicates issues that will make the renderer fail or
	// render incorrectly.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON emits the severity name rather than its ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the severity name, so cached and piped results
// round-trip.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "INFO":
		*s = SeverityInfo
	case "WARNING":
		*s = SeverityWarning
	case "ERROR":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// Issue represents a single problem found in the site source.
type Issue struct {
	FilePath string   `json:"file,omitempty"` // empty for site-level issues
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Fix      string   `json:"fix,omitempty"` // suggested fix, if any
	Line     int      `json:"line,omitempty"`
}

// Result contains all issues found during a check run.
type Result struct {
	Issues     []Issue `json:"issues"`
	FilesTotal int     `json:"files_total"`
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.countBySeverity(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.countBySeverity(SeverityWarning) }

func (r *Result) countBySeverity(sev Severity) int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			count++
		}
	}
	return count
}

// PageRule checks a single content page.
type PageRule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check validates a page and returns any issues found.
	Check(page *content.Page) []Issue
}

// SiteRule checks the site model as a whole (config cross-references).
type SiteRule interface {
	Name() string
	Check(s *site.Site) []Issue
}

// Config contains configuration for the checker.
type Config struct {
	// Quiet suppresses warnings and infos, only reporting errors.
	Quiet bool

	// Format specifies output format (text, json).
	Format string

	// CachePath enables the sqlite result cache when non-empty.
	CachePath string

	// Metrics receives run statistics; nil means no recording.
	Metrics metrics.Recorder
}
