package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRule       = "rule"
	KeySeverity   = "severity"
	KeyLayout     = "layout"
	KeyCategory   = "category"
	KeyTag        = "tag"
	KeyPosts      = "posts"
	KeyPages      = "pages"
	KeyIssues     = "issues"
	KeyDurationMS = "duration_ms"
	KeyURL        = "url"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Rule(r string) slog.Attr          { return slog.String(KeyRule, r) }
func Severity(s string) slog.Attr      { return slog.String(KeySeverity, s) }
func Layout(l string) slog.Attr        { return slog.String(KeyLayout, l) }
func Category(c string) slog.Attr      { return slog.String(KeyCategory, c) }
func Tag(tg string) slog.Attr          { return slog.String(KeyTag, tg) }
func Posts(n int) slog.Attr            { return slog.Int(KeyPosts, n) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func Issues(n int) slog.Attr           { return slog.Int(KeyIssues, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
