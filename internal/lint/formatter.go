package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Formatter formats check results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, root string) error
}

// NewFormatter selects a formatter by name; unknown names fall back to text.
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs results grouped per file, site-level issues first.
func (f *TextFormatter) Format(w io.Writer, result *Result, root string) error {
	if _, err := fmt.Fprintf(w, "Checking site in: %s\n", root); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}

	for _, issue := range sortedIssues(result.Issues) {
		if err := f.formatIssue(w, issue); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Results:\n  %d files scanned\n", result.FilesTotal); err != nil {
		return err
	}

	if n := result.ErrorCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d error%s (renderer build would fail)\n", n, pluralize(n)); err != nil {
			return err
		}
	}
	if n := result.WarningCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d warning%s (should fix)\n", n, pluralize(n)); err != nil {
			return err
		}
	}

	return f.printFinalMessage(w, result)
}

func (f *TextFormatter) formatIssue(w io.Writer, issue Issue) error {
	icon := "ℹ"
	switch issue.Severity {
	case SeverityError:
		icon = "✗"
	case SeverityWarning:
		icon = "⚠"
	}

	location := issue.FilePath
	if location == "" {
		location = "(site)"
	}
	if issue.Line > 0 {
		location = fmt.Sprintf("%s:%d", location, issue.Line)
	}

	if _, err := fmt.Fprintf(w, "%s %s [%s] %s\n", icon, location, issue.Rule, issue.Message); err != nil {
		return err
	}
	if issue.Fix != "" {
		if _, err := fmt.Fprintf(w, "    fix: %s\n", issue.Fix); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) printFinalMessage(w io.Writer, result *Result) error {
	switch {
	case result.HasErrors():
		_, err := fmt.Fprintln(w, "❌ Site has errors that would break the renderer build.")
		return err
	case result.HasWarnings():
		_, err := fmt.Fprintln(w, "⚠️  Site has warnings. Consider fixing before publishing.")
		return err
	default:
		_, err := fmt.Fprintln(w, "✨ Site passes all checks.")
		return err
	}
}

// JSONFormatter emits the full result as JSON for CI consumption.
type JSONFormatter struct{}

// Format encodes the result; issues are sorted for stable output.
func (f *JSONFormatter) Format(w io.Writer, result *Result, root string) error {
	out := struct {
		Root string `json:"root"`
		*Result
	}{Root: root, Result: &Result{
		Issues:     sortedIssues(result.Issues),
		FilesTotal: result.FilesTotal,
	}}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// sortedIssues orders issues site-level first, then by file, line, and rule.
func sortedIssues(issues []Issue) []Issue {
	out := make([]Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Rule < b.Rule
	})
	return out
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
