package lint

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hwnotes/blogbuilder/internal/content"
	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
	"github.com/hwnotes/blogbuilder/internal/gitmeta"
	"github.com/hwnotes/blogbuilder/internal/logfields"
	"github.com/hwnotes/blogbuilder/internal/metrics"
	"github.com/hwnotes/blogbuilder/internal/site"
)

// Fixer applies the safe, mechanical frontmatter repairs: adding a stable
// uid and refreshing a stale last_modified_at from git history. Anything
// needing editorial judgment stays a check issue.
type Fixer struct {
	Root      string
	History   *gitmeta.History // nil disables lastmod refresh
	DryRun    bool
	Tolerance time.Duration
	Metrics   metrics.Recorder // nil means no recording
}

// FileFix records the actions applied (or planned, under dry-run) to a file.
type FileFix struct {
	Path    string   `json:"path"`
	Actions []string `json:"actions"`
}

// FixResult summarizes a fix run.
type FixResult struct {
	Changed   []FileFix `json:"changed"`
	Unchanged int       `json:"unchanged"`
}

// Fix walks every page and rewrites the ones needing repair. Only the
// frontmatter block is rewritten; bodies pass through untouched.
func (f *Fixer) Fix(s *site.Site) (*FixResult, error) {
	result := &FixResult{}
	rec := f.Metrics
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	for _, page := range s.Pages {
		actions := f.planActions(page)
		if len(actions) == 0 {
			result.Unchanged++
			continue
		}

		result.Changed = append(result.Changed, FileFix{Path: page.Path, Actions: actions})
		if f.DryRun {
			continue
		}

		out, err := page.Doc.Encode()
		if err != nil {
			return nil, bberrors.InternalError("frontmatter re-encode failed", err).
				WithContext("path", page.Path)
		}
		abs := filepath.Join(f.Root, filepath.FromSlash(page.Path))
		if err := os.WriteFile(abs, out, 0o644); err != nil {
			return nil, bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "fix write failed").
				WithContext("path", page.Path)
		}
		for _, action := range actions {
			rec.IncFixApplied(action)
		}
		slog.Info("Fixed", logfields.File(page.Path), slog.Any("actions", actions))
	}

	return result, nil
}

// planActions mutates page.Doc.Fields in place and returns what changed.
func (f *Fixer) planActions(page *content.Page) []string {
	if !page.Doc.Present {
		return nil // nothing safe to do without a frontmatter block
	}

	var actions []string

	if strings.TrimSpace(page.UID) == "" {
		page.Doc.Fields["uid"] = uuid.NewString()
		actions = append(actions, "add uid")
	}

	if action := f.refreshLastmod(page); action != "" {
		actions = append(actions, action)
	}

	return actions
}

func (f *Fixer) refreshLastmod(page *content.Page) string {
	if f.History == nil || !page.HasLastmod {
		return ""
	}

	_, modified, err := f.History.FileTimes(page.Path)
	if err != nil {
		if !errors.Is(err, gitmeta.ErrNoHistory) {
			slog.Debug("Skipping lastmod refresh", logfields.File(page.Path), logfields.Error(err))
		}
		return ""
	}

	tolerance := f.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultLastmodTolerance
	}

	drift := page.Lastmod.Sub(modified)
	if drift < 0 {
		drift = -drift
	}
	if drift <= tolerance {
		return ""
	}

	page.Doc.Fields["last_modified_at"] = modified.Format("2006-01-02")
	return "refresh last_modified_at"
}
