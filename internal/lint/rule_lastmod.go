package lint

import (
	"errors"
	"fmt"
	"time"

	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/gitmeta"
)

// DefaultLastmodTolerance is how far last_modified_at may drift from the
// file's most recent commit before it is flagged. A day absorbs timezone
// and squash-merge noise.
const DefaultLastmodTolerance = 24 * time.Hour

// LastmodDriftRule compares the frontmatter last_modified_at field against
// the file's git history, mirroring what the renderer's last-modified plugin
// would publish.
type LastmodDriftRule struct {
	History   *gitmeta.History
	Tolerance time.Duration
}

func (r *LastmodDriftRule) Name() string { return "lastmod-drift" }

func (r *LastmodDriftRule) Check(page *content.Page) []Issue {
	if r.History == nil || !page.HasLastmod {
		return nil
	}

	_, modified, err := r.History.FileTimes(page.Path)
	if err != nil {
		if errors.Is(err, gitmeta.ErrNoHistory) {
			return nil // not yet committed
		}
		return nil // history unavailable is not the page's fault
	}

	tolerance := r.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultLastmodTolerance
	}

	drift := page.Lastmod.Sub(modified)
	if drift < 0 {
		drift = -drift
	}
	if drift <= tolerance {
		return nil
	}

	return []Issue{{
		FilePath: page.Path,
		Severity: SeverityWarning,
		Rule:     r.Name(),
		Message: fmt.Sprintf("last_modified_at (%s) drifts from the last commit (%s)",
			page.Lastmod.Format("2006-01-02"), modified.Format("2006-01-02")),
		Fix: "run: blogbuilder fix",
	}}
}
