package lint

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/gitmeta"
	"github.com/hwnotes/blogbuilder/internal/lintcache"
	"github.com/hwnotes/blogbuilder/internal/logfields"
	"github.com/hwnotes/blogbuilder/internal/metrics"
	"github.com/hwnotes/blogbuilder/internal/site"
)

// Checker runs site and page rules over a loaded site model.
type Checker struct {
	cfg       *Config
	pageRules []PageRule
	siteRules []SiteRule
	cache     *lintcache.Cache

	// uncachedRules depend on state outside the page bytes (git history),
	// so their verdicts never enter the result cache.
	uncachedRules []PageRule
}

// NewChecker creates a checker with the default rule set.
func NewChecker(cfg *Config) *Checker {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NoopRecorder{}
	}
	c := &Checker{
		cfg:       cfg,
		pageRules: defaultPageRules(),
		siteRules: defaultSiteRules(),
	}
	if cfg.CachePath != "" {
		cache, err := lintcache.Open(cfg.CachePath)
		if err != nil {
			// The cache is an accelerator, never a correctness dependency.
			slog.Warn("Check cache unavailable, proceeding without it",
				logfields.Path(cfg.CachePath), logfields.Error(err))
		} else {
			c.cache = cache
		}
	}
	return c
}

// WithGitHistory enables git-derived rules (lastmod drift) for repositories
// under version control.
func (c *Checker) WithGitHistory(history *gitmeta.History) *Checker {
	if history != nil {
		c.uncachedRules = append(c.uncachedRules, &LastmodDriftRule{History: history})
	}
	return c
}

// Close releases the result cache, if any.
func (c *Checker) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}

// Run checks the whole site: site-level rules first, then every page.
func (c *Checker) Run(s *site.Site) (*Result, error) {
	started := time.Now()
	result := &Result{Issues: []Issue{}}

	for _, rule := range c.siteRules {
		c.appendFiltered(result, rule.Check(s))
	}

	keep := make(map[string]bool, len(s.Pages))
	for _, page := range s.Pages {
		keep[page.Path] = true
		result.FilesTotal++
		c.checkPage(result, page)
	}

	if c.cache != nil {
		if err := c.cache.Prune(keep); err != nil {
			slog.Warn("Check cache prune failed", logfields.Error(err))
		}
	}

	c.cfg.Metrics.IncFilesScanned(result.FilesTotal)
	for _, issue := range result.Issues {
		c.cfg.Metrics.IncIssue(issue.Severity.String(), issue.Rule)
	}
	c.cfg.Metrics.ObserveCheckDuration(time.Since(started))

	slog.Debug("Check run finished",
		logfields.Pages(result.FilesTotal),
		logfields.Issues(len(result.Issues)),
		logfields.DurationMS(float64(time.Since(started).Microseconds())/1000.0))

	return result, nil
}

func (c *Checker) checkPage(result *Result, page *content.Page) {
	hash := pageHash(page)
	replayed := false

	if c.cache != nil {
		var cached []Issue
		if hit, err := c.cache.Get(page.Path, hash, &cached); err == nil && hit {
			c.appendFiltered(result, cached)
			replayed = true
		}
	}

	if !replayed {
		var issues []Issue
		for _, rule := range c.pageRules {
			issues = append(issues, rule.Check(page)...)
		}

		if c.cache != nil {
			if err := c.cache.Put(page.Path, hash, issues); err != nil {
				slog.Warn("Check cache write failed", logfields.File(page.Path), logfields.Error(err))
			}
		}

		c.appendFiltered(result, issues)
	}

	// Git-derived verdicts can change without the page bytes changing,
	// so these run fresh on every pass, cache hit or not.
	for _, rule := range c.uncachedRules {
		c.appendFiltered(result, rule.Check(page))
	}
}

// appendFiltered applies quiet-mode filtering at collection time.
func (c *Checker) appendFiltered(result *Result, issues []Issue) {
	for _, issue := range issues {
		if c.cfg.Quiet && issue.Severity != SeverityError {
			continue
		}
		result.Issues = append(result.Issues, issue)
	}
}

// pageHash fingerprints a page's raw frontmatter and body. Cached results
// are only valid while this hash is unchanged.
func pageHash(page *content.Page) string {
	h := sha256.New()
	h.Write(page.Doc.Raw)
	h.Write([]byte{0})
	h.Write(page.Doc.Body)
	return hex.EncodeToString(h.Sum(nil))
}
