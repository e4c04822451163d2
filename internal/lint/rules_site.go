package lint

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hwnotes/blogbuilder/internal/config"
	"github.com/hwnotes/blogbuilder/internal/site"
)

// defaultSiteRules returns the site-level rule set in reporting order.
func defaultSiteRules() []SiteRule {
	return []SiteRule{
		&NavigationRule{},
		&PaginationRule{},
		&LinkListsRule{},
		&PluginsRule{},
	}
}

// NavigationRule requires every header_pages entry to resolve to a page in
// the content set.
type NavigationRule struct{}

func (r *NavigationRule) Name() string { return "nav-reference" }

func (r *NavigationRule) Check(s *site.Site) []Issue {
	_, missing := s.Navigation()
	var issues []Issue
	for _, ref := range missing {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("header_pages entry '%s' does not exist in the content set", ref),
			Fix:      "create the page or remove the entry",
		})
	}
	return issues
}

// PaginationRule validates the paginate/paginate_path pair.
type PaginationRule struct{}

func (r *PaginationRule) Name() string { return "pagination" }

func (r *PaginationRule) Check(s *site.Site) []Issue {
	cfg := s.Config
	var issues []Issue
	// An explicit zero fails the renderer build just like a negative value;
	// only the absent key means "pagination disabled".
	if cfg.Paginate != nil && *cfg.Paginate <= 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("paginate must be a positive integer, got %d", *cfg.Paginate),
			Fix:      "set paginate to a positive count or remove it",
		})
	}
	if cfg.PaginateSize() > 0 && !strings.Contains(cfg.PaginatePath, ":num") {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("paginate_path '%s' lacks the ':num' placeholder", cfg.PaginatePath),
			Fix:      "use a pattern like /page:num/",
		})
	}
	return issues
}

// LinkListsRule validates the footer and author link lists: labels present,
// URLs well-formed and absolute.
type LinkListsRule struct{}

func (r *LinkListsRule) Name() string { return "link-lists" }

func (r *LinkListsRule) Check(s *site.Site) []Issue {
	var issues []Issue
	issues = append(issues, r.checkList("footer.links", s.Config.Footer.Links)...)
	issues = append(issues, r.checkList("author.links", s.Config.Author.Links)...)
	return issues
}

func (r *LinkListsRule) checkList(field string, links []config.Link) []Issue {
	var issues []Issue
	for i, link := range links {
		where := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(link.Label) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  where + ": label is empty",
			})
		}
		if reason, bad := malformedProfileURL(link.URL); bad {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("%s: url '%s': %s", where, link.URL, reason),
			})
		}
	}
	return issues
}

// malformedProfileURL is stricter than body link checking: profile and
// footer links are rendered verbatim into anchors, so they must be absolute
// http(s) or mailto URLs.
func malformedProfileURL(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "url is empty", true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("unparseable: %v", err), true
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return "missing host", true
		}
		return "", false
	case "mailto":
		if u.Opaque == "" {
			return "mailto without address", true
		}
		return "", false
	default:
		return fmt.Sprintf("unsupported scheme '%s'", u.Scheme), true
	}
}

// PluginsRule flags plugin names outside the known renderer ecosystem.
// Advisory: a typo here means the renderer silently skips the feature.
type PluginsRule struct {
	Known map[string]bool
}

func (r *PluginsRule) Name() string { return "plugins-known" }

func (r *PluginsRule) Check(s *site.Site) []Issue {
	known := r.Known
	if known == nil {
		known = config.KnownPlugins
	}
	var issues []Issue
	for _, p := range s.Config.Plugins {
		if known[p] {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("plugin '%s' is not in the known plugin set", p),
			Fix:      "check the plugin name for typos",
		})
	}
	return issues
}
