package lint

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/markdown"
)

// defaultPageRules returns the page-level rule set in reporting order.
func defaultPageRules() []PageRule {
	return []PageRule{
		&FrontmatterRequiredRule{},
		&LayoutKnownRule{},
		&PostDateRule{},
		&PostFilenameRule{},
		&FenceBalanceRule{},
		&BodyLinkRule{},
		&UIDRule{},
	}
}

// FrontmatterRequiredRule enforces the required frontmatter fields: every
// document needs a non-empty layout and title.
type FrontmatterRequiredRule struct{}

func (r *FrontmatterRequiredRule) Name() string { return "frontmatter-required" }

func (r *FrontmatterRequiredRule) Check(page *content.Page) []Issue {
	var issues []Issue
	if !page.Doc.Present {
		issues = append(issues, Issue{
			FilePath: page.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "missing frontmatter block",
			Fix:      "add a `---` delimited frontmatter block with layout and title",
		})
		return issues
	}
	if strings.TrimSpace(page.Layout) == "" {
		issues = append(issues, Issue{
			FilePath: page.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "frontmatter field 'layout' is missing or empty",
			Fix:      "set layout to one the theme provides (e.g. single)",
		})
	}
	if strings.TrimSpace(page.Title) == "" {
		issues = append(issues, Issue{
			FilePath: page.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "frontmatter field 'title' is missing or empty",
			Fix:      "set a non-empty title",
		})
	}
	return issues
}

// LayoutKnownRule flags layout names the theme does not provide. The
// renderer surfaces these as build failures, so they are errors here.
type LayoutKnownRule struct {
	// Known overrides the default layout set when non-nil.
	Known map[string]bool
}

func (r *LayoutKnownRule) Name() string { return "layout-known" }

func (r *LayoutKnownRule) Check(page *content.Page) []Issue {
	layout := strings.TrimSpace(page.Layout)
	if layout == "" {
		return nil // frontmatter-required already covers this
	}
	known := r.Known
	if known == nil {
		known = content.KnownLayouts
	}
	if known[layout] {
		return nil
	}
	return []Issue{{
		FilePath: page.Path,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("layout '%s' is not provided by the theme", layout),
		Fix:      "use one of the theme layouts (home, single, splash, archive, ...)",
	}}
}

// PostDateRule requires posts to carry a resolvable publish date and flags
// disagreement between the frontmatter date and the filename prefix.
type PostDateRule struct{}

func (r *PostDateRule) Name() string { return "post-date" }

func (r *PostDateRule) Check(page *content.Page) []Issue {
	if !page.IsPost {
		return nil
	}
	if !page.HasDate {
		return []Issue{{
			FilePath: page.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "post has no publish date (no frontmatter date, no filename date prefix)",
			Fix:      "rename to YYYY-MM-DD-slug.md or add a date field",
		}}
	}
	if !page.FilenameDateMatchesFrontmatter() {
		return []Issue{{
			FilePath: page.Path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  "frontmatter date disagrees with the filename date prefix",
			Fix:      "align the date field with the filename (listing order follows the date field)",
		}}
	}
	return nil
}

var postNameRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[a-z0-9][a-z0-9-]*\.(md|markdown)$`)

// PostFilenameRule enforces the renderer's post naming convention:
// date prefix plus lowercase kebab slug.
type PostFilenameRule struct{}

func (r *PostFilenameRule) Name() string { return "post-filename" }

func (r *PostFilenameRule) Check(page *content.Page) []Issue {
	if !page.IsPost {
		return nil
	}
	name := path.Base(page.Path)
	if postNameRe.MatchString(name) {
		return nil
	}
	suggested := suggestPostName(name, page)
	return []Issue{{
		FilePath: page.Path,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  fmt.Sprintf("post filename '%s' does not match YYYY-MM-DD-slug.md", name),
		Fix:      "rename to " + suggested,
	}}
}

func suggestPostName(name string, page *content.Page) string {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	datePrefix := ""
	if m := regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-?`).FindStringSubmatch(stem); m != nil {
		datePrefix = m[1]
		stem = strings.TrimPrefix(stem, m[0])
	} else if page.HasDate {
		datePrefix = page.Date.Format("2006-01-02")
	} else {
		datePrefix = "YYYY-MM-DD"
	}
	slug := content.Slugify(stem)
	if slug == "" {
		slug = "post"
	}
	if ext == "" {
		ext = ".md"
	}
	return datePrefix + "-" + slug + ext
}

// FenceBalanceRule flags fenced code blocks left unterminated. The renderer
// swallows the rest of the document into the block, so this is an error.
type FenceBalanceRule struct{}

func (r *FenceBalanceRule) Name() string { return "fence-balance" }

func (r *FenceBalanceRule) Check(page *content.Page) []Issue {
	var issues []Issue
	for _, fence := range markdown.UnclosedFences(page.Doc.Body) {
		msg := "fenced code block is never closed"
		if fence.Info != "" {
			msg = fmt.Sprintf("fenced code block (%s) is never closed", fence.Info)
		}
		issues = append(issues, Issue{
			FilePath: page.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  msg,
			Fix:      fmt.Sprintf("add a closing %s delimiter", strings.Repeat(fence.Delim, fence.DelimLen)),
			Line:     fence.Line,
		})
	}
	return issues
}

// BodyLinkRule checks link destinations in the Markdown body, including
// raw HTML fragments. Absolute URLs must parse with a scheme and host;
// destinations with embedded whitespace break the renderer's link output.
type BodyLinkRule struct{}

func (r *BodyLinkRule) Name() string { return "body-links" }

func (r *BodyLinkRule) Check(page *content.Page) []Issue {
	links, err := markdown.ExtractLinks(page.Doc.Body)
	if err != nil {
		return []Issue{{
			FilePath: page.Path,
			Severity: SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("markdown parse failed: %v", err),
		}}
	}

	var issues []Issue
	for _, link := range links {
		dest := link.Destination
		if dest == "" {
			issues = append(issues, Issue{
				FilePath: page.Path,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("empty %s link destination", link.Kind),
			})
			continue
		}
		if reason, bad := malformedURL(dest); bad {
			issues = append(issues, Issue{
				FilePath: page.Path,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("%s link '%s': %s", link.Kind, dest, reason),
			})
		}
	}
	return issues
}

// malformedURL reports why a link destination is unusable, if it is.
// Relative paths and fragments are fine; only structural problems count.
func malformedURL(dest string) (string, bool) {
	if strings.ContainsAny(dest, " \t") {
		return "destination contains whitespace", true
	}
	if !strings.Contains(dest, "://") {
		return "", false
	}
	u, err := url.Parse(dest)
	if err != nil {
		return fmt.Sprintf("unparseable URL: %v", err), true
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "mailto" && u.Scheme != "ftp" {
		return fmt.Sprintf("unsupported scheme '%s'", u.Scheme), true
	}
	if u.Host == "" {
		return "absolute URL without host", true
	}
	return "", false
}

// UIDRule nudges documents toward carrying a stable uid, which keeps
// permalink aliases working across renames. Advisory only.
type UIDRule struct{}

func (r *UIDRule) Name() string { return "frontmatter-uid" }

func (r *UIDRule) Check(page *content.Page) []Issue {
	if !page.Doc.Present || strings.TrimSpace(page.UID) != "" {
		return nil
	}
	return []Issue{{
		FilePath: page.Path,
		Severity: SeverityWarning,
		Rule:     r.Name(),
		Message:  "frontmatter has no uid",
		Fix:      "run: blogbuilder fix",
	}}
}
