package site

import (
	"fmt"
	"sort"

	"github.com/hwnotes/blogbuilder/internal/content"
)

// NavEntry is a resolved header navigation entry.
type NavEntry struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Page  string `json:"page"` // site-root relative source path
}

// Navigation resolves header_pages against the content set. Unresolvable
// entries are returned separately so callers can surface them as check
// failures rather than aborting the whole derivation.
func (s *Site) Navigation() (entries []NavEntry, missing []string) {
	for _, ref := range s.Config.HeaderPages {
		page := s.resolvePageRef(ref)
		if page == nil {
			missing = append(missing, ref)
			continue
		}
		label := page.Title
		if label == "" {
			label = page.Slug()
		}
		entries = append(entries, NavEntry{Label: label, URL: page.Permalink(), Page: page.Path})
	}
	return entries, missing
}

// resolvePageRef matches a header_pages entry: exact relative path first,
// then basename (the renderer finds pages regardless of their directory).
func (s *Site) resolvePageRef(ref string) *content.Page {
	if p := s.PageByPath(ref); p != nil {
		return p
	}
	for _, p := range s.Pages {
		if pathBase(p.Path) == ref {
			return p
		}
	}
	return nil
}

func pathBase(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}

// Categories returns category name -> posts, each list ordered like Posts.
func (s *Site) Categories() map[string][]*content.Page {
	return s.groupPosts(func(p *content.Page) []string { return p.Categories })
}

// Tags returns tag name -> posts, each list ordered like Posts.
func (s *Site) Tags() map[string][]*content.Page {
	return s.groupPosts(func(p *content.Page) []string { return p.Tags })
}

func (s *Site) groupPosts(keys func(*content.Page) []string) map[string][]*content.Page {
	out := make(map[string][]*content.Page)
	for _, p := range s.Posts {
		for _, k := range keys(p) {
			out[k] = append(out[k], p)
		}
	}
	return out
}

// SortedKeys returns map keys in lexical order; listing output must be
// deterministic.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summary is the one-line description used by logs and the stats command.
func (s *Site) Summary() string {
	return fmt.Sprintf("%d pages (%d posts), %d categories, %d tags",
		len(s.Pages), len(s.Posts), len(s.Categories()), len(s.Tags()))
}
