// Package site materializes the derived content model: the full page set,
// post ordering, category and tag indexes, navigation, and the pagination
// plan. Everything here is computed from declarative inputs; nothing is
// mutated after Load returns.
package site

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hwnotes/blogbuilder/internal/config"
	"github.com/hwnotes/blogbuilder/internal/content"
	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
	"github.com/hwnotes/blogbuilder/internal/logfields"
)

// Site is the loaded, immutable content model.
type Site struct {
	Root   string
	Config *config.SiteConfig

	Pages []*content.Page // every document, posts included, path-sorted
	Posts []*content.Page // publish date descending, path ascending on ties
}

// Load walks the site root and parses every content document that survives
// include/exclude filtering.
func Load(root string, cfg *config.SiteConfig) (*Site, error) {
	s := &Site{Root: root, Config: cfg}
	filter := newPathFilter(cfg)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if filter.skipDir(rel, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if !content.IsContentFile(d.Name()) {
			return nil
		}
		if filter.skipFile(rel, d.Name()) {
			return nil
		}

		page, pageErr := content.LoadPage(rel, path)
		if pageErr != nil {
			return pageErr
		}
		s.Pages = append(s.Pages, page)
		return nil
	})
	if err != nil {
		if _, ok := err.(*bberrors.BlogBuilderError); ok {
			return nil, err
		}
		return nil, bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal, "content walk failed").
			WithContext("root", root)
	}

	sort.Slice(s.Pages, func(i, j int) bool { return s.Pages[i].Path < s.Pages[j].Path })

	for _, p := range s.Pages {
		if p.IsPost {
			s.Posts = append(s.Posts, p)
		}
	}
	sortPostsByDateDesc(s.Posts)

	slog.Debug("Site loaded", logfields.Pages(len(s.Pages)), logfields.Posts(len(s.Posts)))
	return s, nil
}

// sortPostsByDateDesc orders posts newest first. Ties break on path so
// listings are deterministic across runs and platforms.
func sortPostsByDateDesc(posts []*content.Page) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Path < b.Path
	})
}

// PageByPath finds a page by its site-root relative path.
func (s *Site) PageByPath(rel string) *content.Page {
	rel = filepath.ToSlash(rel)
	for _, p := range s.Pages {
		if p.Path == rel {
			return p
		}
	}
	return nil
}

// pathFilter applies the configured include/exclude lists plus the built-in
// conventions: hidden entries and underscore directories (except _posts and
// anything explicitly re-included) never enter the content set.
type pathFilter struct {
	include []string
	exclude []string
}

func newPathFilter(cfg *config.SiteConfig) *pathFilter {
	f := &pathFilter{}
	if cfg != nil {
		f.include = cfg.Include
		f.exclude = cfg.Exclude
	}
	return f
}

func (f *pathFilter) skipDir(rel, name string) bool {
	if f.included(rel) {
		return false
	}
	if f.excluded(rel) {
		return true
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	if strings.HasPrefix(name, "_") && name != "_posts" {
		return true
	}
	return false
}

func (f *pathFilter) skipFile(rel, name string) bool {
	if f.included(rel) {
		return false
	}
	if f.excluded(rel) {
		return true
	}
	return strings.HasPrefix(name, ".")
}

// included reports whether rel (or an ancestor) appears in the include list.
// Include wins over exclude, matching renderer semantics.
func (f *pathFilter) included(rel string) bool {
	return matchesAny(f.include, rel)
}

func (f *pathFilter) excluded(rel string) bool {
	return matchesAny(f.exclude, rel)
}

func matchesAny(patterns []string, rel string) bool {
	for _, pat := range patterns {
		pat = strings.Trim(filepath.ToSlash(pat), "/")
		if pat == "" {
			continue
		}
		if pat == rel || strings.HasPrefix(rel, pat+"/") {
			return true
		}
		if ok, err := filepath.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}
