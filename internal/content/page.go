// Package content models a single content document: YAML frontmatter plus a
// Markdown body. Pages are read at tool run time and never mutated except by
// the explicit fix workflow.
package content

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
	"github.com/hwnotes/blogbuilder/internal/frontmatter"
)

// KnownLayouts is the set of layout names the renderer theme ships with.
// A layout outside this set is a build-time failure surfaced by the renderer,
// so referencing one is flagged before the build ever runs.
var KnownLayouts = map[string]bool{
	"home":       true,
	"single":     true,
	"splash":     true,
	"archive":    true,
	"posts":      true,
	"categories": true,
	"category":   true,
	"tags":       true,
	"tag":        true,
	"search":     true,
}

// postNameRe matches the renderer's required post filename shape:
// YYYY-MM-DD-slug.md (or .markdown).
var postNameRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(.+)\.(md|markdown)$`)

// Page is one content document with its interpreted frontmatter fields.
//
// Doc retains the full decoded document (body plus every frontmatter key,
// interpreted or not) so rewrites never lose renderer-owned metadata.
type Page struct {
	Path   string // site-root relative, slash separated
	IsPost bool   // lives under _posts/

	Layout        string
	Title         string
	Date          time.Time
	HasDate       bool
	Categories    []string
	Tags          []string
	AuthorProfile bool
	UID           string
	Lastmod       time.Time
	HasLastmod    bool

	Doc *frontmatter.Document
}

// LoadPage reads and parses a content file. relPath is the slash-separated
// path relative to the site root; absPath is where to read it from.
func LoadPage(relPath, absPath string) (*Page, error) {
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, bberrors.ContentUnreadable(relPath, err)
	}
	return ParsePage(relPath, data)
}

// ParsePage parses raw file content into a Page.
func ParsePage(relPath string, data []byte) (*Page, error) {
	doc, err := frontmatter.Decode(data)
	if err != nil {
		return nil, bberrors.FrontmatterInvalid(relPath, err)
	}

	p := &Page{
		Path:   path.Clean(relPath),
		IsPost: isPostPath(relPath),
		Doc:    doc,
	}

	p.Layout = fieldString(doc.Fields, "layout")
	p.Title = fieldString(doc.Fields, "title")
	p.Categories = fieldStringList(doc.Fields, "categories")
	p.Tags = fieldStringList(doc.Fields, "tags")
	p.AuthorProfile = fieldBool(doc.Fields, "author_profile")
	p.UID = fieldString(doc.Fields, "uid")

	if d, ok := fieldTime(doc.Fields, "date"); ok {
		p.Date = d
		p.HasDate = true
	} else if d, ok := p.filenameDate(); ok {
		// Posts without an explicit date fall back to the filename prefix,
		// matching renderer behavior.
		p.Date = d
		p.HasDate = true
	}

	if d, ok := fieldTime(doc.Fields, "last_modified_at"); ok {
		p.Lastmod = d
		p.HasLastmod = true
	}

	return p, nil
}

// Slug returns the URL slug for the page.
func (p *Page) Slug() string {
	base := path.Base(p.Path)
	if m := postNameRe.FindStringSubmatch(base); m != nil {
		return Slugify(m[4])
	}
	ext := path.Ext(base)
	return Slugify(strings.TrimSuffix(base, ext))
}

// Permalink computes the page URL relative to the site base.
//
// Posts follow the /:categories/:title/ convention; pages mirror their
// directory layout, with index.md collapsing to the directory root.
func (p *Page) Permalink() string {
	if p.IsPost {
		segments := make([]string, 0, len(p.Categories)+1)
		for _, c := range p.Categories {
			segments = append(segments, Slugify(c))
		}
		segments = append(segments, p.Slug())
		return "/" + strings.Join(segments, "/") + "/"
	}

	dir := path.Dir(p.Path)
	name := strings.TrimSuffix(path.Base(p.Path), path.Ext(p.Path))
	if name == "index" {
		if dir == "." {
			return "/"
		}
		return "/" + dir + "/"
	}
	if dir == "." {
		return "/" + name + "/"
	}
	return "/" + dir + "/" + name + "/"
}

// FilenameDateMatchesFrontmatter reports whether an explicit frontmatter date
// agrees (to the day) with the post's filename prefix.
func (p *Page) FilenameDateMatchesFrontmatter() bool {
	fd, ok := p.filenameDate()
	if !ok || !p.HasDate {
		return true
	}
	y1, m1, d1 := fd.Date()
	y2, m2, d2 := p.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (p *Page) filenameDate() (time.Time, bool) {
	m := postNameRe.FindStringSubmatch(path.Base(p.Path))
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isPostPath(relPath string) bool {
	for _, seg := range strings.Split(path.Clean(filepath.ToSlash(relPath)), "/") {
		if seg == "_posts" {
			return true
		}
	}
	return false
}

// IsContentFile reports whether the filename is a Markdown content document.
func IsContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
