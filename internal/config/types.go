// Package config loads and validates the site configuration file.
//
// Key names and nesting mirror what the external renderer expects
// (header_pages, footer.links, author.links, paginate, paginate_path, ...);
// renaming any of them would silently change renderer behavior, so the YAML
// tags here are load-bearing.
package config

import "strings"

// SiteConfig represents the site configuration file (_config.yml).
// Loaded once per run and treated as immutable afterward.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
	BaseURL     string `yaml:"baseurl,omitempty"`
	Theme       string `yaml:"theme,omitempty"`

	HeaderPages []string     `yaml:"header_pages,omitempty"`
	Footer      FooterConfig `yaml:"footer,omitempty"`
	Author      AuthorConfig `yaml:"author,omitempty"`

	// Paginate is a pointer so an explicit `paginate: 0` (renderer build
	// failure) stays distinguishable from the key being absent (pagination
	// disabled).
	Paginate     *int   `yaml:"paginate,omitempty"`
	PaginatePath string `yaml:"paginate_path,omitempty"`

	Plugins []string `yaml:"plugins,omitempty"`
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// FooterConfig holds the footer link list.
type FooterConfig struct {
	Links []Link `yaml:"links,omitempty"`
}

// AuthorConfig is the author profile shown in the sidebar.
type AuthorConfig struct {
	Name   string `yaml:"name,omitempty"`
	Avatar string `yaml:"avatar,omitempty"`
	Bio    string `yaml:"bio,omitempty"`
	Links  []Link `yaml:"links,omitempty"`
}

// Link is a navigation or social link entry. Purely referential.
type Link struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon,omitempty"`
	URL   string `yaml:"url"`
}

// PaginationEnabled reports whether listing pagination is configured at all.
func (c *SiteConfig) PaginationEnabled() bool {
	return c.Paginate != nil && *c.Paginate > 0
}

// PaginateSize returns the configured page size, zero when the key is absent.
func (c *SiteConfig) PaginateSize() int {
	if c.Paginate == nil {
		return 0
	}
	return *c.Paginate
}

// PageSize builds a paginate value for config construction.
func PageSize(n int) *int {
	return &n
}

// AbsoluteURL joins url and baseurl the way the renderer does.
func (c *SiteConfig) AbsoluteURL() string {
	u := strings.TrimSuffix(c.URL, "/")
	b := strings.Trim(c.BaseURL, "/")
	if b == "" {
		return u
	}
	return u + "/" + b
}

// KnownPlugins is the renderer plugin allowlist used for advisory checks.
// Unknown entries are warnings, not errors: the renderer is the final arbiter.
var KnownPlugins = map[string]bool{
	"jekyll-paginate":         true,
	"jekyll-sitemap":          true,
	"jekyll-gist":             true,
	"jekyll-feed":             true,
	"jekyll-include-cache":    true,
	"jekyll-seo-tag":          true,
	"jekyll-archives":         true,
	"jekyll-last-modified-at": true,
	"jemoji":                  true,
}
