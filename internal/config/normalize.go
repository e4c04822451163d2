package config

import (
	"fmt"
	"strings"
)

// NormalizationResult captures adjustments and warnings from the
// normalization pass.
type NormalizationResult struct {
	Warnings []string
}

// Normalize canonicalizes enumerated and bounded fields in-place and returns
// a result describing any coercions. Hard failures stay in Validate; this
// pass only coerces values it can repair unambiguously.
func Normalize(c *SiteConfig) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}

	normalizeTheme(c, res)
	normalizePagination(c, res)
	normalizePlugins(c, res)
	normalizeHeaderPages(c, res)

	return res, nil
}

func normalizeTheme(c *SiteConfig, res *NormalizationResult) {
	trimmed := strings.TrimSpace(c.Theme)
	if trimmed != c.Theme {
		res.Warnings = append(res.Warnings, warnChanged("theme", c.Theme, trimmed))
		c.Theme = trimmed
	}
}

func normalizePagination(c *SiteConfig, res *NormalizationResult) {
	if c.PaginateSize() > 0 && !strings.Contains(c.PaginatePath, ":num") {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("paginate_path '%s' lacks ':num' placeholder, defaulting to /page:num/", c.PaginatePath))
		c.PaginatePath = "/page:num/"
	}
}

func normalizePlugins(c *SiteConfig, res *NormalizationResult) {
	seen := make(map[string]bool, len(c.Plugins))
	out := c.Plugins[:0]
	for _, p := range c.Plugins {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			res.Warnings = append(res.Warnings, "dropped empty plugins entry")
			continue
		}
		if seen[trimmed] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("dropped duplicate plugins entry '%s'", trimmed))
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	c.Plugins = out
}

func normalizeHeaderPages(c *SiteConfig, res *NormalizationResult) {
	out := c.HeaderPages[:0]
	for _, p := range c.HeaderPages {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			res.Warnings = append(res.Warnings, "dropped empty header_pages entry")
			continue
		}
		out = append(out, trimmed)
	}
	c.HeaderPages = out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
