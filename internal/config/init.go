package config

import (
	"os"

	"gopkg.in/yaml.v3"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
)

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return bberrors.New(bberrors.CategoryConfig, bberrors.SeverityFatal,
			"configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	example := SiteConfig{
		Title:       "My Blog",
		Description: "Notes on digital design",
		URL:         "https://example.github.io",
		Theme:       "minimal-mistakes-jekyll",
		HeaderPages: []string{"index.md", "about.md"},
		Author: AuthorConfig{
			Name: "Your Name",
			Bio:  "Hardware engineer",
			Links: []Link{
				{Label: "GitHub", Icon: "fab fa-fw fa-github", URL: "https://github.com/example"},
			},
		},
		Footer: FooterConfig{
			Links: []Link{
				{Label: "Feed", Icon: "fas fa-fw fa-rss", URL: "https://example.github.io/feed.xml"},
			},
		},
		Paginate:     PageSize(5),
		PaginatePath: "/page:num/",
		Plugins:      []string{"jekyll-paginate", "jekyll-sitemap", "jekyll-feed", "jekyll-include-cache"},
		Exclude:      []string{"Gemfile", "Gemfile.lock", "vendor", "node_modules"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return bberrors.InternalError("failed to marshal example config", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return bberrors.Wrap(err, bberrors.CategoryFileSystem, bberrors.SeverityFatal,
			"failed to write configuration file").
			WithContext("path", configPath)
	}

	return nil
}
