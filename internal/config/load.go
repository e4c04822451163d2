package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
)

// DefaultConfigFile is the conventional configuration filename.
const DefaultConfigFile = "_config.yml"

// Load reads and parses the configuration file, applies defaults, and runs
// the normalization pass. Environment variables referenced as ${VAR} in the
// YAML are expanded after .env layering.
func Load(configPath string) (*SiteConfig, *NormalizationResult, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil, bberrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, nil, bberrors.ConfigInvalid("unreadable file", err).WithContext("path", configPath)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg SiteConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, nil, bberrors.ConfigInvalid("yaml parse failure", err).WithContext("path", configPath)
	}

	applyDefaults(&cfg)

	res, err := Normalize(&cfg)
	if err != nil {
		return nil, nil, err
	}

	return &cfg, res, nil
}

func applyDefaults(c *SiteConfig) {
	if c.Title == "" {
		c.Title = "Personal Blog"
	}
	if c.Theme == "" {
		c.Theme = "minimal-mistakes-jekyll"
	}
	if c.PaginatePath == "" {
		c.PaginatePath = "/page:num/"
	}
	if len(c.Exclude) == 0 {
		c.Exclude = []string{"Gemfile", "Gemfile.lock", "vendor", "node_modules"}
	}
}

// Validate performs structural checks that do not require the content set.
// Cross-referencing against content (navigation targets, etc.) is the check
// pipeline's job.
func Validate(c *SiteConfig) error {
	if c == nil {
		return bberrors.New(bberrors.CategoryConfig, bberrors.SeverityFatal, "config is nil")
	}
	if c.Title == "" {
		return bberrors.ValidationFailed("title", "must be non-empty")
	}
	if c.Paginate != nil && *c.Paginate <= 0 {
		return bberrors.ValidationFailed("paginate", fmt.Sprintf("must be a positive integer, got %d", *c.Paginate))
	}
	return nil
}
