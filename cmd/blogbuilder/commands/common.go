// Package commands defines the blogbuilder CLI surface. Each command is a
// kong struct with a Run method; shared state travels through Global.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/hwnotes/blogbuilder/internal/config"
	"github.com/hwnotes/blogbuilder/internal/gitmeta"
	"github.com/hwnotes/blogbuilder/internal/logfields"
	"github.com/hwnotes/blogbuilder/internal/site"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file path" default:"_config.yml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Write a starter site configuration file"`
	Check   CheckCmd   `cmd:"" help:"Check the site source for problems the renderer would choke on"`
	Fix     FixCmd     `cmd:"" help:"Apply safe automatic frontmatter fixes"`
	Inspect InspectCmd `cmd:"" help:"Show the derived site model (navigation, posts, pagination)"`
	Stats   StatsCmd   `cmd:"" help:"Show content and edit-history statistics"`
}

// AfterApply runs after flag parsing; sets up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadSite loads the configuration and walks the content tree rooted at the
// config file's directory.
func loadSite(configPath string) (*site.Site, error) {
	cfg, norm, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	for _, warning := range norm.Warnings {
		slog.Warn("Config normalized", slog.String("detail", warning))
	}
	root := filepath.Dir(configPath)
	if root == "" {
		root = "."
	}
	return site.Load(root, cfg)
}

// openHistory opens git history for the site root. A site outside version
// control is fine; git-derived checks just switch off.
func openHistory(root string) *gitmeta.History {
	history, err := gitmeta.Open(root)
	if err != nil {
		slog.Debug("No git history available", logfields.Path(root), logfields.Error(err))
		return nil
	}
	return history
}
