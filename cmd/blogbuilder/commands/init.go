package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hwnotes/blogbuilder/internal/config"
	"github.com/hwnotes/blogbuilder/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

// Run executes the init command.
func (cmd *InitCmd) Run(_ *Global, root *CLI) error {
	slog.Info("Writing starter configuration", logfields.Path(root.Config))
	if err := config.Init(root.Config, cmd.Force); err != nil {
		return err
	}
	if err := scaffoldContent(filepath.Dir(root.Config)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s and starter content. Edit the title and author, then run: blogbuilder check\n", root.Config)
	return nil
}

// scaffoldContent writes the starter pages and first post. Existing files are
// never touched; init is safe to re-run.
func scaffoldContent(siteRoot string) error {
	if siteRoot == "" {
		siteRoot = "."
	}
	today := time.Now().Format("2006-01-02")

	starters := map[string]string{
		"index.md": "---\n" +
			"layout: home\n" +
			"title: Home\n" +
			"author_profile: true\n" +
			"uid: " + uuid.NewString() + "\n" +
			"---\n",
		"about.md": "---\n" +
			"layout: single\n" +
			"title: About\n" +
			"author_profile: true\n" +
			"uid: " + uuid.NewString() + "\n" +
			"---\n\nA few words about this blog.\n",
		"_posts/" + today + "-welcome.md": "---\n" +
			"layout: single\n" +
			"title: Welcome\n" +
			"date: " + today + "\n" +
			"uid: " + uuid.NewString() + "\n" +
			"---\n\nFirst post.\n",
	}

	for rel, body := range starters {
		abs := filepath.Join(siteRoot, filepath.FromSlash(rel))
		if _, err := os.Stat(abs); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(abs, []byte(body), 0o644); err != nil {
			return err
		}
		slog.Debug("Wrote starter file", logfields.File(rel))
	}
	return nil
}
