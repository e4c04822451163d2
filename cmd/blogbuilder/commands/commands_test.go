package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwnotes/blogbuilder/internal/config"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, ctx
}

func TestCLI_DefaultsAndFlags(t *testing.T) {
	cli, ctx := parseCLI(t, "check")
	assert.Equal(t, "_config.yml", cli.Config)
	assert.Equal(t, "check", ctx.Command())
	assert.Equal(t, "text", cli.Check.Format)
	assert.False(t, cli.Check.Watch)

	cli, _ = parseCLI(t, "-c", "site/_config.yml", "-v", "check", "-f", "json", "-q")
	assert.Equal(t, "site/_config.yml", cli.Config)
	assert.True(t, cli.Verbose)
	assert.Equal(t, "json", cli.Check.Format)
	assert.True(t, cli.Check.Quiet)
}

func TestCLI_RejectsUnknownFormat(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse([]string{"check", "-f", "xml"})
	require.Error(t, err)
}

func writeFixtureSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"_config.yml": "title: Hardware Notes\nheader_pages:\n  - about.md\npaginate: 1\n",
		"index.md":    "---\nlayout: home\ntitle: Home\nuid: a\n---\nHi.\n",
		"about.md":    "---\nlayout: single\ntitle: About\nuid: b\n---\nMe.\n",
		"_posts/2021-03-14-gray-codes.md": "---\nlayout: single\ntitle: Gray Codes\n" +
			"date: 2021-03-14\ncategories: [hardware]\ntags: [cdc, fifo]\nuid: c\n---\nBody.\n",
		"_posts/2021-06-02-metastability.md": "---\nlayout: single\ntitle: Metastability\n" +
			"date: 2021-06-02\ncategories: [hardware]\ntags: [cdc]\nuid: d\n---\nBody.\n",
	}
	for rel, body := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(body), 0o644))
	}
	return root
}

func TestLoadSite_ResolvesRootFromConfigPath(t *testing.T) {
	root := writeFixtureSite(t)

	s, err := loadSite(filepath.Join(root, "_config.yml"))
	require.NoError(t, err)
	assert.Equal(t, root, s.Root)
	assert.Equal(t, "Hardware Notes", s.Config.Title)
	assert.Len(t, s.Posts, 2)
}

func TestBuildReport_CoversModel(t *testing.T) {
	root := writeFixtureSite(t)
	s, err := loadSite(filepath.Join(root, "_config.yml"))
	require.NoError(t, err)

	report := buildReport(s)
	assert.Equal(t, "Hardware Notes", report.Title)
	require.Len(t, report.Navigation, 1)
	assert.Equal(t, "About", report.Navigation[0].Label)
	assert.Empty(t, report.NavMissing)

	require.Len(t, report.Posts, 2)
	assert.Equal(t, "Metastability", report.Posts[0].Title) // newest first

	assert.Equal(t, map[string]int{"hardware": 2}, report.Categories)
	assert.Equal(t, map[string]int{"cdc": 2, "fifo": 1}, report.Tags)

	require.Len(t, report.Pagination, 2) // paginate: 1 with two posts
	assert.Equal(t, "/", report.Pagination[0].URL)
}

func TestPostsPerYear_NewestFirst(t *testing.T) {
	root := writeFixtureSite(t)
	s, err := loadSite(filepath.Join(root, "_config.yml"))
	require.NoError(t, err)

	lines := postsPerYear(s)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "2021")
	assert.Contains(t, lines[0], "2")
}

func TestTopGroups_RankedWithTieBreak(t *testing.T) {
	root := writeFixtureSite(t)
	s, err := loadSite(filepath.Join(root, "_config.yml"))
	require.NoError(t, err)

	lines := topGroups(s.Tags(), 5)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "cdc")
	assert.Contains(t, lines[1], "fifo")

	lines = topGroups(s.Tags(), 1)
	require.Len(t, lines, 1)
}

func TestOpenHistory_NilOutsideRepo(t *testing.T) {
	assert.Nil(t, openHistory(t.TempDir()))
}

func TestInitCmd_WritesStarterConfig(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "_config.yml")

	cmd := &InitCmd{}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: path}))

	cfg, _, err := config.Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Title)

	assert.FileExists(t, filepath.Join(root, "index.md"))
	assert.FileExists(t, filepath.Join(root, "about.md"))
	posts, err := os.ReadDir(filepath.Join(root, "_posts"))
	require.NoError(t, err)
	assert.NotEmpty(t, posts)

	// refuses to clobber without --force
	require.Error(t, cmd.Run(&Global{}, &CLI{Config: path}))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, &CLI{Config: path}))
}
