package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwnotes/blogbuilder/internal/config"
	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/site"
)

func siteWith(t *testing.T, cfg *config.SiteConfig, pages map[string]string) *site.Site {
	t.Helper()
	s := &site.Site{Root: "/tmp/site", Config: cfg}
	for path, raw := range pages {
		p, err := content.ParsePage(path, []byte(raw))
		require.NoError(t, err)
		s.Pages = append(s.Pages, p)
	}
	return s
}

func TestNavigation_MissingHeaderPageIsError(t *testing.T) {
	cfg := &config.SiteConfig{HeaderPages: []string{"about.md", "ghost.md"}}
	s := siteWith(t, cfg, map[string]string{
		"about.md": "---\nlayout: single\ntitle: About\n---\nB\n",
	})

	issues := (&NavigationRule{}).Check(s)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "'ghost.md'")
	assert.Empty(t, issues[0].FilePath) // site-level
}

func TestNavigation_BasenameResolves(t *testing.T) {
	cfg := &config.SiteConfig{HeaderPages: []string{"about.md"}}
	s := siteWith(t, cfg, map[string]string{
		"pages/about.md": "---\nlayout: single\ntitle: About\n---\nB\n",
	})
	assert.Empty(t, (&NavigationRule{}).Check(s))
}

func TestPagination_NegativePaginateIsError(t *testing.T) {
	s := siteWith(t, &config.SiteConfig{Paginate: config.PageSize(-3), PaginatePath: "/page:num/"}, nil)

	issues := (&PaginationRule{}).Check(s)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "positive integer")
}

func TestPagination_ExplicitZeroIsError(t *testing.T) {
	s := siteWith(t, &config.SiteConfig{Paginate: config.PageSize(0), PaginatePath: "/page:num/"}, nil)

	issues := (&PaginationRule{}).Check(s)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "got 0")
}

func TestPagination_PathWithoutPlaceholderIsError(t *testing.T) {
	s := siteWith(t, &config.SiteConfig{Paginate: config.PageSize(5), PaginatePath: "/page/"}, nil)

	issues := (&PaginationRule{}).Check(s)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, ":num")
}

func TestPagination_DisabledNeedsNoPath(t *testing.T) {
	s := siteWith(t, &config.SiteConfig{Paginate: nil, PaginatePath: ""}, nil)
	assert.Empty(t, (&PaginationRule{}).Check(s))
}

func TestLinkLists_BadURLsAndEmptyLabels(t *testing.T) {
	cfg := &config.SiteConfig{
		Footer: config.FooterConfig{Links: []config.Link{
			{Label: "GitHub", URL: "https://github.com/someone"},
			{Label: "", URL: "not a url"},
		}},
		Author: config.AuthorConfig{Links: []config.Link{
			{Label: "Mail", URL: "mailto:"},
		}},
	}
	s := siteWith(t, cfg, nil)

	issues := (&LinkListsRule{}).Check(s)
	require.Len(t, issues, 3)
	assert.Contains(t, issues[0].Message, "footer.links[1]: label is empty")
	assert.Contains(t, issues[1].Message, "footer.links[1]")
	assert.Contains(t, issues[2].Message, "mailto without address")
}

func TestLinkLists_SchemeRelativeRejected(t *testing.T) {
	cfg := &config.SiteConfig{
		Footer: config.FooterConfig{Links: []config.Link{
			{Label: "Feed", URL: "/feed.xml"},
		}},
	}
	s := siteWith(t, cfg, nil)

	issues := (&LinkListsRule{}).Check(s)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "unsupported scheme")
}

func TestPlugins_UnknownIsWarning(t *testing.T) {
	cfg := &config.SiteConfig{Plugins: []string{"jekyll-paginate", "jekyll-tyop"}}
	s := siteWith(t, cfg, nil)

	issues := (&PluginsRule{}).Check(s)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "'jekyll-tyop'")
}
