package lint

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/gitmeta"
)

func TestFixer_AddsMissingUID(t *testing.T) {
	root := writeSiteTree(t, map[string]string{
		"about.md": "---\nlayout: single\ntitle: About\n---\nBody text.\n",
	})
	s := loadSite(t, root, nil)

	fixer := &Fixer{Root: root}
	result, err := fixer.Fix(s)
	require.NoError(t, err)

	require.Len(t, result.Changed, 1)
	assert.Equal(t, "about.md", result.Changed[0].Path)
	assert.Equal(t, []string{"add uid"}, result.Changed[0].Actions)

	reloaded, err := content.LoadPage("about.md", filepath.Join(root, "about.md"))
	require.NoError(t, err)
	assert.NotEmpty(t, reloaded.UID)
	assert.Equal(t, "About", reloaded.Title)
	assert.Equal(t, "Body text.\n", string(reloaded.Doc.Body))
}

func TestFixer_DryRunLeavesFilesAlone(t *testing.T) {
	root := writeSiteTree(t, map[string]string{
		"about.md": "---\nlayout: single\ntitle: About\n---\nB\n",
	})
	before, err := os.ReadFile(filepath.Join(root, "about.md"))
	require.NoError(t, err)

	fixer := &Fixer{Root: root, DryRun: true}
	result, err := fixer.Fix(loadSite(t, root, nil))
	require.NoError(t, err)
	require.Len(t, result.Changed, 1)

	after, err := os.ReadFile(filepath.Join(root, "about.md"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFixer_SkipsCompletePages(t *testing.T) {
	root := writeSiteTree(t, map[string]string{
		"about.md": "---\nlayout: single\ntitle: About\nuid: abc\n---\nB\n",
		"plain.md": "no frontmatter at all\n",
	})

	result, err := (&Fixer{Root: root}).Fix(loadSite(t, root, nil))
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
	assert.Equal(t, 2, result.Unchanged)
}

func TestFixer_RefreshesStaleLastmodFromGit(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	committed := time.Date(2022, 4, 9, 12, 0, 0, 0, time.UTC)
	raw := "---\nlayout: single\ntitle: About\nuid: abc\nlast_modified_at: 2021-01-01\n---\nB\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "about.md"), []byte(raw), 0o644))
	_, err = wt.Add("about.md")
	require.NoError(t, err)
	_, err = wt.Commit("add about", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "t@example.org", When: committed},
	})
	require.NoError(t, err)

	history, err := gitmeta.Open(root)
	require.NoError(t, err)

	fixer := &Fixer{Root: root, History: history}
	result, err := fixer.Fix(loadSite(t, root, nil))
	require.NoError(t, err)

	require.Len(t, result.Changed, 1)
	assert.Equal(t, []string{"refresh last_modified_at"}, result.Changed[0].Actions)

	reloaded, err := content.LoadPage("about.md", filepath.Join(root, "about.md"))
	require.NoError(t, err)
	require.True(t, reloaded.HasLastmod)
	assert.Equal(t, "2022-04-09", reloaded.Lastmod.Format("2006-01-02"))
}

func TestFixer_LastmodWithinToleranceUntouched(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	committed := time.Date(2022, 4, 9, 12, 0, 0, 0, time.UTC)
	raw := "---\nlayout: single\ntitle: About\nuid: abc\nlast_modified_at: 2022-04-09\n---\nB\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "about.md"), []byte(raw), 0o644))
	_, err = wt.Add("about.md")
	require.NoError(t, err)
	_, err = wt.Commit("add about", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "t@example.org", When: committed},
	})
	require.NoError(t, err)

	history, err := gitmeta.Open(root)
	require.NoError(t, err)

	result, err := (&Fixer{Root: root, History: history}).Fix(loadSite(t, root, nil))
	require.NoError(t, err)
	assert.Empty(t, result.Changed)
}
