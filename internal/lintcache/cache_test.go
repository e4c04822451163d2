package lintcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssue struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	in := []fakeIssue{{Rule: "fence-balance", Message: "unclosed"}}
	require.NoError(t, c.Put("_posts/a.md", "hash1", in))

	var out []fakeIssue
	hit, err := c.Get("_posts/a.md", "hash1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestCache_HashMismatch_IsMiss(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put("a.md", "hash1", []fakeIssue{}))

	var out []fakeIssue
	hit, err := c.Get("a.md", "hash2", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_UnknownPath_IsMiss(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	var out []fakeIssue
	hit, err := c.Get("nope.md", "h", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_PutOverwrites(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put("a.md", "h1", []fakeIssue{{Rule: "r1"}}))
	require.NoError(t, c.Put("a.md", "h2", []fakeIssue{{Rule: "r2"}}))

	var out []fakeIssue
	hit, err := c.Get("a.md", "h2", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, out, 1)
	assert.Equal(t, "r2", out[0].Rule)
}

func TestCache_Prune_RemovesStaleEntries(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Put("keep.md", "h", []fakeIssue{}))
	require.NoError(t, c.Put("stale.md", "h", []fakeIssue{}))

	require.NoError(t, c.Prune(map[string]bool{"keep.md": true}))

	var out []fakeIssue
	hit, err := c.Get("keep.md", "h", &out)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = c.Get("stale.md", "h", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_FileBacked_PersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "check-cache.db")

	c, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, c.Put("a.md", "h", []fakeIssue{{Rule: "r"}}))
	require.NoError(t, c.Close())

	c2, err := Open(dbPath)
	require.NoError(t, err)
	defer c2.Close()

	var out []fakeIssue
	hit, err := c2.Get("a.md", "h", &out)
	require.NoError(t, err)
	assert.True(t, hit)
}
