// Package gitmeta derives per-file timestamps from the blog repository's
// git history. The renderer ecosystem takes last-modified times from git
// rather than the filesystem, so checks and fixes here do the same.
package gitmeta

import (
	"errors"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	bberrors "github.com/hwnotes/blogbuilder/internal/errors"
)

// ErrNoHistory indicates a file with no commits touching it.
var ErrNoHistory = errors.New("no git history for file")

// History wraps an opened repository for timestamp lookups.
type History struct {
	repo *git.Repository

	// prefix maps site-relative paths onto repository-relative paths when
	// the site root sits below the repository root ("" when they coincide).
	prefix string
}

// Open locates the repository containing root (walking up to find .git).
// A site tree outside version control returns an error the callers treat as
// "git-derived checks unavailable", not as a failure.
func Open(root string) (*History, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, bberrors.GitHistoryError(root, err)
	}
	prefix, err := worktreePrefix(repo, root)
	if err != nil {
		return nil, bberrors.GitHistoryError(root, err)
	}
	return &History{repo: repo, prefix: prefix}, nil
}

// worktreePrefix computes the slash-separated path of root below the
// repository worktree. go-git's log filters take paths relative to the
// worktree root, not to the directory the repository was opened from.
func worktreePrefix(repo *git.Repository, root string) (string, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	wtRoot := wt.Filesystem.Root()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(wtRoot, absRoot)
	if err != nil || pathEscapes(rel) {
		// Symlinked temp dirs (macOS /var -> /private/var) make the raw
		// paths incomparable; resolve both and retry.
		resolvedWT, wtErr := filepath.EvalSymlinks(wtRoot)
		resolvedRoot, rootErr := filepath.EvalSymlinks(absRoot)
		if wtErr != nil || rootErr != nil {
			return "", err
		}
		rel, err = filepath.Rel(resolvedWT, resolvedRoot)
		if err != nil {
			return "", err
		}
	}
	if rel == "." || pathEscapes(rel) {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

func pathEscapes(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

// repoPath translates a site-relative path into the repository-relative
// form go-git expects.
func (h *History) repoPath(relPath string) string {
	if h.prefix == "" {
		return relPath
	}
	return path.Join(h.prefix, relPath)
}

// FileTimes returns the author times of the first and most recent commits
// touching relPath (relative to the repository root).
func (h *History) FileTimes(relPath string) (created, modified time.Time, err error) {
	name := h.repoPath(relPath)
	iter, err := h.repo.Log(&git.LogOptions{FileName: &name})
	if err != nil {
		return time.Time{}, time.Time{}, bberrors.GitHistoryError(relPath, err)
	}
	defer iter.Close()

	found := false
	forEachErr := iter.ForEach(func(c *object.Commit) error {
		when := c.Author.When
		if !found {
			modified = when
			created = when
			found = true
			return nil
		}
		// Commits arrive newest first; the last one seen is the oldest.
		created = when
		return nil
	})
	if forEachErr != nil && forEachErr != io.EOF {
		return time.Time{}, time.Time{}, bberrors.GitHistoryError(relPath, forEachErr)
	}
	if !found {
		return time.Time{}, time.Time{}, ErrNoHistory
	}
	return created, modified, nil
}

// CommitCount returns how many commits touch relPath.
func (h *History) CommitCount(relPath string) (int, error) {
	name := h.repoPath(relPath)
	iter, err := h.repo.Log(&git.LogOptions{FileName: &name})
	if err != nil {
		return 0, bberrors.GitHistoryError(relPath, err)
	}
	defer iter.Close()

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil && err != io.EOF {
		return 0, bberrors.GitHistoryError(relPath, err)
	}
	return count, nil
}
