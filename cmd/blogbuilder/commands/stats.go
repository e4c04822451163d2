package commands

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hwnotes/blogbuilder/internal/content"
	"github.com/hwnotes/blogbuilder/internal/gitmeta"
	"github.com/hwnotes/blogbuilder/internal/site"
)

// StatsCmd implements the 'stats' command.
type StatsCmd struct {
	Top int `default:"5" help:"How many entries to show in top lists"`
}

// Run executes the stats command.
func (cmd *StatsCmd) Run(_ *Global, root *CLI) error {
	s, err := loadSite(root.Config)
	if err != nil {
		return err
	}
	return cmd.print(os.Stdout, s, openHistory(s.Root))
}

func (cmd *StatsCmd) print(w io.Writer, s *site.Site, history *gitmeta.History) error {
	fmt.Fprintf(w, "%s\n\n", s.Summary())

	fmt.Fprintln(w, "Posts per year:")
	for _, line := range postsPerYear(s) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintf(w, "\nTop categories:\n")
	for _, line := range topGroups(s.Categories(), cmd.Top) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "\nTop tags:\n")
	for _, line := range topGroups(s.Tags(), cmd.Top) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if history != nil {
		fmt.Fprintf(w, "\nMost edited (commits touching the file):\n")
		for _, line := range mostEdited(s, history, cmd.Top) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}

func postsPerYear(s *site.Site) []string {
	counts := map[string]int{}
	for _, p := range s.Posts {
		if !p.HasDate {
			counts["undated"]++
			continue
		}
		counts[p.Date.Format("2006")]++
	}
	keys := site.SortedKeys(counts)
	// newest year first
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%-8s %d", k, counts[k]))
	}
	return out
}

func topGroups(groups map[string][]*content.Page, top int) []string {
	type group struct {
		name  string
		posts int
	}
	ranked := make([]group, 0, len(groups))
	for name, posts := range groups {
		ranked = append(ranked, group{name: name, posts: len(posts)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].posts != ranked[j].posts {
			return ranked[i].posts > ranked[j].posts
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	out := make([]string, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, fmt.Sprintf("%-20s %d", g.name, g.posts))
	}
	return out
}

func mostEdited(s *site.Site, history *gitmeta.History, top int) []string {
	type edit struct {
		path    string
		commits int
	}
	var edits []edit
	for _, p := range s.Pages {
		n, err := history.CommitCount(p.Path)
		if err != nil {
			continue
		}
		edits = append(edits, edit{path: p.Path, commits: n})
	}
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].commits != edits[j].commits {
			return edits[i].commits > edits[j].commits
		}
		return edits[i].path < edits[j].path
	})
	if len(edits) > top {
		edits = edits[:top]
	}
	out := make([]string, 0, len(edits))
	for _, e := range edits {
		out = append(out, fmt.Sprintf("%-40s %d", e.path, e.commits))
	}
	return out
}
