package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hwnotes/blogbuilder/internal/site"
)

// InspectCmd implements the 'inspect' command.
type InspectCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

type inspectPost struct {
	Path       string   `json:"path"`
	Date       string   `json:"date,omitempty"`
	Title      string   `json:"title"`
	Permalink  string   `json:"permalink"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type inspectReport struct {
	Title      string             `json:"title"`
	URL        string             `json:"url,omitempty"`
	Navigation []site.NavEntry    `json:"navigation"`
	NavMissing []string           `json:"navigation_missing,omitempty"`
	Posts      []inspectPost      `json:"posts"`
	Categories map[string]int     `json:"categories"`
	Tags       map[string]int     `json:"tags"`
	Pagination []site.ListingPage `json:"pagination"`
}

// Run executes the inspect command.
func (cmd *InspectCmd) Run(_ *Global, root *CLI) error {
	s, err := loadSite(root.Config)
	if err != nil {
		return err
	}

	report := buildReport(s)
	if cmd.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return printReport(os.Stdout, report)
}

func buildReport(s *site.Site) *inspectReport {
	entries, missing := s.Navigation()

	report := &inspectReport{
		Title:      s.Config.Title,
		URL:        s.Config.AbsoluteURL(),
		Navigation: entries,
		NavMissing: missing,
		Categories: map[string]int{},
		Tags:       map[string]int{},
		Pagination: s.PaginationPlan(),
	}
	for _, p := range s.Posts {
		post := inspectPost{
			Path:       p.Path,
			Title:      p.Title,
			Permalink:  p.Permalink(),
			Excerpt:    p.Excerpt(),
			Categories: p.Categories,
			Tags:       p.Tags,
		}
		if p.HasDate {
			post.Date = p.Date.Format("2006-01-02")
		}
		report.Posts = append(report.Posts, post)
	}
	for name, posts := range s.Categories() {
		report.Categories[name] = len(posts)
	}
	for name, posts := range s.Tags() {
		report.Tags[name] = len(posts)
	}
	return report
}

func printReport(w io.Writer, report *inspectReport) error {
	fmt.Fprintf(w, "Site: %s\n", report.Title)
	if report.URL != "" {
		fmt.Fprintf(w, "URL:  %s\n", report.URL)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Navigation:")
	for _, entry := range report.Navigation {
		fmt.Fprintf(w, "  %-20s %s  (%s)\n", entry.Label, entry.URL, entry.Page)
	}
	for _, ref := range report.NavMissing {
		fmt.Fprintf(w, "  %-20s MISSING\n", ref)
	}

	fmt.Fprintf(w, "\nPosts (%d, newest first):\n", len(report.Posts))
	for _, post := range report.Posts {
		date := post.Date
		if date == "" {
			date = "undated"
		}
		fmt.Fprintf(w, "  %s  %s\n", date, post.Title)
		fmt.Fprintf(w, "              %s\n", post.Permalink)
	}

	fmt.Fprintln(w, "\nCategories:")
	for _, name := range site.SortedKeys(report.Categories) {
		fmt.Fprintf(w, "  %-20s %d\n", name, report.Categories[name])
	}
	fmt.Fprintln(w, "\nTags:")
	for _, name := range site.SortedKeys(report.Tags) {
		fmt.Fprintf(w, "  %-20s %d\n", name, report.Tags[name])
	}

	fmt.Fprintln(w, "\nPagination:")
	for _, listing := range report.Pagination {
		fmt.Fprintf(w, "  page %d  %-16s %d post%s\n",
			listing.Number, listing.URL, len(listing.Paths), plural(len(listing.Paths)))
	}
	return nil
}
