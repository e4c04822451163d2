package site

import (
	"strconv"
	"strings"

	"github.com/hwnotes/blogbuilder/internal/content"
)

// ListingPage is one page of the paginated post listing.
type ListingPage struct {
	Number int             `json:"number"`
	URL    string          `json:"url"`
	Posts  []*content.Page `json:"-"`
	Paths  []string        `json:"posts"`
}

// PaginationPlan computes the listing pages the renderer will emit for the
// configured paginate size. Page 1 lives at the listing root; subsequent
// pages expand the :num placeholder in paginate_path.
//
// With pagination disabled (paginate absent), the whole post list is a
// single root page.
func (s *Site) PaginationPlan() []ListingPage {
	posts := s.Posts
	size := s.Config.PaginateSize()

	if size <= 0 {
		return []ListingPage{makeListing(1, "/", posts)}
	}

	var plan []ListingPage
	for start, num := 0, 1; start < len(posts) || num == 1; start, num = start+size, num+1 {
		end := start + size
		if end > len(posts) {
			end = len(posts)
		}
		url := "/"
		if num > 1 {
			url = expandPaginatePath(s.Config.PaginatePath, num)
		}
		plan = append(plan, makeListing(num, url, posts[start:end]))
	}
	return plan
}

func makeListing(num int, url string, posts []*content.Page) ListingPage {
	paths := make([]string, 0, len(posts))
	for _, p := range posts {
		paths = append(paths, p.Path)
	}
	return ListingPage{Number: num, URL: url, Posts: posts, Paths: paths}
}

func expandPaginatePath(pattern string, num int) string {
	expanded := strings.ReplaceAll(pattern, ":num", strconv.Itoa(num))
	if !strings.HasPrefix(expanded, "/") {
		expanded = "/" + expanded
	}
	if !strings.HasSuffix(expanded, "/") {
		expanded += "/"
	}
	return expanded
}
