package content

import "strings"

// Excerpt returns the first body paragraph, the way listing layouts preview
// a post. Headings, frontmatter remnants, and fenced code are skipped; the
// result is raw Markdown, not rendered text.
func (p *Page) Excerpt() string {
	body := string(p.Doc.Body)
	inFence := false
	var para []string

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		if trimmed == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		para = append(para, trimmed)
	}

	return strings.Join(para, " ")
}
