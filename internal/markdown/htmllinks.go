package markdown

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// linkAttributes maps HTML tags to the attribute carrying a URL.
var linkAttributes = map[string]string{
	"a":      "href",
	"img":    "src",
	"source": "src",
	"iframe": "src",
	"link":   "href",
	"script": "src",
}

// extractHTMLLinks tokenizes the body as HTML and collects href/src values.
//
// Markdown bodies may embed raw HTML fragments (figure/img blocks, iframes
// for waveform viewers); the tokenizer treats Markdown text as character
// data, so only genuine tags surface here.
func extractHTMLLinks(body []byte) []Link {
	var links []Link

	tz := html.NewTokenizer(bytes.NewReader(body))
	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			if tz.Err() == io.EOF {
				break
			}
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		tok := tz.Token()
		attr, ok := linkAttributes[tok.Data]
		if !ok {
			continue
		}
		for _, a := range tok.Attr {
			if a.Key == attr && a.Val != "" {
				links = append(links, Link{Kind: LinkKindHTML, Destination: a.Val})
			}
		}
	}

	return links
}
