// Package frontmatter reads and writes the `---` delimited YAML metadata
// block that prefixes every content document.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrUnterminated indicates an opening frontmatter delimiter without a
// matching closing delimiter.
var ErrUnterminated = errors.New("frontmatter opening delimiter found but closing delimiter is missing")

// Style captures the newline shape of a document so rewrites stay
// byte-stable for files the author never touched.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// Document is a content file decomposed into metadata and Markdown body.
//
// Fields holds every frontmatter key, including ones this tool does not
// interpret; the renderer owns those and they must survive round-trips.
type Document struct {
	Fields  map[string]any
	Raw     []byte // raw YAML between the delimiters, without them
	Body    []byte
	Present bool // whether the file carried a frontmatter block at all
	Style   Style
}

// Decode splits content into frontmatter and body and parses the YAML.
//
// A file that does not start with `---` decodes to a Document with
// Present=false and the full input as Body.
func Decode(content []byte) (*Document, error) {
	style := detectStyle(content)
	nl := style.Newline

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return &Document{Fields: map[string]any{}, Body: content, Style: style}, nil
	}

	rest := content[len(open):]

	// Empty block: `---` immediately followed by the closing `---`.
	if bytes.HasPrefix(rest, open) {
		return &Document{
			Fields:  map[string]any{},
			Raw:     []byte{},
			Body:    rest[len(open):],
			Present: true,
			Style:   style,
		}, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		return nil, ErrUnterminated
	}

	raw := rest[:idx+len(nl)]
	body := rest[idx+len(closeSeq):]

	fields := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}

	return &Document{Fields: fields, Raw: raw, Body: body, Present: true, Style: style}, nil
}

// Encode reassembles the document. When Present is true the frontmatter is
// re-serialized from Fields with sorted keys; callers that did not modify
// Fields and want the original bytes back should keep the file untouched
// instead of round-tripping it.
func (d *Document) Encode() ([]byte, error) {
	if !d.Present {
		return d.Body, nil
	}

	nl := d.Style.Newline
	if nl == "" {
		nl = "\n"
	}

	yamlBytes, err := serializeFields(d.Fields, nl)
	if err != nil {
		return nil, err
	}

	delim := []byte("---" + nl)
	out := make([]byte, 0, 2*len(delim)+len(yamlBytes)+len(d.Body))
	out = append(out, delim...)
	out = append(out, yamlBytes...)
	out = append(out, delim...)
	out = append(out, d.Body...)
	return out, nil
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			break
		}
	}
	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
