package markdown

import (
	"bufio"
	"bytes"
	"strings"
)

// Fence describes one fenced code block found in a Markdown body.
type Fence struct {
	Line     int    // 1-based line of the opening delimiter
	Info     string // info string after the delimiter (language tag)
	Closed   bool
	EndLine  int // line of the closing delimiter, 0 if unclosed
	Delim    string
	DelimLen int
}

// ScanFences inventories fenced code blocks by raw line scan.
//
// Goldmark's parser silently closes an unterminated fence at EOF, which is
// exactly the failure mode this check exists to catch, so delimiter
// balancing works on raw lines per the CommonMark closing rules: a closing
// fence uses the same character, at least as many of them, and no info
// string.
func ScanFences(body []byte) []Fence {
	var fences []Fence
	var open *Fence

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		delim, delimLen, info, ok := parseFenceLine(line)
		if !ok {
			continue
		}

		if open == nil {
			fences = append(fences, Fence{Line: lineNo, Info: info, Delim: delim, DelimLen: delimLen})
			open = &fences[len(fences)-1]
			continue
		}

		// Closing fence: same delimiter character, at least as long, no info.
		if delim == open.Delim && delimLen >= open.DelimLen && info == "" {
			open.Closed = true
			open.EndLine = lineNo
			open = nil
			continue
		}

		// A tilde fence inside a backtick block (or vice versa) is content.
	}

	return fences
}

// UnclosedFences returns the fences left open at end of body.
func UnclosedFences(body []byte) []Fence {
	var unclosed []Fence
	for _, f := range ScanFences(body) {
		if !f.Closed {
			unclosed = append(unclosed, f)
		}
	}
	return unclosed
}

// maskFencedCode blanks the lines covered by fenced code blocks, delimiter
// lines included. An unclosed fence extends to the end of the body. Line
// numbering is preserved so downstream positions stay accurate.
func maskFencedCode(body []byte) []byte {
	fences := ScanFences(body)
	if len(fences) == 0 {
		return body
	}

	lines := bytes.Split(body, []byte("\n"))
	for _, f := range fences {
		end := f.EndLine
		if !f.Closed {
			end = len(lines)
		}
		for i := f.Line - 1; i < end && i < len(lines); i++ {
			lines[i] = nil
		}
	}
	return bytes.Join(lines, []byte("\n"))
}

// parseFenceLine recognizes a fence delimiter line: up to three leading
// spaces, then three or more backticks or tildes.
func parseFenceLine(line string) (delim string, delimLen int, info string, ok bool) {
	trimmed := line
	indent := 0
	for indent < len(trimmed) && trimmed[indent] == ' ' {
		indent++
	}
	if indent > 3 {
		return "", 0, "", false
	}
	trimmed = trimmed[indent:]
	if trimmed == "" {
		return "", 0, "", false
	}

	ch := trimmed[0]
	if ch != '`' && ch != '~' {
		return "", 0, "", false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	if n < 3 {
		return "", 0, "", false
	}

	rest := strings.TrimSpace(trimmed[n:])
	// CommonMark: info strings on backtick fences cannot contain backticks.
	if ch == '`' && strings.Contains(rest, "`") {
		return "", 0, "", false
	}

	return string(ch), n, rest, true
}
