package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destinations(links []Link, kind LinkKind) []string {
	var out []string
	for _, l := range links {
		if l.Kind == kind {
			out = append(out, l.Destination)
		}
	}
	return out
}

func TestExtractLinks_InlineImageAndAuto(t *testing.T) {
	body := []byte(`See [the spec sheet](https://example.org/ds.pdf) and
![waveform](/assets/wave.png) or visit <https://example.com>.
`)

	links, err := ExtractLinks(body)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.org/ds.pdf"}, destinations(links, LinkKindInline))
	assert.Equal(t, []string{"/assets/wave.png"}, destinations(links, LinkKindImage))
	assert.Equal(t, []string{"https://example.com"}, destinations(links, LinkKindAuto))
}

func TestExtractLinks_ReferenceDefinitions(t *testing.T) {
	body := []byte("Read [cummings paper][1].\n\n[1]: https://example.org/cdc.pdf\n")

	links, err := ExtractLinks(body)
	require.NoError(t, err)
	assert.Contains(t, destinations(links, LinkKindReferenceDefinition), "https://example.org/cdc.pdf")
}

func TestExtractLinks_EmbeddedHTML(t *testing.T) {
	body := []byte(`Some prose.

<figure>
  <img src="/assets/sync.svg" alt="synchronizer">
  <a href="https://example.org/fifo">FIFO article</a>
</figure>
`)

	links, err := ExtractLinks(body)
	require.NoError(t, err)

	html := destinations(links, LinkKindHTML)
	assert.Contains(t, html, "/assets/sync.svg")
	assert.Contains(t, html, "https://example.org/fifo")
}

func TestExtractLinks_CodeBlocksAreNotLinks(t *testing.T) {
	body := []byte("```verilog\nassign q = d; // [not a link](http://nope)\n```\n")

	links, err := ExtractLinks(body)
	require.NoError(t, err)
	assert.Empty(t, destinations(links, LinkKindInline))
}

func TestExtractLinks_HTMLInsideFenceIgnored(t *testing.T) {
	body := []byte("Sample markup:\n\n```html\n<img src=\"gopher://bad\">\n```\n\n<img src=\"/assets/real.png\">\n")

	links, err := ExtractLinks(body)
	require.NoError(t, err)

	html := destinations(links, LinkKindHTML)
	assert.Equal(t, []string{"/assets/real.png"}, html)
}

func TestExtractLinks_HTMLInsideUnclosedFenceIgnored(t *testing.T) {
	body := []byte("```html\n<a href=\"https://example.org/in-code\">x</a>\n")

	links, err := ExtractLinks(body)
	require.NoError(t, err)
	assert.Empty(t, destinations(links, LinkKindHTML))
}

func TestScanFences_BalancedPair(t *testing.T) {
	body := []byte("intro\n```verilog\nalways @(posedge clk) q <= d;\n```\noutro\n")

	fences := ScanFences(body)
	require.Len(t, fences, 1)
	assert.Equal(t, 2, fences[0].Line)
	assert.Equal(t, "verilog", fences[0].Info)
	assert.True(t, fences[0].Closed)
	assert.Equal(t, 4, fences[0].EndLine)
}

func TestScanFences_Unclosed(t *testing.T) {
	body := []byte("```verilog\nalways @(posedge clk)\n")

	unclosed := UnclosedFences(body)
	require.Len(t, unclosed, 1)
	assert.Equal(t, 1, unclosed[0].Line)
	assert.Equal(t, "verilog", unclosed[0].Info)
}

func TestScanFences_TildeInsideBacktickBlockIsContent(t *testing.T) {
	body := []byte("```\n~~~\n```\n")

	fences := ScanFences(body)
	require.Len(t, fences, 1)
	assert.True(t, fences[0].Closed)
}

func TestScanFences_LongerClosingDelimiterCloses(t *testing.T) {
	body := []byte("```verilog\ncode\n`````\n")

	fences := ScanFences(body)
	require.Len(t, fences, 1)
	assert.True(t, fences[0].Closed)
}

func TestScanFences_ShorterDelimiterDoesNotClose(t *testing.T) {
	body := []byte("`````\ncode\n```\n")

	unclosed := UnclosedFences(body)
	require.Len(t, unclosed, 1)
}

func TestScanFences_MultipleBlocks(t *testing.T) {
	body := []byte("```verilog\na\n```\ntext\n```vhdl\nb\n```\n")

	fences := ScanFences(body)
	require.Len(t, fences, 2)
	assert.Equal(t, "verilog", fences[0].Info)
	assert.Equal(t, "vhdl", fences[1].Info)
	assert.True(t, fences[0].Closed)
	assert.True(t, fences[1].Closed)
}

func TestScanFences_DeepIndentIgnored(t *testing.T) {
	// Four-space indent is an indented code block, not a fence.
	body := []byte("    ```\n    code\n")

	assert.Empty(t, ScanFences(body))
}
