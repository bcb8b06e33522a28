package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Empty(t *testing.T) {
	doc, err := NewRenderer().Render("")
	require.NoError(t, err)
	assert.Empty(t, doc.HTML)
	assert.Empty(t, doc.TOC)
}

func TestRender_HeadingsBuildNestedTOC(t *testing.T) {
	src := "# Intro\n\ntext\n\n## Setup\n\n### Tools\n\n## Usage\n\n# Appendix\n"
	doc, err := NewRenderer().Render(src)
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, `<h1 id="intro">Intro</h1>`)
	require.Len(t, doc.TOC, 2)

	intro := doc.TOC[0]
	assert.Equal(t, Heading{Level: 1, ID: "intro", Title: "Intro", Children: intro.Children}, intro)
	require.Len(t, intro.Children, 2)
	assert.Equal(t, "setup", intro.Children[0].ID)
	require.Len(t, intro.Children[0].Children, 1)
	assert.Equal(t, "Tools", intro.Children[0].Children[0].Title)
	assert.Equal(t, "usage", intro.Children[1].ID)

	assert.Equal(t, "appendix", doc.TOC[1].ID)
	assert.Empty(t, doc.TOC[1].Children)
}

func TestRender_ExtraSyntax(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n\n" +
		"Term\n: Definition\n\n" +
		"Note[^1]\n\n[^1]: Footnote text\n\n" +
		"```go\nfmt.Println(\"hi\")\n```\n"

	doc, err := NewRenderer().Render(src)
	require.NoError(t, err)

	assert.Contains(t, doc.HTML, "<table>")
	assert.Contains(t, doc.HTML, "<dl>")
	assert.Contains(t, doc.HTML, `class="footnotes"`)
	assert.Contains(t, doc.HTML, `<code class="language-go">`)
}

func TestRender_Sanitizes(t *testing.T) {
	src := "<script>alert(1)</script>\n\n[click](javascript:alert(1))\n"
	doc, err := NewRenderer().Render(src)
	require.NoError(t, err)

	assert.NotContains(t, doc.HTML, "<script>")
	assert.NotContains(t, doc.HTML, "javascript:")
	assert.Contains(t, doc.HTML, "raw HTML omitted")
}

func TestRender_Deterministic(t *testing.T) {
	src := "# Title\n\nSome *emphasis* and a [link](https://example.com).\n"
	first, err := NewRenderer().Render(src)
	require.NoError(t, err)
	second, err := NewRenderer().Render(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildTOC_StartsDeep(t *testing.T) {
	toc := buildTOC([]Heading{{Level: 3, ID: "a"}, {Level: 2, ID: "b"}, {Level: 3, ID: "c"}})
	require.Len(t, toc, 2)
	assert.Equal(t, "a", toc[0].ID)
	assert.Equal(t, "b", toc[1].ID)
	require.Len(t, toc[1].Children, 1)
	assert.Equal(t, "c", toc[1].Children[0].ID)
}
