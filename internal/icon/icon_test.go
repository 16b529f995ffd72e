package icon

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	perrors "github.com/kapu/portfolio-client-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goIcon = Icon{
	Slug:  "go",
	Title: "Go",
	Hex:   "00ADD8",
	Path:  "M1.811 10.231c-.047 0-.058-.023-.035-.059",
}

func parseRendered(t *testing.T, ic Icon, size int) *goquery.Selection {
	t.Helper()
	markup, err := HTML(ic, size)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	svg := doc.Find("svg")
	require.Equal(t, 1, svg.Length(), "markup: %s", markup)
	return svg
}

func TestRenderAttributes(t *testing.T) {
	svg := parseRendered(t, goIcon, 32)

	assert.Equal(t, "http://www.w3.org/2000/svg", svg.AttrOr("xmlns", ""))
	assert.Equal(t, "img", svg.AttrOr("role", ""))
	assert.Equal(t, "0 0 24 24", svg.AttrOr("viewBox", ""))
	assert.Equal(t, "32", svg.AttrOr("width", ""))
	assert.Equal(t, "32", svg.AttrOr("height", ""))
	assert.Equal(t, "#00ADD8", svg.AttrOr("fill", ""))

	paths := svg.Find("path")
	require.Equal(t, 1, paths.Length())
	assert.Equal(t, goIcon.Path, paths.AttrOr("d", ""))
}

func TestRenderDefaultSize(t *testing.T) {
	for _, size := range []int{0, -4} {
		svg := parseRendered(t, goIcon, size)
		assert.Equal(t, "16", svg.AttrOr("width", ""))
		assert.Equal(t, "16", svg.AttrOr("height", ""))
		assert.Equal(t, "0 0 24 24", svg.AttrOr("viewBox", ""))
	}
}

func TestRenderAcceptsHashPrefixedHex(t *testing.T) {
	ic := goIcon
	ic.Hex = "#FF0000"
	svg := parseRendered(t, ic, 16)
	assert.Equal(t, "#FF0000", svg.AttrOr("fill", ""))
}

func TestRenderKeepsViewBoxCase(t *testing.T) {
	markup, err := HTML(goIcon, 24)
	require.NoError(t, err)
	assert.Contains(t, markup, `viewBox="0 0 24 24"`)
}

func TestParseSVG(t *testing.T) {
	src := `<svg role="img" viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg" fill="#3178c6">
<title>TypeScript</title>
<path d="M1.125 0C.502 0 0 .502 0 1.125v21.75"/>
<path d="M9 9h6"/>
</svg>`

	ic, err := ParseSVG(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "TypeScript", ic.Title)
	assert.Equal(t, "3178C6", ic.Hex)
	assert.Equal(t, "M1.125 0C.502 0 0 .502 0 1.125v21.75", ic.Path)
}

func TestParseSVGFallsBackToPathFill(t *testing.T) {
	src := `<svg viewBox="0 0 24 24"><path fill="#000" d="M0 0h24v24H0z"/></svg>`

	ic, err := ParseSVG(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "000", ic.Hex)
	assert.Empty(t, ic.Title)
}

func TestParseSVGRejectsDocumentsWithoutPath(t *testing.T) {
	for _, src := range []string{
		`<p>not an icon</p>`,
		`<svg viewBox="0 0 24 24"><circle r="4"/></svg>`,
	} {
		_, err := ParseSVG(strings.NewReader(src))
		var validationErr *perrors.ValidationError
		assert.True(t, stderrors.As(err, &validationErr), "source %q: got %v", src, err)
	}
}
