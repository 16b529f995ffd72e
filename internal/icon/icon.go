package icon

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/portfolio-client-go/internal/constants"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Icon is a brand glyph: a single SVG path drawn in a 24x24 coordinate space.
type Icon struct {
	Slug  string `yaml:"-" json:"slug"`
	Title string `yaml:"title" json:"title"`
	Hex   string `yaml:"hex" json:"hex"`
	Path  string `yaml:"path" json:"path"`
}

// Render builds the <svg> element for ic at size x size units. A size of zero
// or less uses the default. The viewBox never changes with size.
func Render(ic Icon, size int) *html.Node {
	if size <= 0 {
		size = constants.IconConfig.DefaultSize
	}
	dimension := strconv.Itoa(size)

	svg := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Svg,
		Data:     "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: constants.IconConfig.Namespace},
			{Key: "role", Val: "img"},
			{Key: "viewBox", Val: constants.IconConfig.ViewBox},
			{Key: "width", Val: dimension},
			{Key: "height", Val: dimension},
			{Key: "fill", Val: "#" + strings.TrimPrefix(ic.Hex, "#")},
		},
	}
	svg.AppendChild(&html.Node{
		Type: html.ElementNode,
		Data: "path",
		Attr: []html.Attribute{{Key: "d", Val: ic.Path}},
	})
	return svg
}

// HTML renders ic and serialises it as markup.
func HTML(ic Icon, size int) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, Render(ic, size)); err != nil {
		return "", fmt.Errorf("render icon %q: %w", ic.Slug, err)
	}
	return b.String(), nil
}

// ParseSVG reads an existing SVG document and extracts the first path, the
// fill color and the title.
func ParseSVG(r io.Reader) (Icon, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Icon{}, fmt.Errorf("parse svg: %w", err)
	}

	svg := doc.Find("svg").First()
	if svg.Length() == 0 {
		return Icon{}, errors.NewValidationError("document has no <svg> element", "svg", nil)
	}

	path := svg.Find("path").First()
	d, ok := path.Attr("d")
	if !ok || strings.TrimSpace(d) == "" {
		return Icon{}, errors.NewValidationError("svg has no path data", "path", nil)
	}

	fill := svg.AttrOr("fill", "")
	if fill == "" {
		fill = path.AttrOr("fill", "")
	}

	return Icon{
		Title: strings.TrimSpace(svg.Find("title").First().Text()),
		Hex:   strings.ToUpper(strings.TrimPrefix(fill, "#")),
		Path:  d,
	}, nil
}
