package icon

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/kapu/portfolio-client-go/internal/util"
	"gopkg.in/yaml.v3"
)

// Catalog maps slugs to icons. Technology names are matched through
// util.NormalizeKey, so "Node.js" finds the "nodedotjs" entry.
type Catalog struct {
	icons map[string]Icon
}

func NewCatalog() *Catalog {
	return &Catalog{icons: make(map[string]Icon)}
}

// LoadCatalog decodes a YAML document of the form
//
//	go:
//	  title: Go
//	  hex: 00ADD8
//	  path: "M1.8 14.3..."
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var raw map[string]Icon
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode icon catalog: %w", err)
	}

	c := NewCatalog()
	for slug, ic := range raw {
		ic.Slug = slug
		c.Add(ic)
	}
	return c, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

func (c *Catalog) Add(ic Icon) {
	if ic.Slug == "" {
		ic.Slug = util.NormalizeKey(ic.Title)
	}
	c.icons[ic.Slug] = ic
}

func (c *Catalog) Get(slug string) (Icon, bool) {
	ic, ok := c.icons[slug]
	return ic, ok
}

// ForTechnology finds the icon for a technology badge by slug or title.
func (c *Catalog) ForTechnology(name string) (Icon, bool) {
	if ic, ok := c.icons[name]; ok {
		return ic, true
	}
	key := util.NormalizeKey(name)
	if key == "" {
		return Icon{}, false
	}
	for _, slug := range c.Slugs() {
		ic := c.icons[slug]
		if util.NormalizeKey(slug) == key || util.NormalizeKey(ic.Title) == key {
			return ic, true
		}
	}
	return Icon{}, false
}

func (c *Catalog) Len() int {
	return len(c.icons)
}

// Slugs returns every slug in sorted order.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, 0, len(c.icons))
	for slug := range c.icons {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Encode writes the catalog back in the format LoadCatalog reads.
func (c *Catalog) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.icons); err != nil {
		return fmt.Errorf("encode icon catalog: %w", err)
	}
	return enc.Close()
}
