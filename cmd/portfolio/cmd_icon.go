package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kapu/portfolio-client-go/internal/icon"
	"github.com/kapu/portfolio-client-go/internal/util"
	"github.com/spf13/cobra"
)

func (c *cli) iconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Render technology icons and maintain the icon catalog",
	}

	var (
		size        int
		catalogPath string
	)
	render := &cobra.Command{
		Use:   "render <slug|technology>",
		Short: "Print the SVG markup for an icon",
		Example: `  portfolio icon render go --size 24
  portfolio icon render "Node.js" --catalog icons.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalog(catalogPath)
			if err != nil {
				return err
			}
			ic, ok := catalog.Get(args[0])
			if !ok {
				ic, ok = catalog.ForTechnology(args[0])
			}
			if !ok {
				return fmt.Errorf("no icon for %q in catalog", args[0])
			}
			markup, err := icon.HTML(ic, size)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
			return err
		},
	}
	render.Flags().IntVar(&size, "size", 0, "width and height of the rendered icon (default 16)")
	render.Flags().StringVar(&catalogPath, "catalog", "", "icon catalog YAML (defaults to PORTFOLIO_ICON_CATALOG)")

	var (
		slug          string
		importCatalog string
	)
	importCmd := &cobra.Command{
		Use:   "import <file.svg>",
		Short: "Add an icon from an SVG file to the catalog",
		Long: `Add an icon from an SVG file to the catalog.

The first <path> element, the fill color and the <title> are read.
The updated catalog is written back to --catalog; without a catalog
the new entry is printed as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open svg: %w", err)
			}
			defer f.Close()

			ic, err := icon.ParseSVG(f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			ic.Slug = importSlug(slug, ic.Title, args[0])

			path := importCatalog
			if path == "" {
				path = c.container.Config.Icons.CatalogPath
			}
			if path == "" {
				single := icon.NewCatalog()
				single.Add(ic)
				return single.Encode(cmd.OutOrStdout())
			}

			catalog, err := icon.LoadCatalogFile(path)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				catalog = icon.NewCatalog()
			}
			catalog.Add(ic)
			return writeCatalog(path, catalog)
		},
	}
	importCmd.Flags().StringVar(&slug, "slug", "", "catalog slug (defaults to the normalized title or file name)")
	importCmd.Flags().StringVar(&importCatalog, "catalog", "", "icon catalog YAML to update (defaults to PORTFOLIO_ICON_CATALOG)")

	cmd.AddCommand(render, importCmd)
	return cmd
}

func (c *cli) catalog(path string) (*icon.Catalog, error) {
	if path == "" {
		return c.container.Icons, nil
	}
	return icon.LoadCatalogFile(path)
}

func importSlug(flag, title, file string) string {
	if flag != "" {
		return flag
	}
	if key := util.NormalizeKey(title); key != "" {
		return key
	}
	return util.NormalizeKey(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
}

func writeCatalog(path string, catalog *icon.Catalog) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".icons-*.yaml")
	if err != nil {
		return fmt.Errorf("write icon catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := catalog.Encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write icon catalog: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
