package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/internal/service"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"github.com/spf13/cobra"
)

// writeFlags are shared by the commands that change a project.
type writeFlags struct {
	file    string
	images  []string
	headers []string
	token   string
}

func (f *writeFlags) register(cmd *cobra.Command, withBody bool) {
	if withBody {
		cmd.Flags().StringVarP(&f.file, "file", "f", "", "project JSON file")
		cmd.Flags().StringArrayVar(&f.images, "image", nil, "image file to upload (repeatable)")
		_ = cmd.MarkFlagRequired("file")
	}
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, "extra request header K=V (repeatable)")
	cmd.Flags().StringVar(&f.token, "token", "", "admin token (defaults to PORTFOLIO_ADMIN_TOKEN)")
}

func (c *cli) requestOptions(f *writeFlags) (*service.RequestOptions, error) {
	headers, err := parseHeaders(f.headers)
	if err != nil {
		return nil, err
	}
	return c.container.WithToken(f.token, headers), nil
}

func (c *cli) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List, inspect and manage projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := c.container.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), projects)
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			project, err := c.container.Projects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), project)
		},
	}

	var createFlags writeFlags
	create := &cobra.Command{
		Use:     "create",
		Short:   "Create a project from a JSON file and optional images",
		Example: `  portfolio projects create -f project.json --image shot1.png --image shot2.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, opts, err := c.projectRequest(&createFlags)
			if err != nil {
				return err
			}
			project, err := c.container.Projects.Create(cmd.Context(), form, opts)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), project)
		},
	}
	createFlags.register(create, true)

	var updateFlags writeFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a project with the contents of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form, opts, err := c.projectRequest(&updateFlags)
			if err != nil {
				return err
			}
			project, err := c.container.Projects.Update(cmd.Context(), id, form, opts)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), project)
		},
	}
	updateFlags.register(update, true)

	var deleteFlags writeFlags
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and print the backend response as received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			opts, err := c.requestOptions(&deleteFlags)
			if err != nil {
				return err
			}
			body, err := c.container.Projects.Delete(cmd.Context(), id, opts)
			if err != nil {
				return err
			}
			return printRaw(cmd.OutOrStdout(), body)
		},
	}
	deleteFlags.register(del, false)

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func (c *cli) projectRequest(f *writeFlags) (*service.Form, *service.RequestOptions, error) {
	var project domain.Project
	if err := readJSONFile(f.file, &project); err != nil {
		return nil, nil, err
	}

	uploads := make([]service.FilePart, 0, len(f.images))
	for _, path := range f.images {
		part, err := readImage(path)
		if err != nil {
			return nil, nil, err
		}
		uploads = append(uploads, part)
	}

	form, err := service.ProjectForm(project, uploads...)
	if err != nil {
		return nil, nil, err
	}
	opts, err := c.requestOptions(f)
	if err != nil {
		return nil, nil, err
	}
	return form, opts, nil
}

func readImage(path string) (service.FilePart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return service.FilePart{}, fmt.Errorf("read image: %w", err)
	}
	return service.FilePart{
		Field:       service.DefaultFileField,
		FileName:    filepath.Base(path),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Data:        data,
	}, nil
}

// parseHeaders turns repeated K=V flags into a header map. Later flags win.
func parseHeaders(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.NewValidationError("header must have the form K=V", "header", v)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError("project id must be an integer", "id", raw)
	}
	return id, nil
}
