package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/kapu/portfolio-client-go/internal/adapter"
	"github.com/kapu/portfolio-client-go/internal/app"
	"github.com/kapu/portfolio-client-go/internal/config"
	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/internal/util"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const buildTimeout = 30 * time.Second

const (
	outputJSON = "json"
	outputText = "text"
)

// buildFunc assembles the container for one CLI invocation.
type buildFunc func(ctx context.Context, opts globalOptions) (*app.Container, error)

type globalOptions struct {
	apiURL   string
	logLevel string
	output   string
}

type cli struct {
	opts      globalOptions
	build     buildFunc
	container *app.Container
}

func defaultBuild(ctx context.Context, opts globalOptions) (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	buildCtx, cancel := context.WithTimeout(ctx, buildTimeout)
	defer cancel()
	container, err := app.Build(buildCtx, cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble client components", zap.Error(err))
		return nil, err
	}

	logger.Debug("Portfolio client ready",
		zap.String("api_url", container.Client.BaseURL()),
		zap.String("log_level", cfg.Logging.Level),
	)
	return container, nil
}

func newRootCmd(build buildFunc) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Command-line client for the portfolio backend",
		Long: `portfolio talks to the portfolio REST backend.

It resolves site paths to pages, loads the data each page needs,
manages the profile and projects, and renders technology icons.

Configuration is read from .env and the environment:
  PORTFOLIO_API_URL, PORTFOLIO_API_TIMEOUT_SECONDS, PORTFOLIO_ADMIN_TOKEN,
  PORTFOLIO_ICON_CATALOG, LOG_LEVEL, LOG_FILE`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.opts.output != outputJSON && c.opts.output != outputText {
				return errors.NewValidationError("output must be json or text", "output", c.opts.output)
			}
			container, err := c.build(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			c.container = container
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.container != nil {
				_ = c.container.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.opts.apiURL, "api-url", "", "backend base URL (overrides PORTFOLIO_API_URL)")
	root.PersistentFlags().StringVar(&c.opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVarP(&c.opts.output, "output", "o", outputJSON, "output format: json or text")

	root.AddCommand(
		c.resolveCmd(),
		c.pageCmd(),
		c.profileCmd(),
		c.projectsCmd(),
		c.iconCmd(),
	)
	return root
}

// print writes v as indented JSON, or through the text formatter when
// --output=text and v is a type it knows.
func (c *cli) print(w io.Writer, v any) error {
	if c.opts.output != outputText {
		return printJSON(w, v)
	}

	f := adapter.NewTextFormatter("")
	var text string
	switch v := v.(type) {
	case *domain.PageData:
		text = f.FormatPage(v)
	case *domain.Profile:
		text = f.FormatProfile(v)
	case []domain.Project:
		text = f.FormatProjects(v)
	case *domain.Project:
		text = f.FormatProject(v)
	default:
		return printJSON(w, v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printRaw writes a backend body exactly as received.
func printRaw(w io.Writer, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
