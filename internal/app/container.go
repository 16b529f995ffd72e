package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kapu/portfolio-client-go/internal/api"
	"github.com/kapu/portfolio-client-go/internal/auth"
	"github.com/kapu/portfolio-client-go/internal/config"
	"github.com/kapu/portfolio-client-go/internal/icon"
	"github.com/kapu/portfolio-client-go/internal/page"
	"github.com/kapu/portfolio-client-go/internal/router"
	"github.com/kapu/portfolio-client-go/internal/service"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// AdminTokenEnv names the variable read when no token was configured up front.
const AdminTokenEnv = "PORTFOLIO_ADMIN_TOKEN"

// Container bundles the assembled client components.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Client      *api.Client
	Profiles    *service.ProfileService
	Projects    *service.ProjectService
	Router      *router.Router
	Pages       *page.Registry
	Dispatcher  *page.Dispatcher
	Icons       *icon.Catalog
	Credentials oauth2.TokenSource
}

// Build wires the HTTP client, resource services, router, page loaders and
// icon catalog. Nothing here talks to the backend.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logger)
	profiles := service.NewProfileService(client, logger)
	projects := service.NewProjectService(client, logger)

	registry := page.NewRegistry()
	page.RegisterDefaults(registry, profiles, projects)
	routes := router.New()

	icons := icon.NewCatalog()
	if cfg.Icons.CatalogPath != "" {
		loaded, err := icon.LoadCatalogFile(cfg.Icons.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load icon catalog: %w", err)
		}
		icons = loaded
		logger.Debug("Icon catalog loaded",
			zap.String("path", cfg.Icons.CatalogPath),
			zap.Int("icons", icons.Len()),
		)
	}

	credentials := auth.FromEnv(AdminTokenEnv)
	if cfg.API.AdminToken != "" {
		credentials = auth.Password(cfg.API.AdminToken)
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Client:      client,
		Profiles:    profiles,
		Projects:    projects,
		Router:      routes,
		Pages:       registry,
		Dispatcher:  page.NewDispatcher(routes, registry, logger),
		Icons:       icons,
		Credentials: credentials,
	}, nil
}

// WithToken returns request options carrying token, or the container's
// configured credentials when token is empty.
func (c *Container) WithToken(token string, headers map[string]string) *service.RequestOptions {
	creds := c.Credentials
	if token != "" {
		creds = auth.Password(token)
	}
	return &service.RequestOptions{Headers: headers, Credentials: creds}
}
