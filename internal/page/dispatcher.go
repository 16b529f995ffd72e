package page

import (
	"context"

	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/internal/router"
	"go.uber.org/zap"
)

// Dispatcher resolves a browser path and runs the matching loader.
type Dispatcher struct {
	router   *router.Router
	registry *Registry
	logger   *zap.Logger
}

func NewDispatcher(r *router.Router, registry *Registry, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{router: r, registry: registry, logger: logger}
}

// Dispatch returns the resolved route alongside the loaded data so the view can
// render not-found and error states itself.
func (d *Dispatcher) Dispatch(ctx context.Context, path string) (router.Route, *domain.PageData, error) {
	route, err := d.router.Resolve(path)
	if err != nil {
		d.logger.Debug("No route for path", zap.String("path", path))
		return route, nil, err
	}

	page, err := route.Page()
	if err != nil {
		d.logger.Debug("Invalid route parameters",
			zap.String("path", path),
			zap.String("kind", route.Kind.String()),
			zap.Error(err),
		)
		return route, nil, err
	}

	data, err := d.registry.Load(ctx, page)
	if err != nil {
		d.logger.Warn("Page load failed",
			zap.String("path", route.Path),
			zap.String("kind", route.Kind.String()),
			zap.Error(err),
		)
		return route, nil, err
	}

	d.logger.Debug("Page loaded",
		zap.String("path", route.Path),
		zap.String("kind", route.Kind.String()),
		zap.Bool("management", route.Kind.IsManagement()),
	)
	return route, data, nil
}
