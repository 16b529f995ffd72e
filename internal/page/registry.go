package page

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/internal/router"
)

// ErrUnknownPage is returned when no loader is registered for a page kind.
var ErrUnknownPage = errors.New("unknown page")

// Loader fetches the data a page needs before the view renders it.
type Loader interface {
	Kind() domain.PageKind
	Load(ctx context.Context, page router.Page) (*domain.PageData, error)
}

// LoadFunc adapts a function into a Loader.
type LoadFunc func(ctx context.Context, page router.Page) (*domain.PageData, error)

type funcLoader struct {
	kind domain.PageKind
	fn   LoadFunc
}

func NewLoader(kind domain.PageKind, fn LoadFunc) Loader {
	return &funcLoader{kind: kind, fn: fn}
}

func (l *funcLoader) Kind() domain.PageKind {
	return l.kind
}

func (l *funcLoader) Load(ctx context.Context, page router.Page) (*domain.PageData, error) {
	return l.fn(ctx, page)
}

// Registry stores loaders keyed by page kind.
type Registry struct {
	mu      sync.RWMutex
	loaders map[domain.PageKind]Loader
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[domain.PageKind]Loader),
	}
}

// Register adds a loader, replacing any previous loader for the same kind.
func (r *Registry) Register(loader Loader) {
	if loader == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[loader.Kind()] = loader
}

// Load runs the loader registered for the page's kind.
func (r *Registry) Load(ctx context.Context, page router.Page) (*domain.PageData, error) {
	if r == nil {
		return nil, fmt.Errorf("page registry is nil")
	}
	if page == nil {
		return nil, fmt.Errorf("%w: nil page", ErrUnknownPage)
	}

	loader := r.getLoader(page.Kind())
	if loader == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, page.Kind())
	}

	return loader.Load(ctx, page)
}

// Count returns the number of registered loaders.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loaders)
}

func (r *Registry) getLoader(kind domain.PageKind) Loader {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaders[kind]
}
