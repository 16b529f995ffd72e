package router

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/pkg/errors"
)

// ErrNotFound is returned when no route matches a path.
var ErrNotFound = stderrors.New("no route matches path")

// Entry binds a path pattern to the page it renders.
type Entry struct {
	Pattern string          `json:"pattern"`
	Kind    domain.PageKind `json:"kind"`
}

var table = []Entry{
	{Pattern: "/", Kind: domain.PageHome},
	{Pattern: "/projects/{id}", Kind: domain.PageProject},
	{Pattern: "/manage", Kind: domain.PageManage},
	{Pattern: "/manage/profile", Kind: domain.PageManageProfile},
	{Pattern: "/manage/projects", Kind: domain.PageManageProjects},
	{Pattern: "/manage/projects/{id}", Kind: domain.PageManageProject},
}

// Params holds path parameters exactly as they appeared in the URL.
type Params map[string]string

func (p Params) Get(key string) string {
	return p[key]
}

// Int converts a parameter to a positive integer.
func (p Params) Int(key string) (int, error) {
	raw, ok := p[key]
	if !ok {
		return 0, errors.NewValidationError("missing path parameter", key, nil)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.NewValidationError("path parameter must be a positive integer", key, raw)
	}
	return n, nil
}

type Route struct {
	Kind    domain.PageKind `json:"kind"`
	Pattern string          `json:"pattern"`
	Path    string          `json:"path"`
	Params  Params          `json:"params,omitempty"`
}

// Router resolves browser paths against a chi routing tree. Static segments
// take precedence over parameters, so the most specific pattern wins.
type Router struct {
	mux   *chi.Mux
	kinds map[string]domain.PageKind
}

func New() *Router {
	r := &Router{
		mux:   chi.NewRouter(),
		kinds: make(map[string]domain.PageKind, len(table)),
	}
	for _, e := range table {
		r.mux.Get(e.Pattern, http.NotFound)
		r.kinds[e.Pattern] = e.Kind
	}
	return r
}

// Entries lists the route table in declaration order.
func (r *Router) Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Resolve maps a path to its route. Query string and fragment are ignored and
// a trailing slash is tolerated.
func (r *Router) Resolve(rawPath string) (Route, error) {
	path := cleanPath(rawPath)

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return Route{Kind: domain.PageNotFound, Path: path}, ErrNotFound
	}

	pattern := rctx.RoutePattern()
	kind, ok := r.kinds[pattern]
	if !ok {
		return Route{Kind: domain.PageNotFound, Path: path}, ErrNotFound
	}

	route := Route{Kind: kind, Pattern: pattern, Path: path}
	if n := len(rctx.URLParams.Keys); n > 0 {
		route.Params = make(Params, n)
		for i, key := range rctx.URLParams.Keys {
			route.Params[key] = rctx.URLParams.Values[i]
		}
	}
	return route, nil
}

func cleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
