package page

import (
	"context"
	"fmt"

	"github.com/kapu/portfolio-client-go/internal/constants"
	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/internal/router"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

type ProfileFetcher interface {
	Fetch(ctx context.Context) (*domain.Profile, error)
}

type ProjectReader interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, error)
}

// RegisterDefaults installs a loader for every routable page.
func RegisterDefaults(registry *Registry, profiles ProfileFetcher, projects ProjectReader) {
	registry.Register(NewLoader(domain.PageHome, func(ctx context.Context, _ router.Page) (*domain.PageData, error) {
		return loadHome(ctx, profiles, projects)
	}))

	registry.Register(NewLoader(domain.PageProject, func(ctx context.Context, p router.Page) (*domain.PageData, error) {
		detail, ok := p.(router.ProjectDetail)
		if !ok {
			return nil, unexpectedPage(domain.PageProject, p)
		}
		return loadProject(ctx, projects, domain.PageProject, detail.ID)
	}))

	registry.Register(NewLoader(domain.PageManage, func(context.Context, router.Page) (*domain.PageData, error) {
		return &domain.PageData{Kind: domain.PageManage}, nil
	}))

	registry.Register(NewLoader(domain.PageManageProfile, func(ctx context.Context, _ router.Page) (*domain.PageData, error) {
		profile, err := profiles.Fetch(ctx)
		if err != nil {
			return nil, errors.NewServiceError("failed to load profile", "profile", "fetch", err)
		}
		return &domain.PageData{Kind: domain.PageManageProfile, Profile: profile}, nil
	}))

	registry.Register(NewLoader(domain.PageManageProjects, func(ctx context.Context, _ router.Page) (*domain.PageData, error) {
		list, err := projects.List(ctx)
		if err != nil {
			return nil, errors.NewServiceError("failed to load projects", "projects", "list", err)
		}
		return &domain.PageData{Kind: domain.PageManageProjects, Projects: list}, nil
	}))

	registry.Register(NewLoader(domain.PageManageProject, func(ctx context.Context, p router.Page) (*domain.PageData, error) {
		manage, ok := p.(router.ManageProject)
		if !ok {
			return nil, unexpectedPage(domain.PageManageProject, p)
		}
		return loadProject(ctx, projects, domain.PageManageProject, manage.ID)
	}))
}

// loadHome fetches the profile and the project list concurrently. Both calls
// run to completion; every failure is reported.
func loadHome(ctx context.Context, profiles ProfileFetcher, projects ProjectReader) (*domain.PageData, error) {
	var (
		profile *domain.Profile
		list    []domain.Project
	)

	p := pool.New().
		WithMaxGoroutines(constants.PageConfig.MaxConcurrency).
		WithErrors().
		WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		result, err := profiles.Fetch(ctx)
		if err != nil {
			return errors.NewServiceError("failed to load profile", "profile", "fetch", err)
		}
		profile = result
		return nil
	})
	p.Go(func(ctx context.Context) error {
		result, err := projects.List(ctx)
		if err != nil {
			return errors.NewServiceError("failed to load projects", "projects", "list", err)
		}
		list = result
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return &domain.PageData{Kind: domain.PageHome, Profile: profile, Projects: list}, nil
}

func loadProject(ctx context.Context, projects ProjectReader, kind domain.PageKind, id int) (*domain.PageData, error) {
	project, err := projects.Get(ctx, id)
	if err != nil {
		return nil, errors.NewServiceError("failed to load project", "projects", "get", err)
	}
	return &domain.PageData{Kind: kind, Project: project}, nil
}

func unexpectedPage(want domain.PageKind, got router.Page) error {
	return fmt.Errorf("%w: loader for %s received %T", ErrUnknownPage, want, got)
}
