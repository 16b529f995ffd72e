package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kapu/portfolio-client-go/internal/api"
	"github.com/kapu/portfolio-client-go/internal/constants"
	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"go.uber.org/zap"
)

// ProjectService maps project CRUD onto /projects. Every method issues at most
// one request and never retries.
type ProjectService struct {
	client api.Requester
	logger *zap.Logger
}

func NewProjectService(client api.Requester, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{client: client, logger: logger}
}

// List issues GET /projects.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	path := constants.APIPaths.Projects
	resp, err := s.client.Do(ctx, &api.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		s.logger.Error("Failed to fetch projects", zap.Error(err))
		return nil, err
	}

	projects := []domain.Project{}
	if err := decode(resp.Body, &projects, path); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// Get issues GET /projects/{id}. A missing project surfaces as a 404 APIError.
func (s *ProjectService) Get(ctx context.Context, id int) (*domain.Project, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	path := projectPath(constants.APIPaths.Projects, id)
	resp, err := s.client.Do(ctx, &api.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		s.logger.Error("Failed to fetch project", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	var project domain.Project
	if err := decode(resp.Body, &project, path); err != nil {
		return nil, err
	}
	return &project, nil
}

// Create issues POST /projects with a multipart body.
func (s *ProjectService) Create(ctx context.Context, form *Form, opts *RequestOptions) (*domain.Project, error) {
	return s.send(ctx, http.MethodPost, constants.APIPaths.Projects, form, opts)
}

// Update issues PUT /projects/{id} with the full replacement multipart body.
func (s *ProjectService) Update(ctx context.Context, id int, form *Form, opts *RequestOptions) (*domain.Project, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.send(ctx, http.MethodPut, projectPath(constants.APIPaths.Projects, id), form, opts)
}

// Delete issues DELETE /projects/{id} and returns the backend body as is,
// which may be empty.
func (s *ProjectService) Delete(ctx context.Context, id int, opts *RequestOptions) (json.RawMessage, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	resp, err := s.client.Do(ctx, &api.Request{
		Method:      http.MethodDelete,
		Path:        projectPath(constants.APIPaths.Projects, id),
		Headers:     opts.headers(),
		Credentials: opts.credentials(),
	})
	if err != nil {
		s.logger.Error("Failed to delete project", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}

func (s *ProjectService) send(ctx context.Context, method, path string, form *Form, opts *RequestOptions) (*domain.Project, error) {
	if form == nil {
		return nil, errors.NewValidationError("form payload is required", "form", nil)
	}

	body, contentType, err := form.Encode()
	if err != nil {
		return nil, errors.NewValidationError("form payload is not encodable", "form", err.Error())
	}

	resp, err := s.client.Do(ctx, &api.Request{
		Method:      method,
		Path:        path,
		Body:        body,
		ContentType: contentType,
		Headers:     opts.headers(),
		Credentials: opts.credentials(),
	})
	if err != nil {
		s.logger.Error("Failed to submit project",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	var project domain.Project
	if err := decode(resp.Body, &project, path); err != nil {
		return nil, err
	}
	return &project, nil
}
