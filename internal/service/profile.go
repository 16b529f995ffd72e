package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/kapu/portfolio-client-go/internal/api"
	"github.com/kapu/portfolio-client-go/internal/constants"
	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ProfileService reads and replaces the singleton profile resource.
type ProfileService struct {
	client api.Requester
	logger *zap.Logger
}

func NewProfileService(client api.Requester, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{client: client, logger: logger}
}

// Fetch issues GET /profile.
func (s *ProfileService) Fetch(ctx context.Context) (*domain.Profile, error) {
	resp, err := s.client.Do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   constants.APIPaths.Profile,
	})
	if err != nil {
		s.logger.Error("Failed to fetch profile", zap.Error(err))
		return nil, err
	}

	var profile domain.Profile
	if err := decode(resp.Body, &profile, constants.APIPaths.Profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update issues PUT /profile with the full replacement payload. The backend
// body is returned untouched.
func (s *ProfileService) Update(ctx context.Context, profile *domain.Profile, creds oauth2.TokenSource) (json.RawMessage, error) {
	if profile == nil {
		return nil, errors.NewValidationError("profile payload is required", "profile", nil)
	}
	if creds == nil {
		return nil, errors.NewValidationError("credentials are required to update the profile", "credentials", nil)
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, errors.NewValidationError("profile is not encodable", "profile", err.Error())
	}

	resp, err := s.client.Do(ctx, &api.Request{
		Method:      http.MethodPut,
		Path:        constants.APIPaths.Profile,
		Body:        bytes.NewReader(payload),
		ContentType: "application/json",
		Credentials: creds,
	})
	if err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, err
	}

	return json.RawMessage(resp.Body), nil
}
