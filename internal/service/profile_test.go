package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kapu/portfolio-client-go/internal/api"
	"github.com/kapu/portfolio-client-go/internal/auth"
	"github.com/kapu/portfolio-client-go/internal/domain"
	perrors "github.com/kapu/portfolio-client-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/profile", r.URL.Path)
		io.WriteString(w, `{"id":1,"name":"Pedro","summary":"dev","email":"p@example.com",
			"socials":[{"name":"GitHub","url":"https://github.com/p"}]}`)
	}))
	defer server.Close()

	svc := NewProfileService(api.NewClient(server.URL, server.Client(), zap.NewNop()), zap.NewNop())
	profile, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Pedro", profile.Name)
	assert.Equal(t, []domain.SocialLink{{Name: "GitHub", URL: "https://github.com/p"}}, profile.Socials)
	assert.NotNil(t, profile.Educations)
	assert.Empty(t, profile.Educations)
}

func TestProfileUpdateSendsBearerVerbatim(t *testing.T) {
	var (
		authHeader  string
		contentType string
		sent        domain.Profile
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/profile", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		io.WriteString(w, `{"status":"updated"}`)
	}))
	defer server.Close()

	svc := NewProfileService(api.NewClient(server.URL, server.Client(), zap.NewNop()), zap.NewNop())
	profile := &domain.Profile{ID: 1, Name: "Pedro", Email: "p@example.com"}

	body, err := svc.Update(context.Background(), profile, auth.Password("secret123"))
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret123", authHeader)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"status":"updated"}`, string(body))
	assert.Equal(t, "Pedro", sent.Name)
	assert.Nil(t, profile.Socials, "update must not mutate the caller's profile")
}

func TestProfileUpdateRequiresCredentials(t *testing.T) {
	fake := &fakeRequester{}
	svc := NewProfileService(fake, nil)

	_, err := svc.Update(context.Background(), &domain.Profile{}, nil)
	var validationErr *perrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "credentials", validationErr.Field)
	assert.Empty(t, fake.requests)
}

func TestProfileUpdateUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, "bad password")
	}))
	defer server.Close()

	svc := NewProfileService(api.NewClient(server.URL, server.Client(), zap.NewNop()), zap.NewNop())
	_, err := svc.Update(context.Background(), &domain.Profile{ID: 1}, auth.Password("wrong"))

	require.Error(t, err)
	assert.True(t, perrors.IsUnauthorized(err))

	var apiErr *perrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad password", string(apiErr.Body()))
}
