package auth

import (
	"os"

	"github.com/kapu/portfolio-client-go/pkg/errors"
	"golang.org/x/oauth2"
)

// Password wraps the management password as a bearer token source. The value
// is forwarded verbatim.
func Password(password string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: password,
		TokenType:   "Bearer",
	})
}

type envSource struct {
	key string
}

// FromEnv reads the bearer value from the named environment variable on each
// Token call, so rotating the variable takes effect without rebuilding clients.
func FromEnv(key string) oauth2.TokenSource {
	return envSource{key: key}
}

func (s envSource) Token() (*oauth2.Token, error) {
	value := os.Getenv(s.key)
	if value == "" {
		return nil, errors.NewValidationError("credential not set", s.key, "")
	}
	return &oauth2.Token{AccessToken: value, TokenType: "Bearer"}, nil
}
