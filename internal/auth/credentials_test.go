package auth

import (
	stderrors "errors"
	"net/http"
	"testing"

	perrors "github.com/kapu/portfolio-client-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordSetsBearerHeaderVerbatim(t *testing.T) {
	token, err := Password("secret123").Token()
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, "http://example.com/profile", nil)
	require.NoError(t, err)
	token.SetAuthHeader(req)

	assert.Equal(t, "Bearer secret123", req.Header.Get("Authorization"))
}

func TestFromEnv(t *testing.T) {
	t.Run("reads current value", func(t *testing.T) {
		t.Setenv("PORTFOLIO_TEST_TOKEN", "abc")
		token, err := FromEnv("PORTFOLIO_TEST_TOKEN").Token()
		require.NoError(t, err)
		assert.Equal(t, "abc", token.AccessToken)
		assert.Equal(t, "Bearer", token.Type())
	})

	t.Run("missing value is a validation error", func(t *testing.T) {
		t.Setenv("PORTFOLIO_TEST_TOKEN", "")
		_, err := FromEnv("PORTFOLIO_TEST_TOKEN").Token()
		require.Error(t, err)

		var validationErr *perrors.ValidationError
		require.True(t, stderrors.As(err, &validationErr))
		assert.Equal(t, "PORTFOLIO_TEST_TOKEN", validationErr.Field)
	})
}
