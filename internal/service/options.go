package service

import (
	"encoding/json"
	"strconv"

	"github.com/kapu/portfolio-client-go/pkg/errors"
	"golang.org/x/oauth2"
)

// RequestOptions enumerates everything a caller may add to a write request.
type RequestOptions struct {
	// Headers are merged over the defaults; a key present here replaces the
	// default value, keys left out keep it.
	Headers map[string]string
	// Credentials, when set, adds an Authorization header. A caller-supplied
	// Authorization entry in Headers still wins.
	Credentials oauth2.TokenSource
}

func (o *RequestOptions) headers() map[string]string {
	if o == nil {
		return nil
	}
	return o.Headers
}

func (o *RequestOptions) credentials() oauth2.TokenSource {
	if o == nil {
		return nil
	}
	return o.Credentials
}

func validateID(id int) error {
	if id <= 0 {
		return errors.NewValidationError("project id must be a positive integer", "id", id)
	}
	return nil
}

func projectPath(base string, id int) string {
	return base + "/" + strconv.Itoa(id)
}

func decode(body []byte, dest any, url string) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return errors.NewAPIError("failed to decode response", 0, map[string]any{
			"url":  url,
			"body": string(body),
		}).WithCause(err)
	}
	return nil
}
