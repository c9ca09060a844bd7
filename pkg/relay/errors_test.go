package relay_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaywire/relay-go/pkg/relay"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()
	t.Run("parses a complete error body", func(t *testing.T) {
		t.Parallel()

		apiErr, err := relay.ParseAPIError([]byte(`{"message":"Invalid API key","code":-1,"status":"error","name":"Invalid_Key"}`))
		require.NoError(t, err)
		assert.Equal(t, "Invalid API key", apiErr.Message)
		assert.Equal(t, -1, apiErr.Code)
		assert.Equal(t, "error", apiErr.Status)
		assert.Equal(t, "Invalid_Key", apiErr.Name)
	})

	t.Run("rejects a body with missing fields", func(t *testing.T) {
		t.Parallel()

		_, err := relay.ParseAPIError([]byte(`{"message":"half"}`))
		require.ErrorIs(t, err, relay.ErrUnstructuredError)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := relay.ParseAPIError([]byte("<html>bad gateway</html>"))
		require.ErrorIs(t, err, relay.ErrUnstructuredError)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		_, err := relay.ParseAPIError(nil)
		require.ErrorIs(t, err, relay.ErrUnstructuredError)
	})
}

func TestNormalizeServerError(t *testing.T) {
	t.Parallel()
	t.Run("keeps a structured body intact", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("server responded with status 500")
		apiErr := relay.NormalizeServerError(500,
			[]byte(`{"message":"Unknown Template welcome","code":5,"status":"error","name":"Unknown_Template"}`), cause)

		assert.Equal(t, "Unknown Template welcome", apiErr.Message)
		assert.Equal(t, 5, apiErr.Code)
		assert.Equal(t, "Unknown_Template", apiErr.Name)
		require.ErrorIs(t, apiErr, cause)
	})

	t.Run("synthesizes from an unusable body", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("server responded with status 502")
		apiErr := relay.NormalizeServerError(502, []byte("upstream timeout"), cause)

		assert.Equal(t, relay.ErrorStatusServer, apiErr.Status)
		assert.Equal(t, relay.ErrorNameServerException, apiErr.Name)
		assert.Equal(t, 502, apiErr.Code)
		assert.Equal(t, cause.Error(), apiErr.Message)
		require.ErrorIs(t, apiErr, cause)
	})

	t.Run("tolerates a nil cause", func(t *testing.T) {
		t.Parallel()

		apiErr := relay.NormalizeServerError(500, nil, nil)

		assert.Equal(t, relay.ErrorNameServerException, apiErr.Name)
		assert.Equal(t, 500, apiErr.Code)
		assert.Empty(t, apiErr.Message)
		assert.NoError(t, errors.Unwrap(apiErr))
	})
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := &relay.APIError{
		Message: "Invalid API key",
		Code:    -1,
		Status:  "error",
		Name:    "Invalid_Key",
	}

	assert.Equal(t, "Invalid_Key: Invalid API key (code: -1)", apiErr.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	invalidKey := relay.NormalizeServerError(500,
		[]byte(`{"message":"Invalid API key","code":-1,"status":"error","name":"Invalid_Key"}`), nil)
	validation := relay.NormalizeServerError(500,
		[]byte(`{"message":"bad payload","code":-2,"status":"error","name":"ValidationError"}`), nil)
	synthesized := relay.NormalizeServerError(502, nil, errors.New("bad gateway"))

	assert.True(t, relay.IsInvalidKey(invalidKey))
	assert.False(t, relay.IsInvalidKey(validation))

	assert.True(t, relay.IsValidationError(validation))
	assert.False(t, relay.IsValidationError(invalidKey))

	assert.True(t, relay.IsServerError(synthesized))
	assert.False(t, relay.IsServerError(invalidKey))

	// Plain errors match no predicate
	plain := errors.New("connection refused")
	assert.False(t, relay.IsInvalidKey(plain))
	assert.False(t, relay.IsServerError(plain))
}
