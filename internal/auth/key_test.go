package auth_test

import (
	"context"
	"testing"

	"github.com/bjb28/pws-api-wrapper/internal/auth"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]

		return value, ok
	}
}

func TestStaticKeyProvider(t *testing.T) {
	t.Parallel()

	key, err := auth.NewStaticKeyProvider("secret-key").APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret-key", key)

	_, err = auth.NewStaticKeyProvider("  ").APIKey(context.Background())
	require.ErrorIs(t, err, pws.ErrAPIKeyMissing)
}

func TestEnvKeyProvider(t *testing.T) {
	t.Parallel()

	t.Run("reads the variable", func(t *testing.T) {
		t.Parallel()

		provider := auth.NewEnvKeyProviderWithLookup("PENTEST_WS_API_KEY", lookupFrom(map[string]string{"PENTEST_WS_API_KEY": "from-env"}))

		key, err := provider.APIKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "from-env", key)
	})

	t.Run("missing variable", func(t *testing.T) {
		t.Parallel()

		provider := auth.NewEnvKeyProviderWithLookup("PENTEST_WS_API_KEY", lookupFrom(nil))

		_, err := provider.APIKey(context.Background())
		require.ErrorIs(t, err, pws.ErrAPIKeyMissing)
		assert.Contains(t, err.Error(), "https://pentest.ws/settings/api-key")
		assert.False(t, pws.IsValidationError(err))
	})
}

func TestResolve(t *testing.T) {
	t.Setenv("PENTEST_WS_API_KEY", "")

	_, err := auth.Resolve(context.Background(), "")
	require.ErrorIs(t, err, pws.ErrAPIKeyMissing)

	provider, err := auth.Resolve(context.Background(), "explicit")
	require.NoError(t, err)

	key, err := provider.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "explicit", key)

	t.Setenv("PENTEST_WS_API_KEY", "from-env")

	provider, err = auth.Resolve(context.Background(), "")
	require.NoError(t, err)

	key, err = provider.APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
}

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***", auth.Mask("abc"))
	assert.Equal(t, "***wxyz", auth.Mask("abcdefwxyz"))
}
