package auth

import (
	"context"
	"os"
	"strings"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// KeyProvider supplies the API key sent with each request.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKeyProvider returns a fixed key.
type StaticKeyProvider struct {
	key string
}

// NewStaticKeyProvider creates a provider for key.
func NewStaticKeyProvider(key string) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// APIKey returns the key, or pws.ErrAPIKeyMissing when it is blank.
func (p *StaticKeyProvider) APIKey(_ context.Context) (string, error) {
	if strings.TrimSpace(p.key) == "" {
		return "", pws.ErrAPIKeyMissing
	}

	return p.key, nil
}

// EnvKeyProvider reads the key from an environment variable on every call.
type EnvKeyProvider struct {
	variable string
	lookup   func(string) (string, bool)
}

// NewEnvKeyProvider reads PENTEST_WS_API_KEY.
func NewEnvKeyProvider() *EnvKeyProvider {
	return &EnvKeyProvider{variable: constants.APIKeyEnvVar, lookup: os.LookupEnv}
}

// NewEnvKeyProviderWithLookup reads variable through lookup.
func NewEnvKeyProviderWithLookup(variable string, lookup func(string) (string, bool)) *EnvKeyProvider {
	return &EnvKeyProvider{variable: variable, lookup: lookup}
}

// APIKey returns the variable's value, or pws.ErrAPIKeyMissing when unset
// or blank.
func (p *EnvKeyProvider) APIKey(_ context.Context) (string, error) {
	value, ok := p.lookup(p.variable)
	if !ok || strings.TrimSpace(value) == "" {
		return "", pws.ErrAPIKeyMissing
	}

	return value, nil
}

// Resolve picks a provider: the explicit key when given, otherwise the
// environment. It fails with pws.ErrAPIKeyMissing before any request is made.
func Resolve(ctx context.Context, explicit string) (KeyProvider, error) {
	var provider KeyProvider = NewEnvKeyProvider()
	if strings.TrimSpace(explicit) != "" {
		provider = NewStaticKeyProvider(explicit)
	}

	if _, err := provider.APIKey(ctx); err != nil {
		return nil, err
	}

	return provider, nil
}

// Mask hides all but the last few characters of key.
func Mask(key string) string {
	if len(key) <= constants.StringTruncationLimit {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + key[len(key)-constants.StringTruncationLimit:]
}
