package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/straye-as/sales-dashboard/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapGetter map[string]string

func (m mapGetter) GetSecret(_ context.Context, name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", errors.New("secret not found: " + name)
	}
	return v, nil
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		source secrets.SecretSource
		env    string
		want   secrets.SecretSource
	}{
		{secrets.SourceAuto, "development", secrets.SourceEnvironment},
		{secrets.SourceAuto, "", secrets.SourceEnvironment},
		{secrets.SourceAuto, "test", secrets.SourceEnvironment},
		{secrets.SourceAuto, "staging", secrets.SourceVault},
		{secrets.SourceAuto, "production", secrets.SourceVault},
		{secrets.SourceEnvironment, "production", secrets.SourceEnvironment},
		{secrets.SourceVault, "development", secrets.SourceVault},
	}
	for _, tt := range tests {
		t.Run(string(tt.source)+"/"+tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, secrets.ResolveSource(tt.source, tt.env))
		})
	}
}

func TestNewProvider_Environment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	p, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceAuto, Environment: "development"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, secrets.SourceEnvironment, p.Source())

	v, err := p.GetSecret(context.Background(), "JWT_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "from-env", v)

	_, err = p.GetSecret(context.Background(), "NOT_SET_ANYWHERE")
	assert.Error(t, err)
}

func TestNewProvider_VaultNeedsName(t *testing.T) {
	_, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceVault}, zap.NewNop())
	assert.ErrorContains(t, err, "vault name required")

	_, err = secrets.NewProvider(&secrets.ProviderConfig{Source: "s3"}, zap.NewNop())
	assert.ErrorContains(t, err, "unknown secret source")
}

func TestProvider_GetSecretOrEnv(t *testing.T) {
	p := secrets.NewProviderWithGetter(secrets.SourceVault, mapGetter{"POSTGRES-MAIN-HOST": "db.internal"}, zap.NewNop())
	ctx := context.Background()

	v, err := p.GetSecretOrEnv(ctx, "POSTGRES-MAIN-HOST", "DATABASE_HOST_TEST_OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", v)

	t.Setenv("DATABASE_HOST_TEST_OVERRIDE", "localhost")
	v, err = p.GetSecretOrEnv(ctx, "POSTGRES-MAIN-HOST", "DATABASE_HOST_TEST_OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "localhost", v, "an explicit env var wins")

	_, err = p.GetSecretOrEnv(ctx, "MISSING", "MISSING_ENV_TEST")
	assert.Error(t, err)
}
