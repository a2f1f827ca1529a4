package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("IS_DOCKER", "true")

	require.NoError(t, LoadEnv())
	assert.Equal(t, "3000", Env.Port)
	assert.Equal(t, "eduhub_db", Env.MongoDatabaseName)
	assert.Equal(t, "data/schema_validation.json", Env.SchemaPath)
	assert.False(t, Env.SetupOnStart)
	assert.True(t, Env.SeedOnSetup)
	assert.False(t, Env.IsProduction())
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("IS_DOCKER", "true")
	t.Setenv("EDUHUB_SETUP_ON_START", "true")
	t.Setenv("EDUHUB_SEED_ON_SETUP", "nope")
	t.Setenv("EDUHUB_CACHE_TTL_SECONDS", "60")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("EDUHUB_ADMIN_PASSWORD", "a-real-password")

	require.NoError(t, LoadEnv())
	assert.True(t, Env.SetupOnStart)
	assert.True(t, Env.SeedOnSetup, "invalid bool falls back to the default")
	assert.Equal(t, 60, Env.CacheTTLSeconds)
	assert.True(t, Env.IsProduction())
}

func TestLoadEnv_RejectsBadURI(t *testing.T) {
	t.Setenv("IS_DOCKER", "true")
	t.Setenv("EDUHUB_MONGODB_URI", "localhost:27017")

	err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDUHUB_MONGODB_URI")
}

func TestLoadEnv_ProductionRejectsDefaultCredentials(t *testing.T) {
	t.Setenv("IS_DOCKER", "true")
	t.Setenv("ENVIRONMENT", "PRODUCTION")

	err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	err = LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDUHUB_ADMIN_PASSWORD")

	t.Setenv("EDUHUB_ADMIN_PASSWORD", defaultAdminPassword)
	require.Error(t, LoadEnv(), "explicitly set default is still rejected")

	t.Setenv("EDUHUB_ADMIN_PASSWORD", "a-real-password")
	require.NoError(t, LoadEnv())
}

func TestLoadEnv_DevelopmentAllowsDefaultCredentials(t *testing.T) {
	t.Setenv("IS_DOCKER", "true")
	t.Setenv("ENVIRONMENT", "DEVELOPMENT")

	require.NoError(t, LoadEnv())
	assert.Equal(t, defaultJWTSecret, Env.JWTSecret)
	assert.Equal(t, defaultAdminPassword, Env.AdminPassword)
}
