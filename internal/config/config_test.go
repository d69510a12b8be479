package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://env")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("VERIFIER_TIMEOUT", "10s")
	t.Setenv("REDIS_DB", "2")

	conf, err := LoadConfig([]string{"-d", "postgres://flag", "-a", ":9090", "-r", "localhost:6379"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", conf.DatabaseDSN)
	assert.Equal(t, ":9090", conf.RunAddress)
	assert.Equal(t, 10*time.Second, conf.VerifierTimeout)
	assert.Equal(t, "localhost:6379", conf.RedisAddr)
	assert.Equal(t, 2, conf.RedisDB)
	assert.Equal(t, time.Minute, conf.SweepInterval)
	assert.Equal(t, 10*time.Minute, conf.VerificationStaleAfter)
	assert.Equal(t, "http://localhost:8000", conf.VerifierAddress)
}

func TestLoadConfig_Required(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig([]string{"-d", "postgres://flag"})
	require.Error(t, err)

	_, err = LoadConfig(nil)
	require.Error(t, err)

	conf, err := LoadConfig([]string{"-d", "postgres://flag", "-j", "secret"})
	require.NoError(t, err)
	assert.Equal(t, "secret", conf.JWTSecret)
}

func TestLoadConfig_BadFlag(t *testing.T) {
	_, err := LoadConfig([]string{"-unknown"})
	require.Error(t, err)
}
