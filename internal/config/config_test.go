package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/core/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "STORAGE_DRIVER", "REDIS_ADDR",
		"TODO_MAX_TITLE_LENGTH", "TODO_MAX_DESCRIPTION_LENGTH", "TODO_MAX_PER_OWNER",
		"TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Empty(t, cfg.RedisAddr)
	assert.Nil(t, cfg.TrustedProxies)
	assert.Equal(t, domain.DefaultLimits(), cfg.Limits)
}

func TestLoadConfig_OverridesLimits(t *testing.T) {
	t.Setenv("TODO_MAX_TITLE_LENGTH", "20")
	t.Setenv("TODO_MAX_DESCRIPTION_LENGTH", "40")
	t.Setenv("TODO_MAX_PER_OWNER", "3")
	t.Setenv("STORAGE_DRIVER", "MySQL")

	cfg := LoadConfig()

	assert.Equal(t, domain.Limits{
		MaxTitleLength:       20,
		MaxDescriptionLength: 40,
		MaxTodosPerOwner:     3,
	}, cfg.Limits)
	assert.Equal(t, StorageMySQL, cfg.StorageDriver)
}

func TestLoadConfig_InvalidLimitsFallBackToDefaults(t *testing.T) {
	t.Setenv("TODO_MAX_TITLE_LENGTH", "abc")
	t.Setenv("TODO_MAX_DESCRIPTION_LENGTH", "-1")
	t.Setenv("TODO_MAX_PER_OWNER", "0")

	cfg := LoadConfig()

	assert.Equal(t, domain.DefaultLimits(), cfg.Limits)
}

func TestParseTrustedProxies(t *testing.T) {
	assert.Nil(t, parseTrustedProxies(""))
	assert.Nil(t, parseTrustedProxies(" , ,"))
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, parseTrustedProxies(" 10.0.0.1, ,192.168.0.0/16 "))
}
