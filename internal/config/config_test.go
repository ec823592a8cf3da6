package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv 在测试期间真正移除环境变量
// t.Setenv 只负责在测试结束后恢复原值
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetenv(t,
		"ENVIRONMENT",
		"SERVER_PORT",
		"SERVER_SHUTDOWN_TIMEOUT",
		"REGISTRY_MAX_PROBLEMS",
		"DEFAULT_PROBLEM_ENABLED",
		"DEFAULT_PROBLEM_HARD_CONSTRAINT_PENALTY",
	)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100, cfg.Registry.MaxProblems)
	assert.True(t, cfg.DefaultProblem.Enabled)
	assert.Equal(t, 10, cfg.DefaultProblem.HardConstraintPenalty)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("REGISTRY_MAX_PROBLEMS", "5")
	t.Setenv("DEFAULT_PROBLEM_ENABLED", "false")
	t.Setenv("DEFAULT_PROBLEM_HARD_CONSTRAINT_PENALTY", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Registry.MaxProblems)
	assert.False(t, cfg.DefaultProblem.Enabled)
	assert.Equal(t, 25, cfg.DefaultProblem.HardConstraintPenalty)
}

func TestLoadConfigReturnsParseError(t *testing.T) {
	t.Setenv("REGISTRY_MAX_PROBLEMS", "很多")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
