package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitControllerConfig(t *testing.T) {
	cfg, err := InitControllerConfig("controller_config.test.toml", "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5*time.Second, cfg.Kubernetes.NodeCacheTTL)
	assert.Equal(t, "default", cfg.Simulation.Namespace)
	assert.Equal(t, time.Second, cfg.Simulation.TickInterval)
	assert.Equal(t, "type=kwok", cfg.Simulation.NodeLabels)
	assert.False(t, cfg.MongoDB.Enabled)
	assert.Equal(t, "simctl", cfg.MongoDB.Password.Value())
	require.NotNil(t, GetConfig())
	assert.Equal(t, cfg.MongoDB.Database, GetConfig().MongoDB.Database)
}

func TestInitControllerConfigEnvOverride(t *testing.T) {
	t.Setenv("SIMCTL_SIMULATION_NAMESPACE", "sim-lab")
	t.Setenv("SIMCTL_SIMULATION_STATUS_INTERVAL", "250ms")

	cfg, err := InitControllerConfig("controller_config.test", "")
	require.NoError(t, err)
	assert.Equal(t, "sim-lab", cfg.Simulation.Namespace)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.StatusInterval)
}

func TestInitControllerConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	content := fmt.Sprintf("[simulation]\nnamespace = %q\n", "minimal")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minimal.toml"), []byte(content), 0o600))

	cfg, err := InitControllerConfig("minimal", dir)
	require.NoError(t, err)
	def := DefaultSimulationConfig()
	assert.Equal(t, "minimal", cfg.Simulation.Namespace)
	assert.Equal(t, def.TickInterval, cfg.Simulation.TickInterval)
	assert.Equal(t, def.ShutdownGrace, cfg.Simulation.ShutdownGrace)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.Kubernetes.Burst)
}

func TestInitControllerConfigMissingFile(t *testing.T) {
	_, err := InitControllerConfig("does_not_exist", t.TempDir())
	require.Error(t, err)
}

func TestSecretValueHidesContent(t *testing.T) {
	secret := SecretValue("hunter2")
	assert.Equal(t, "*******", secret.String())
	assert.Equal(t, "*******", fmt.Sprintf("%v", secret))
	assert.Equal(t, "hunter2", secret.Value())
	assert.Empty(t, SecretValue("").String())
}
