package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
aws:
  region: eu-central-1
fleet:
  name_prefix: Node
  extra_tags:
    team: graph
instance:
  instance_type: c5.9xlarge
  subnet_id: subnet-123
  security_group_ids: [sg-1, sg-2]
waiter:
  running_timeout: 5m
  min_delay: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-central-1", cfg.AWS.Region)
	assert.Equal(t, "Node", cfg.Fleet.NamePrefix)
	assert.Equal(t, "-", cfg.Fleet.Separator, "defaults kept for missing fields")
	assert.Equal(t, "Name", cfg.Fleet.NameTagKey)
	assert.Equal(t, map[string]string{"team": "graph"}, cfg.Fleet.ExtraTags)
	assert.Equal(t, "c5.9xlarge", cfg.Instance.InstanceType)
	assert.Equal(t, "ami-09efc42336106d2f2", cfg.Instance.ImageID)
	assert.Equal(t, []string{"sg-1", "sg-2"}, cfg.Instance.SecurityGroupIDs)
	assert.Equal(t, int32(2), cfg.Instance.Metadata.HTTPPutResponseHopLimit)
	assert.Equal(t, 5*time.Minute, cfg.Waiter.RunningTimeout.Duration)
	assert.Equal(t, 10*time.Minute, cfg.Waiter.TerminatedTimeout.Duration)
	assert.Equal(t, 5*time.Second, cfg.Waiter.MinDelay.Duration)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "waiter:\n  running_timeout: soon\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid duration "soon"`)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	def := Default()
	require.NoError(t, def.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "empty prefix", mutate: func(c *Config) { c.Fleet.NamePrefix = "" }, want: "name_prefix"},
		{name: "empty separator", mutate: func(c *Config) { c.Fleet.Separator = "" }, want: "separator"},
		{name: "empty image", mutate: func(c *Config) { c.Instance.ImageID = "" }, want: "image_id"},
		{name: "zero timeout", mutate: func(c *Config) { c.Waiter.TerminatedTimeout = Duration{} }, want: "timeouts"},
		{name: "delays inverted", mutate: func(c *Config) { c.Waiter.MaxDelay = Duration{time.Second} }, want: "min_delay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
