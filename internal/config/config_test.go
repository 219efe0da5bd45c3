package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"model": "gemini-2.5-pro",
		"max_projects": 1,
		"target_score": 90,
		"use_browser": true
	}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 1, cfg.MaxProjects)
	assert.Equal(t, 90.0, cfg.TargetScore)
	assert.True(t, cfg.UseBrowser)
}

func TestLoad_Errors(t *testing.T) {
	var confErr *ConfigurationError

	_, err := Load("")
	require.ErrorAs(t, err, &confErr)

	_, err = Load(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorAs(t, err, &confErr)

	_, err = Load(writeConfig(t, "{not json"))
	require.ErrorAs(t, err, &confErr)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("TAILOR_MODEL", "gemini-2.5-flash-lite")
	t.Setenv("PORT", "9090")

	cfg := &Config{}
	cfg.FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
}

func TestFromEnv_DoesNotOverrideExplicitValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{APIKey: "file-key"}
	cfg.FromEnv()

	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultMaxProjects, cfg.MaxProjects)
	assert.Equal(t, DefaultBulletDelta, cfg.BulletDelta)
	assert.Equal(t, DefaultTargetScore, cfg.TargetScore)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := &Config{TargetScore: 85}
	assert.NoError(t, valid.Validate())

	cases := []Config{
		{Job: "a.txt", JobURL: "https://example.com"},
		{MaxProjects: -1},
		{MaxIterations: -1},
		{TargetScore: 120},
		{Resume: filepath.Join(t.TempDir(), "absent.txt")},
	}
	for i, cfg := range cases {
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
}

func TestRequireAPIKey(t *testing.T) {
	var confErr *ConfigurationError

	cfg := &Config{}
	require.ErrorAs(t, cfg.RequireAPIKey(), &confErr)
	assert.Contains(t, confErr.Message, "GEMINI_API_KEY")

	cfg.APIKey = "key"
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestMerge_FlagsOverrideFileValues(t *testing.T) {
	cfg := &Config{
		Model:       "gemini-2.5-pro",
		MaxProjects: 1,
		TargetScore: 90,
		Port:        9000,
	}

	cfg.Merge(&Config{Model: "gemini-2.5-flash", BulletDelta: 2, Verbose: true})

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 2, cfg.BulletDelta)
	assert.True(t, cfg.Verbose)
	// Fields the override leaves unset keep the file's values.
	assert.Equal(t, 1, cfg.MaxProjects)
	assert.Equal(t, 90.0, cfg.TargetScore)
	assert.Equal(t, 9000, cfg.Port)
}

func TestMerge_NilOverride(t *testing.T) {
	cfg := &Config{Model: "gemini-2.5-pro"}
	cfg.Merge(nil)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
}
