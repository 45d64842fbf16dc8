package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_ValidationRejectsMissingDataDir verifies that a merged config
// without a data directory fails validation.
func TestBuild_ValidationRejectsMissingDataDir(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Store: Store{Passphrase: "p"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrMissingDataDir)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Store: Store{DataDir: "/from/first"}},
		&StructuredConfig{Store: Store{DataDir: "/from/second", Passphrase: "from-second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from/first", cfg.Store.DataDir)
	assert.Equal(t, "from-second", cfg.Store.Passphrase)
}

// ── withEnv / withJSON / withDefaults ─────────────────────────────────────────

func TestWithEnv_AppendsEnvConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"IDENTITY_DATA_DIR": "/env/dir",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env/dir", b.configs[0].Store.DataDir)
}

func TestWithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_LoadsReferencedFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"store": map[string]any{
			"data_dir":          "/json/dir",
			"strict_corruption": true,
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b = b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json/dir", b.configs[1].Store.DataDir)
	assert.True(t, b.configs[1].Store.StrictCorruption)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/config.json"})
	b = b.withJSON()

	assert.Error(t, b.err)
}

func TestWithDefaults_FillsPassphraseOnly(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, defaultPassphrase, b.configs[0].Store.Passphrase)
	assert.Empty(t, b.configs[0].Store.DataDir)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvWinsOverJSON verifies the documented precedence:
// environment values beat JSON file values, and defaults fill the rest.
func TestGetStructuredConfig_EnvWinsOverJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"store": map[string]any{
			"data_dir":   "/json/dir",
			"passphrase": "json-pass",
		},
	})
	setEnvVars(t, map[string]string{
		"IDENTITY_CONFIG":   path,
		"IDENTITY_DATA_DIR": "/env/dir",
	})

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "/env/dir", cfg.Store.DataDir)
	assert.Equal(t, "json-pass", cfg.Store.Passphrase)
}

// TestGetStructuredConfig_DefaultPassphrase verifies that the compiled-in
// passphrase applies when neither env nor JSON supplies one.
func TestGetStructuredConfig_DefaultPassphrase(t *testing.T) {
	setEnvVars(t, map[string]string{
		"IDENTITY_DATA_DIR": "/env/dir",
	})

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultPassphrase, cfg.Store.Passphrase)
}

// TestGetStructuredConfig_MissingDataDir verifies that validation fails when
// no source supplies a data directory.
func TestGetStructuredConfig_MissingDataDir(t *testing.T) {
	cfg, err := GetStructuredConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDataDir)
}
