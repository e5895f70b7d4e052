package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/rdtree/pkg/buildinfo"
	"github.com/matzehuels/rdtree/pkg/errors"
)

// isolateConfig points the default config location at an empty directory and
// clears the registry environment variable.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(registryEnv, "")
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestConfigDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		dir, err := configDir()
		require.NoError(t, err)
		require.Equal(t, filepath.Join("/tmp/xdg", appName), dir)
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		dir, err := configDir()
		require.NoError(t, err)
		require.Equal(t, filepath.Join(home, ".config", appName), dir)
	})
}

func TestResolveConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := resolveConfig(options{}, changedSet())
	require.NoError(t, err)
	require.Equal(t, config{
		Registry:  defaultRegistry,
		Timeout:   30 * time.Second,
		UserAgent: buildinfo.UserAgent(),
	}, cfg)
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, filepath.Join(dir, appName, "config.toml"), `
registry = "https://file.example.com"
timeout = "5s"
user_agent = "custom/1.0"
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := resolveConfig(options{}, changedSet())
		require.NoError(t, err)
		require.Equal(t, "https://file.example.com", cfg.Registry)
		require.Equal(t, 5*time.Second, cfg.Timeout)
		require.Equal(t, "custom/1.0", cfg.UserAgent)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv(registryEnv, "https://env.example.com")
		cfg, err := resolveConfig(options{}, changedSet())
		require.NoError(t, err)
		require.Equal(t, "https://env.example.com", cfg.Registry)
		require.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv(registryEnv, "https://env.example.com")
		opts := options{registry: "https://flag.example.com", timeout: time.Minute}
		cfg, err := resolveConfig(opts, changedSet("registry", "timeout"))
		require.NoError(t, err)
		require.Equal(t, "https://flag.example.com", cfg.Registry)
		require.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("unchanged flags ignored", func(t *testing.T) {
		opts := options{registry: "https://flag.example.com"}
		cfg, err := resolveConfig(opts, changedSet())
		require.NoError(t, err)
		require.Equal(t, "https://file.example.com", cfg.Registry)
	})
}

func TestResolveConfigPassThrough(t *testing.T) {
	isolateConfig(t)

	cfg, err := resolveConfig(options{silent: true, output: "deps.md"}, changedSet())
	require.NoError(t, err)
	require.True(t, cfg.Silent)
	require.Equal(t, "deps.md", cfg.Output)
}

func TestResolveConfigExplicitFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "rdtree.toml")
	writeConfig(t, path, `registry = "http://localhost:4873"`)

	cfg, err := resolveConfig(options{configPath: path}, changedSet())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:4873", cfg.Registry)
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		opts    options
		changed []string
	}{
		{
			name: "missing explicit file",
			opts: options{configPath: "does-not-exist.toml"},
		},
		{
			name: "malformed toml",
			file: `registry = `,
		},
		{
			name: "bad duration",
			file: `timeout = "soon"`,
		},
		{
			name:    "registry without scheme",
			opts:    options{registry: "registry.npmjs.org"},
			changed: []string{"registry"},
		},
		{
			name:    "zero timeout",
			opts:    options{timeout: 0},
			changed: []string{"timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateConfig(t)
			if tt.file != "" {
				writeConfig(t, filepath.Join(dir, appName, "config.toml"), tt.file)
			}
			_, err := resolveConfig(tt.opts, changedSet(tt.changed...))
			require.Error(t, err)
			require.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
		})
	}
}
