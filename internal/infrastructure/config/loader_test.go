package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/govalet/internal/domain"
)

func TestEnsure_ScaffoldsInstallHome(t *testing.T) {
	home := t.TempDir()
	source := NewFileSource(home)

	require.NoError(t, source.Ensure())

	for _, dir := range domain.InstallDirectories {
		info, err := os.Stat(filepath.Join(home, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	cfg, err := source.Read()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.TLD)
	assert.Equal(t, "127.0.0.1", cfg.Loopback)
	assert.Equal(t, []string{filepath.Join(home, "Sites")}, cfg.Paths)
}

func TestEnsure_PreservesExistingConfig(t *testing.T) {
	home := t.TempDir()
	source := NewFileSource(home)
	require.NoError(t, os.WriteFile(source.Path(), []byte("tld: dev\nloopback: 127.0.0.1\npaths: [/srv]\n"), 0o644))

	require.NoError(t, source.Ensure())

	cfg, err := source.Read()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.TLD)
	assert.Equal(t, []string{"/srv"}, cfg.Paths)
}

func TestRead_MissingFile(t *testing.T) {
	source := NewFileSource(t.TempDir())

	_, err := source.Read()

	assert.True(t, os.IsNotExist(err))
}

func TestRead_MalformedYaml(t *testing.T) {
	home := t.TempDir()
	source := NewFileSource(home)
	require.NoError(t, os.WriteFile(source.Path(), []byte("tld: [unclosed"), 0o644))

	_, err := source.Read()

	require.Error(t, err)
	assert.Contains(t, err.Error(), source.Path())
}

func TestHomePath_Resolution(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		t.Setenv("GOVALET_HOME", "/env/home")
		source := NewFileSource("/explicit/home")
		assert.Equal(t, "/explicit/home", source.HomePath())
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("GOVALET_HOME", "/env/home")
		source := NewFileSource("")
		assert.Equal(t, "/env/home", source.HomePath())
		assert.Equal(t, filepath.Join("/env/home", domain.ConfigFileName), source.Path())
	})
}

func TestDefaultConfig_ValidatesClean(t *testing.T) {
	source := NewFileSource(t.TempDir())

	assert.NoError(t, source.DefaultConfig().Validate())
}
