package config

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	if err := Initialize(tempDir, log.New(ioutil.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, tempDir, cfg.Dir())
	assert.Equal(t, filepath.Join(tempDir, "history.db"), cfg.HistoryPath())

	t.Run("LoadConfigFile", func(t *testing.T) {
		cfg, err := Load(filepath.Join(tempDir, ConfigurationName))
		assert.Nil(t, err)
		assert.Equal(t, tempDir, cfg.Dir())
	})

	t.Run("ReadEventLog", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "events.log"), []byte("{}\n"), 0600))

		fd, err := cfg.ReadEventLog()
		assert.Nil(t, err)
		fd.Close()
	})
}

func TestInitialize_keepsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte("prompt: custom\ncolor: never\n"), 0600))

	require.NoError(t, initialize(fs, log.New(ioutil.Discard, "", 0)))

	cfg, err := load(fs, "/cfg")
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Prompt)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoad_errors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "prompt: x\ncolour: auto\n",
		"invalid":       "prompt: x\ncolor: rainbow\n",
		"not yaml":      "prompt: [\n",
	}

	for tn, contents := range cases {
		t.Run(tn, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte(contents), 0600))

			_, err := load(fs, "/cfg")
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOrDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().Prompt, cfg.Prompt)
	assert.Equal(t, dir, cfg.Dir())
	assert.Empty(t, cfg.EventLogPath())
	assert.Empty(t, cfg.HistoryPath())
}
