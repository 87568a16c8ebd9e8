package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindLogging(fs)
	BindEmit(fs)
	BindArchive(fs)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.Buffered)
	assert.Zero(t, cfg.Workers)
	assert.Equal(t, "a.zip", cfg.Archive.Output)
	assert.Equal(t, DefaultMembers, cfg.Archive.Members)
	assert.False(t, cfg.Archive.Deflate)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "halite.yaml"), []byte(`
log_format: json
workers: 2
archive:
  output: bot.zip
  members: [MyBot.cpp, hlt.hpp]
`), 0o644))
	t.Setenv("HALITE_WORKERS", "6")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--deflate"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "flag")
	assert.Equal(t, "json", cfg.LogFormat, "file")
	assert.Equal(t, 6, cfg.Workers, "env beats file")
	assert.Equal(t, "bot.zip", cfg.Archive.Output)
	assert.Equal(t, []string{"MyBot.cpp", "hlt.hpp"}, cfg.Archive.Members)
	assert.True(t, cfg.Archive.Deflate)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buffered: true\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Buffered)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, env := range []struct{ key, value string }{
		{"HALITE_LOG_LEVEL", "chatty"},
		{"HALITE_LOG_FORMAT", "xml"},
		{"HALITE_WORKERS", "-1"},
	} {
		t.Run(env.key, func(t *testing.T) {
			t.Setenv(env.key, env.value)
			_, err := Load("", newFlags())
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoadIgnoresUnboundFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	BindLogging(fs)
	fs.StringP("output", "o", "", "protocol destination")
	require.NoError(t, fs.Parse([]string{"-o", "out.txt"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "a.zip", cfg.Archive.Output)
}

func TestLoadAllowsEmptyMembers(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "halite.yaml"), []byte("archive:\n  members: []\n"), 0o644))

	cfg, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Empty(t, cfg.Archive.Members)
}

func TestLoadRejectsBlankMember(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "halite.yaml"), []byte("archive:\n  members: [MyBot.cpp, \"\"]\n"), 0o644))

	_, err := Load("", newFlags())
	assert.ErrorContains(t, err, "invalid config")
}
