package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minigrep/internal/cli"
	"minigrep/internal/config"
	"minigrep/internal/domain"
)

func noEnv(string) (string, bool) { return "", false }

func setup(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(dir, "rust.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const productive = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.\n"

func TestRun_CaseSensitive(t *testing.T) {
	path := setup(t, productive)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run([]string{"Duct", path}, stdout, stderr, noEnv))
	assert.Equal(t, "Duct tape.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_IgnoreCaseFlag(t *testing.T) {
	path := setup(t, productive)
	stdout := &bytes.Buffer{}

	require.NoError(t, run([]string{"-i", "DUCT", path}, stdout, &bytes.Buffer{}, noEnv))
	assert.Equal(t, "safe, fast, productive.\nDuct tape.\n", stdout.String())
}

func TestRun_IgnoreCaseEnv(t *testing.T) {
	path := setup(t, productive)
	stdout := &bytes.Buffer{}
	lookup := func(key string) (string, bool) {
		if key == config.IgnoreCaseEnv {
			return "1", true
		}
		return "", false
	}

	require.NoError(t, run([]string{"DUCT", path}, stdout, &bytes.Buffer{}, lookup))
	assert.Equal(t, "safe, fast, productive.\nDuct tape.\n", stdout.String())
}

func TestRun_ConfigFile(t *testing.T) {
	path := setup(t, productive)
	require.NoError(t, os.WriteFile("minigrep.yaml", []byte("case_insensitive: true\n"), 0o644))
	stdout := &bytes.Buffer{}

	require.NoError(t, run([]string{"pick", path}, stdout, &bytes.Buffer{}, noEnv))
	assert.Equal(t, "Pick three.\n", stdout.String())
}

func TestRun_MissingFilePath(t *testing.T) {
	setup(t, productive)
	stdout := &bytes.Buffer{}

	err := run([]string{"duct"}, stdout, &bytes.Buffer{}, noEnv)
	var missing *domain.MissingArgumentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "file_path", missing.Field)
	assert.Equal(t, 2, cli.ExitCode(err).Code)
	assert.Empty(t, stdout.String())
}

func TestRun_NonexistentFile(t *testing.T) {
	dir := t.TempDir()
	setup(t, productive)
	stdout := &bytes.Buffer{}

	err := run([]string{"duct", filepath.Join(dir, "absent.txt")}, stdout, &bytes.Buffer{}, noEnv)
	var ioErr *domain.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, 1, cli.ExitCode(err).Code)
	assert.Empty(t, stdout.String())
}

func TestRun_Help(t *testing.T) {
	stderr := &bytes.Buffer{}
	require.NoError(t, run([]string{"-h"}, &bytes.Buffer{}, stderr, noEnv))
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	path := setup(t, productive)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run([]string{"-log-level", "debug", "three", path}, stdout, stderr, noEnv))
	assert.Equal(t, "Pick three.\n", stdout.String())
	assert.Contains(t, stderr.String(), "Search finished.")
}

func TestRun_InitConfig(t *testing.T) {
	setup(t, productive)
	stdout := &bytes.Buffer{}

	require.NoError(t, run([]string{"-init-config"}, stdout, &bytes.Buffer{}, noEnv))
	written := filepath.Clean(stdout.String()[:stdout.Len()-1])
	cfg, err := config.Load(written)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.FileExists(t, written)
}

func TestRun_MissingFilePathWithBrokenConfig(t *testing.T) {
	setup(t, productive)
	require.NoError(t, os.WriteFile("minigrep.yaml", []byte("case_insensitive: [\n"), 0o644))

	err := run([]string{"duct"}, &bytes.Buffer{}, &bytes.Buffer{}, noEnv)
	var missing *domain.MissingArgumentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "file_path", missing.Field)
	assert.Equal(t, 2, cli.ExitCode(err).Code)
}

func TestRun_InvalidLogLevelInConfig(t *testing.T) {
	path := setup(t, productive)
	require.NoError(t, os.WriteFile("minigrep.yaml", []byte("log:\n  level: loud\n"), 0o644))

	err := run([]string{"duct", path}, &bytes.Buffer{}, &bytes.Buffer{}, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log.level")
}

func TestRun_InitConfigKeepsExistingFile(t *testing.T) {
	setup(t, productive)
	path, err := config.DefaultUserConfigPath()
	require.NoError(t, err)
	custom := &config.AppConfig{CaseInsensitive: true, Log: config.LogConfig{Level: "debug", Format: "json"}}
	require.NoError(t, config.Save(path, custom))

	err = run([]string{"-init-config"}, &bytes.Buffer{}, &bytes.Buffer{}, noEnv)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "config already exists")

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
