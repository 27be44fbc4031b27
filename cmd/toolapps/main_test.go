package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDigestCommand(t *testing.T) {
	out, err := execute(t, "", "digest", "test")
	require.NoError(t, err)
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08\n", out)

	out, err = execute(t, "a\nb\n", "digest", "-a", "md5")
	require.NoError(t, err)
	assert.Equal(t, "0cc175b9c0f1b6a831c399e269772661\n92eb5ffee6ae2fec3ad71c777531578f\n", out)
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "", "convert", "-d", "base64", "-c", "zstd,zstd-d", "-e", "utf8", "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)

	_, err = execute(t, "", "convert", "-c", "rot13", "x")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	config := "pipelines:\n  b58:\n    encode: base58\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(config), 0o644))

	out, err := execute(t, "", "--config-dir", dir, "run", "b58", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "StV1DL6CwTryKyV\n", out)

	_, err = execute(t, "", "--config-dir", dir, "run", "missing")
	assert.Error(t, err)
}

func TestSchemesCommand(t *testing.T) {
	out, err := execute(t, "", "schemes")
	require.NoError(t, err)
	assert.Contains(t, out, "converters: ")
	assert.Contains(t, out, " base62")
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "schemes")
	assert.Error(t, err)
}
