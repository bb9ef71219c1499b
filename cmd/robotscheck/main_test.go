package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRobotsTxt(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "robots.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunAllowed(t *testing.T) {
	path := writeRobotsTxt(t, "User-agent: FooBot\nAllow: /\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "FooBot", "http://example.com/x"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ALLOWED")
}

func TestRunDisallowed(t *testing.T) {
	path := writeRobotsTxt(t, "User-agent: FooBot\nDisallow: /\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "FooBot", "http://example.com/x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errDisallowed, err)
	assert.Contains(t, out.String(), "DISALLOWED")
}

func TestRunMultipleUserAgentsAnyAllowed(t *testing.T) {
	path := writeRobotsTxt(t, "User-agent: FooBot\nAllow: /\nUser-agent: BarBot\nDisallow: /\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "BarBot,FooBot", "http://example.com/x"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ALLOWED")
}

func TestRunMissingFile(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.txt"), "FooBot", "http://example.com/x"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.NotEqual(t, errDisallowed, err)
}

func TestRunVerbosePrintsWarnings(t *testing.T) {
	path := writeRobotsTxt(t, "garbage-line\nUser-agent: FooBot\nAllow: /\n")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"-v", path, "FooBot", "http://example.com/x"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "line 1")
}

func TestRunWrongArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"only-one-arg"})
	err := cmd.Execute()
	require.Error(t, err)
}
