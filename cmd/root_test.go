package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uptime/internal/uptime"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// procConfig writes a config reading uptime from a fake pseudo-file
func procConfig(t *testing.T, procPath string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("uptime:\n  source: procfs\n  proc_path: %s\n", procPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestHelpPrintsManualWithoutQuery(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			// a missing config would fail the query path, so success means no query ran
			missing := filepath.Join(t.TempDir(), "absent.yaml")

			stdout, stderr, err := execute(t, flag, "-c", missing)
			require.NoError(t, err)
			assert.Equal(t, manPage, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "uptime "+version+"\n", stdout)

	stdout, _, err = execute(t, "-V")
	require.NoError(t, err)
	assert.Equal(t, "uptime "+version+"\n", stdout)
}

func TestPrintsUptimeWithoutNewline(t *testing.T) {
	procPath := filepath.Join(t.TempDir(), "uptime")
	require.NoError(t, os.WriteFile(procPath, []byte("12345.67 100.00\n"), 0644))

	stdout, stderr, err := execute(t, "--config", procConfig(t, procPath))
	require.NoError(t, err)
	assert.Equal(t, "3h 25m 45s", stdout)
	assert.Empty(t, stderr)
}

func TestDefaultInvocation(t *testing.T) {
	if _, err := uptime.NewProvider(uptime.SourceAuto, ""); err != nil {
		t.Skip("no uptime source on this platform")
	}

	stdout, _, err := execute(t)
	if errors.Is(err, uptime.ErrUnavailable) {
		t.Skip("uptime not readable in this environment")
	}
	require.NoError(t, err)
	assert.Regexp(t, `^(\d+d \d+h \d+m \d+s|\d+h \d+m \d+s|\d+m \d+s|\d+s)$`, stdout)
}

func TestQueryFailureIsUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-uptime")

	stdout, _, err := execute(t, "-c", procConfig(t, missing))
	require.Error(t, err)
	assert.ErrorIs(t, err, uptime.ErrUnavailable)
	assert.Empty(t, stdout)
	assert.Equal(t, "error: could not determine system uptime", diagnostic(err))
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, uptime.ErrUnavailable)
	assert.Contains(t, diagnostic(err), "error: configuration file not found")
}

func TestRejectsPositionalArguments(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRejectsUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "--since")
	assert.Error(t, err)
}
