package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/lily/dyn"
	"github.com/soypat/lily/intrinsic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	t.Setenv("LILY_LOG_LEVEL", "")
	t.Setenv("LILY_CONSOLE_OUTPUT", "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cfgPath := filepath.Join(t.TempDir(), "lily.yaml")
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err = cmd.Execute()
	return out.String(), err
}

func TestHelloCommand(t *testing.T) {
	out, err := run(t, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello world!\n", out)
}

func TestSumCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"sum", "1.0", "2.0", "3.0"}, want: "6\n"},
		{args: []string{"sum"}, want: "0\n"},
		{args: []string{"sum", "1", "0.5"}, want: "1.5\n"},
	}
	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, "args %v", tt.args)
		assert.Equal(t, tt.want, out, "args %v", tt.args)
	}
}

func TestSumCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 1.0\n- 2.0\n- 3.0\n"), 0644))
	out, err := run(t, "sum", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	_, err = run(t, "sum", "--file", path, "4")
	assert.Equal(t, 2, intrinsic.ExitCode(err))
}

func TestSumCommandMismatch(t *testing.T) {
	_, err := run(t, "sum", "1.0", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dyn.ErrKindMismatch))
	assert.Equal(t, 1, intrinsic.ExitCode(err))
}

func TestSumIntCommand(t *testing.T) {
	out, err := run(t, "sumint", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	_, err = run(t, "sumint", "1", "two")
	assert.Equal(t, 2, intrinsic.ExitCode(err))
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	golden, err := os.ReadFile("../../testdata/demo.golden")
	require.NoError(t, err)
	assert.Equal(t, string(golden), out)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "level: warn")
	assert.Contains(t, out, "output: stdout")
}

func TestConsolePrefixFromConfig(t *testing.T) {
	t.Setenv("LILY_LOG_LEVEL", "")
	t.Setenv("LILY_CONSOLE_OUTPUT", "")
	cfgPath := filepath.Join(t.TempDir(), "lily.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("console:\n  prefix: '> '\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd(&out, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "hello"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "> Hello world!\n", out.String())
}

func TestBadConfigExitCode(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "lily.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: loud\n"), 0644))
	cmd := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "hello"})
	err := cmd.Execute()
	assert.Equal(t, 2, intrinsic.ExitCode(err))
}
