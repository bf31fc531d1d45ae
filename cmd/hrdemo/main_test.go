package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run replaces the default slog logger, so these tests do not run in parallel.

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

//
// -----------------------------------------------------------------------------
// Demos
// -----------------------------------------------------------------------------

// TestRun_AllDemos verifies the default run prints every demo in order.
func TestRun_AllDemos(t *testing.T) {
	code, stdout, stderr := runCapture(t)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t,
		"Full-Time Employee\nIntern\n"+
			"HR: Meeting at 3 PM!\nAlice received: Meeting at 3 PM!\nBob received: Meeting at 3 PM!\n"+
			"Notice: Office holiday tomorrow!\nSame instance? true\n",
		stdout)
	assert.Empty(t, stderr)
}

// TestRun_SingleDemoFlag verifies -demo selects one demo.
func TestRun_SingleDemoFlag(t *testing.T) {
	code, stdout, _ := runCapture(t, "-demo", "singleton")

	require.Equal(t, 0, code)
	assert.Equal(t, "Notice: Office holiday tomorrow!\nSame instance? true\n", stdout)
}

// TestRun_ConfigFileAndRoster verifies the config file is read and -roster overrides it.
func TestRun_ConfigFileAndRoster(t *testing.T) {
	roster := writeTemp(t, "roster.yaml", "employees:\n  - name: Dana\n    type: INTERN\n")
	cfg := writeTemp(t, "hrdemo.yaml", "demo:\n  name: factory\n  roster: /does/not/exist.yaml\n")

	code, stdout, stderr := runCapture(t, "-config", cfg, "-roster", roster)

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Dana: Intern\n", stdout)
}

// TestRun_EnvOverride verifies HRDEMO_* variables reach the observer demo.
func TestRun_EnvOverride(t *testing.T) {
	t.Setenv("HRDEMO_NOTICE_MESSAGE", "Pizza friday")

	code, stdout, _ := runCapture(t, "-demo", "observer")

	require.Equal(t, 0, code)
	assert.Equal(t, "HR: Pizza friday\nAlice received: Pizza friday\nBob received: Pizza friday\n", stdout)
}

// TestRun_FlagOverridesInvalidFileDemo verifies -demo repairs a bad demo name from the file.
func TestRun_FlagOverridesInvalidFileDemo(t *testing.T) {
	cfg := writeTemp(t, "hrdemo.yaml", "demo:\n  name: strategy\n")

	code, stdout, stderr := runCapture(t, "-config", cfg, "-demo", "factory")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Full-Time Employee\nIntern\n", stdout)

	code, _, stderr = runCapture(t, "-config", cfg)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "config: unknown demo")
}

// TestRun_EnvSubscribers verifies a space separated subscriber list from the environment.
func TestRun_EnvSubscribers(t *testing.T) {
	t.Setenv("HRDEMO_NOTICE_SUBSCRIBERS", "Carol Dan")

	code, stdout, _ := runCapture(t, "-demo", "observer")

	require.Equal(t, 0, code)
	assert.Equal(t, "HR: Meeting at 3 PM!\nCarol received: Meeting at 3 PM!\nDan received: Meeting at 3 PM!\n", stdout)
}

// TestRun_DebugLogsToStderr verifies logs never mix with demo output.
func TestRun_DebugLogsToStderr(t *testing.T) {
	code, stdout, stderr := runCapture(t, "-demo", "factory", "-log-level", "debug", "-log-format", "json")

	require.Equal(t, 0, code)
	assert.Equal(t, "Full-Time Employee\nIntern\n", stdout)
	assert.Contains(t, stderr, `"msg":"hrdemo: starting"`)
}

//
// -----------------------------------------------------------------------------
// Exit codes
// -----------------------------------------------------------------------------

// TestRun_ExitCodes verifies usage errors exit 2 and runtime errors exit 1.
func TestRun_ExitCodes(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "help", args: []string{"-h"}, wantCode: 0, wantStderr: "usage: hrdemo"},
		{name: "unknown flag", args: []string{"-nope"}, wantCode: 2, wantStderr: "flag provided but not defined"},
		{name: "positional arg", args: []string{"extra"}, wantCode: 2, wantStderr: `unexpected argument "extra"`},
		{name: "bad demo", args: []string{"-demo", "strategy"}, wantCode: 2, wantStderr: "config: unknown demo"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantCode: 2, wantStderr: "config: unknown log format"},
		{name: "missing config", args: []string{"-config", "/does/not/exist.yaml"}, wantCode: 1, wantStderr: "config: load"},
		{name: "missing roster", args: []string{"-demo", "factory", "-roster", "/does/not/exist.yaml"}, wantCode: 1, wantStderr: "app: open roster"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCapture(t, tc.args...)
			assert.Equal(t, tc.wantCode, code)
			assert.Contains(t, stderr, tc.wantStderr)
		})
	}
}
