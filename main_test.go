package main

import (
	"strings"
	"testing"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		msg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
		{name: "invalid flags joined", args: []string{"--bogus", "--pogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus --pogus"},
		{name: "extra args after mode flag", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfoPrefersLinkerValues(t *testing.T) {
	v, c, d := resolveVersionInfo("1.2.0", "abc123", "2026-08-01", "v0.9.9", map[string]string{
		"vcs.revision": "ffffffffffffffffffff",
		"vcs.time":     "2020-01-01T00:00:00Z",
	})
	if v != "1.2.0" || c != "abc123" || d != "2026-08-01" {
		t.Fatalf("linker values not preserved: %s %s %s", v, c, d)
	}
}

func TestResolveVersionInfoFallsBackToBuildInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.4.2", map[string]string{
		"vcs.revision": "0123456789abcdef0123",
		"vcs.time":     "2026-03-15T10:00:00Z",
	})
	if v != "v1.4.2" {
		t.Fatalf("version fallback: got %q", v)
	}
	if c != "0123456789ab" {
		t.Fatalf("commit should be truncated to 12 chars: got %q", c)
	}
	if d != "2026-03-15T10:00:00Z" {
		t.Fatalf("date fallback: got %q", d)
	}
}

func TestResolveVersionInfoIgnoresDevelModuleVersion(t *testing.T) {
	v, _, _ := resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("(devel) must not replace dev version: got %q", v)
	}
}

func TestUsageNamesBinary(t *testing.T) {
	if !strings.Contains(usage(), "unistory") {
		t.Fatalf("usage should mention the binary name: %q", usage())
	}
}
