package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	// Keep the user's config file and environment out of the way.
	t.Setenv("HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if k, _, _ := strings.Cut(kv, "="); strings.HasPrefix(k, "AOC_") {
			t.Setenv(k, "")
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_SampleSingleDay(t *testing.T) {
	out, _, err := execute(t, "--sample", "day02")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "one = 150\ntwo = 900\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRoot_SampleAllDays(t *testing.T) {
	out, _, err := execute(t, "--sample")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{
		"day01: Sonar Sweep\none = 7\ntwo = 5\n",
		"day03: Binary Diagnostic\none = 198\ntwo = 230\n",
		"day04: Giant Squid\none = 4512\ntwo = 1924\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
}

func TestRoot_InputDirAndRecord(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("1\n2\n3\n4\n5\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, _, err := execute(t, "--input-dir", dir, "--record", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "one = 4\ntwo = 2\n" {
		t.Errorf("stdout = %q", out)
	}

	b, err := os.ReadFile(filepath.Join(dir, "answers.toml"))
	if err != nil {
		t.Fatalf("answers file not written: %v", err)
	}
	if !strings.Contains(string(b), "[day01]") {
		t.Errorf("answers file = %q, want a day01 table", b)
	}

	if _, _, err := execute(t, "--input-dir", dir, "--verify", "1"); err != nil {
		t.Fatalf("verify run error = %v", err)
	}
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown day", args: []string{"--sample", "25"}},
		{name: "not a day", args: []string{"--sample", "tomorrow"}},
		{name: "missing input", args: []string{"--input-dir", "/nonexistent/inputs", "1"}},
		{name: "bad log level", args: []string{"--sample", "--log-level", "loud"}},
		{name: "record with sample", args: []string{"--sample", "--record"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Errorf("Execute(%v) returned nil error", tt.args)
			}
		})
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day02.txt"), []byte("down 3\nforward 2\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "input_dir = \"" + filepath.ToSlash(dir) + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := execute(t, "--config", cfgPath, "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "one = 6\ntwo = 12\n" {
		t.Errorf("stdout = %q", out)
	}
}
