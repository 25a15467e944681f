// internal/cli/options_test.go
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func envOf(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func mustParse(t *testing.T, env map[string]string, args ...string) Options {
	t.Helper()
	var out bytes.Buffer
	opts, err := Parse(context.Background(), StandardTable, args, envOf(env), &out)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func parseErr(t *testing.T, env map[string]string, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	_, err := Parse(context.Background(), StandardTable, args, envOf(env), &out)
	if err == nil {
		t.Fatalf("expected error for %v", args)
	}
	return err
}

func TestRequiredOK(t *testing.T) {
	o := mustParse(t, nil, "--src", "in.fa", "--out-dir", "out")
	if o.Src != "in.fa" || o.OutDir != "out" {
		t.Fatalf("bad parse %+v", o)
	}
	if o.Format != "compact" || o.Flank != 15 || o.MaxAttempts != 10000 || o.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", o)
	}
}

func TestShortFlags(t *testing.T) {
	o := mustParse(t, nil, "-i", "in.fa", "-o", "out", "-v", "-n", "20", "-k", "-q")
	if o.Format != "verbose" || o.Flank != 20 || !o.KeepGoing || !o.Quiet {
		t.Fatalf("bad parse %+v", o)
	}
}

func TestErrorMissingSrc(t *testing.T) {
	err := parseErr(t, nil, "--out-dir", "out")
	if !strings.Contains(err.Error(), "missing --src argument") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestErrorMissingOutDir(t *testing.T) {
	err := parseErr(t, nil, "--src", "in.fa")
	if !strings.Contains(err.Error(), "missing --out-dir argument") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestErrorInvalidValues(t *testing.T) {
	cases := [][]string{
		{"--format", "xml"},
		{"--flank", "-1"},
		{"--max-attempts", "0"},
		{"--log-level", "loud"},
		{"--masked-fasta", "masked.txt"},
		{"--verbose", "--format", "jsonl"},
		{"--bogus"},
		{"positional"},
	}
	for _, extra := range cases {
		args := append([]string{"-i", "in.fa", "-o", "out"}, extra...)
		parseErr(t, nil, args...)
	}
}

func TestHelpAndVersion(t *testing.T) {
	for _, arg := range []string{"--help", "-h", "--version"} {
		var out bytes.Buffer
		_, err := Parse(context.Background(), StandardTable, []string{arg}, envOf(nil), &out)
		if !errors.Is(err, ErrPrintedAndExitOK) {
			t.Fatalf("%s: want ErrPrintedAndExitOK, got %v", arg, err)
		}
		if out.Len() == 0 {
			t.Fatalf("%s: nothing printed", arg)
		}
	}
}

func TestEnvOverridesFileAndFlagsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "drach.yaml")
	yml := "src: from-file.fa\nout_dir: file-out\nflank: 9\nformat: jsonl\nseed: 3\n"
	if err := os.WriteFile(cfg, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{"DRACH_FLANK": "11", "DRACH_OUT_DIR": "env-out"}

	o := mustParse(t, env, "--config", cfg)
	if o.Src != "from-file.fa" || o.OutDir != "env-out" || o.Flank != 11 || o.Format != "jsonl" || o.Seed != 3 {
		t.Fatalf("file/env merge wrong: %+v", o)
	}

	o = mustParse(t, env, "--config", cfg, "--flank", "4", "-o", "flag-out")
	if o.Flank != 4 || o.OutDir != "flag-out" {
		t.Fatalf("flags must win: %+v", o)
	}
}

func TestConfigFromEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(cfg, []byte("src: a.fa\nout_dir: o\nkeep_going: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, map[string]string{"DRACH_CONFIG": cfg})
	if o.Src != "a.fa" || !o.KeepGoing || o.Config != cfg {
		t.Fatalf("config via env not loaded: %+v", o)
	}
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("src: a.fa\nunknown_key: 1\n"), 0o644)
	parseErr(t, nil, "--config", bad)
	parseErr(t, nil, "--config", filepath.Join(dir, "missing.yaml"))
	parseErr(t, map[string]string{"DRACH_FLANK": "many"}, "-i", "a", "-o", "b")
}

func TestEnvLookup_Dotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DRACH_TEST_ONLY_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := EnvLookup(path)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if v, ok := l("DRACH_TEST_ONLY_KEY"); !ok || v != "from-dotenv" {
		t.Fatalf("dotenv value = %q %v", v, ok)
	}
	t.Setenv("DRACH_TEST_ONLY_KEY", "from-process")
	if v, _ := l("DRACH_TEST_ONLY_KEY"); v != "from-process" {
		t.Fatalf("process env must win, got %q", v)
	}
	if _, err := EnvLookup(filepath.Join(dir, "absent.env")); err != nil {
		t.Fatalf("missing dotenv must be ignored: %v", err)
	}
}

func TestStandardTable_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range StandardTable {
		for _, k := range []string{"--" + o.Flag, "-" + o.Short, o.Env} {
			if k == "-" || k == "" {
				continue
			}
			if seen[k] {
				t.Fatalf("duplicate key %q", k)
			}
			seen[k] = true
		}
	}
	if _, ok := StandardTable.Lookup("src"); !ok {
		t.Fatalf("src missing from table")
	}
}
