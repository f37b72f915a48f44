package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scene = `
; two rooms and a chair
(circle :id 1 :name "hall" :x 0 :y 0 :r 10)
(circle :id 2 :name "chair" :x 1 :y 1 :r 1 :facing (vec2 0 1))
(polygon :id 3 :name "shed" :points (list (vec2 20 -2) (vec2 24 -2) (vec2 24 2) (vec2 20 2)))
(query :RCC_PP 1 2)
`

func writeScene(t *testing.T, dir, source string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.lisp")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	path := writeScene(t, t.TempDir(), scene)
	out, _, err := execute(t, "run", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "RCC_PP(1, 2) = 1") {
		t.Errorf("output %q missing query line", out)
	}
}

func TestOrientations(t *testing.T) {
	path := writeScene(t, t.TempDir(), scene)
	out, _, err := execute(t, "orientations", path)
	if err != nil {
		t.Fatalf("orientations: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	if lines[0] != "chair(2) is NE of hall(1)" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "shed(3) is E of hall(1)" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestQuery(t *testing.T) {
	path := writeScene(t, t.TempDir(), scene)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"RCC_DR", "1", "3"}, "1"},
		{[]string{"RCC_PP", "1", "2"}, "1"},
		{[]string{"RCC_PPI", "1", "2"}, "0"},
		{[]string{"ORIENTATION", "1", "3"}, "2 E"},
		{[]string{"ALLOCENTRIC_ORIENTATION", "2", "3"}, "4 S"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, append([]string{"query", path}, tt.args...)...)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	path := writeScene(t, t.TempDir(), scene)
	if _, _, err := execute(t, "query", path, "RCC_EC", "1", "2"); err == nil {
		t.Error("unknown query type should fail")
	}
	if _, _, err := execute(t, "query", path, "RCC_DR", "1", "99"); err == nil {
		t.Error("unknown shape should fail")
	}
	if _, _, err := execute(t, "query", path, "RCC_DR", "one", "2"); err == nil {
		t.Error("non-numeric id should fail")
	}
}

func TestRunReportsScriptErrors(t *testing.T) {
	path := writeScene(t, t.TempDir(), "(circle :id 1 :x 0 :y 0 :r 1)\n(circle :id 1 :x 0 :y 0 :r 2)")
	_, stderr, err := execute(t, "run", path)
	if !errors.Is(err, errEval) {
		t.Fatalf("err = %v, want errEval", err)
	}
	if !strings.Contains(stderr, "duplicate id") {
		t.Errorf("stderr %q does not describe the duplicate id", stderr)
	}
}

func TestSnapshotAndMetrics(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, scene)
	png := filepath.Join(dir, "scene.png")
	out, _, err := execute(t, "run", "--png", png, "--metrics", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(png); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
	if !strings.Contains(out, "srs_inserts_total 3") {
		t.Errorf("metrics output missing insert count:\n%s", out)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, scene)
	cfgPath := filepath.Join(dir, "srs.yaml")
	if err := os.WriteFile(cfgPath, []byte("log:\n  level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "run", "--config", cfgPath, path); err == nil {
		t.Error("invalid config should fail")
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("canvas:\n  scale: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "run", "--config", good, "--log-level", "error", path); err != nil {
		t.Errorf("valid config: %v", err)
	}
	if _, _, err := execute(t, "run", "--config", good, "--log-level", "loud", path); err == nil {
		t.Error("invalid --log-level should fail")
	}
}
