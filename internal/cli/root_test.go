package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sitetree/pkg/errors"
)

// sitePackages writes a small environment:
//
//	app 1.0 -> lib-a >=2.0, ghost (extra)
//	lib-a 2.1
//	tool 0.1 -> lib-a (any)
func sitePackages(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dists := map[string]string{
		"app-1.0.dist-info": "Metadata-Version: 2.1\nName: App\nVersion: 1.0\n" +
			"Requires-Dist: Lib_A>=2.0\nRequires-Dist: ghost; extra == \"x\"\n\nlong description\n",
		"lib_a-2.1.dist-info": "Name: lib_a\nVersion: 2.1\n",
		"tool-0.1.dist-info":  "Name: tool\nVersion: 0.1\nRequires-Dist: lib-a\n",
	}
	for sub, content := range dists {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, sub, "METADATA"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VIRTUAL_ENV", "")

	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	if err == nil {
		t.Fatal("expected an error for a positional argument")
	}
}

func TestRootText(t *testing.T) {
	out, _, err := execute(t, "--path", sitePackages(t))
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	want := strings.Join([]string{
		"app [installed=1.0]",
		`----ghost [required=; extra == "x", installed=Not-installed]`,
		"----lib-a [required=>=2.0, installed=2.1]",
		"tool [installed=0.1]",
		"----lib-a [required=Any, installed=2.1]",
		"",
	}, "\n")
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestRootJSON(t *testing.T) {
	out, _, err := execute(t, "--path", sitePackages(t), "--format", "json")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	var doc struct {
		Roots   []string `json:"roots"`
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if strings.Join(doc.Roots, ",") != "app,tool" || strings.Join(doc.Missing, ",") != "ghost" {
		t.Errorf("roots=%v missing=%v", doc.Roots, doc.Missing)
	}
}

func TestRootDOT(t *testing.T) {
	out, _, err := execute(t, "--path", sitePackages(t), "--format", "dot", "--detailed")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") || !strings.Contains(out, `"app" -> "lib-a" [label=">=2.0"];`) {
		t.Errorf("unexpected DOT:\n%s", out)
	}
}

func TestRootInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--path", sitePackages(t), "--format", "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestRootOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	out, stderr, err := execute(t, "--path", sitePackages(t), "--format", "yaml", "-o", path)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty with -o, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "name: lib-a") {
		t.Errorf("unexpected YAML:\n%s", data)
	}
	if !strings.Contains(stderr, path) {
		t.Errorf("stderr should name the output file, got %q", stderr)
	}
}

func TestRootFailFastAndBestEffort(t *testing.T) {
	dir := sitePackages(t)
	broken := filepath.Join(dir, "broken-1.0.dist-info")
	if err := os.MkdirAll(broken, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(broken, "METADATA"), []byte("Name: broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "--path", dir)
	if !errors.Is(err, errors.ErrCodeMissingVersion) {
		t.Fatalf("error = %v, want MISSING_VERSION", err)
	}
	var report bytes.Buffer
	ReportError(&report, err)
	if !strings.Contains(report.String(), "broken-1.0.dist-info") {
		t.Errorf("reported error should name the broken distribution, got %q", report.String())
	}
	if !strings.Contains(report.String(), "MISSING_VERSION") {
		t.Errorf("reported error should keep the metadata code, got %q", report.String())
	}

	out, stderr, err := execute(t, "--path", dir, "--best-effort")
	if err != nil {
		t.Fatalf("best effort failed: %v", err)
	}
	if !strings.HasPrefix(out, "app [installed=1.0]") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(stderr, "Skipped 1 distributions") {
		t.Errorf("stderr should report the skip, got %q", stderr)
	}
	if !strings.Contains(stderr, "broken-1.0.dist-info") {
		t.Errorf("stderr should name the skipped distribution, got %q", stderr)
	}
}

func TestRootFromSnapshot(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "env.json")
	if _, _, err := execute(t, "--path", sitePackages(t), "-f", "json", "-o", snapshot); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out, _, err := execute(t, "--from", snapshot)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "----lib-a [required=>=2.0, installed=2.1]") {
		t.Errorf("snapshot tree differs:\n%s", out)
	}
}

func TestRootsCommand(t *testing.T) {
	dir := sitePackages(t)

	out, _, err := execute(t, "roots", "--path", dir)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "app==1.0\ntool==0.1\n" {
		t.Errorf("roots = %q", out)
	}

	out, _, err = execute(t, "roots", "--missing", "--path", dir)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "ghost [installed=Not-installed]\n" {
		t.Errorf("roots --missing = %q", out)
	}

	if _, _, err := execute(t, "roots", "extra"); err == nil {
		t.Error("roots should reject positional arguments")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "sitetree") {
		t.Error("bash completion should mention the command name")
	}
}

func TestCompletionFormatValues(t *testing.T) {
	out, _, err := execute(t, cobra.ShellCompRequestCmd, "--format", "")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	for _, f := range []string{"dot", "json", "svg", "text", "yaml"} {
		if !strings.Contains(out, f+"\n") {
			t.Errorf("completions should offer %s, got %q", f, out)
		}
	}
	if _, _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should be rejected")
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, errors.Wrap(errors.ErrCodeInvalidPath, os.ErrNotExist, "read site-packages"))
	out := buf.String()
	if !strings.Contains(out, "read site-packages: file does not exist") || !strings.Contains(out, "code: INVALID_PATH") {
		t.Errorf("ReportError = %q", out)
	}
}
