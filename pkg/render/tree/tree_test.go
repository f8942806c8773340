package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/sitetree/pkg/dag"
)

type dep = dag.RequiredDistribution

func graph(t *testing.T, nodes map[string]struct {
	version string
	deps    []dep
}) *dag.DAG {
	t.Helper()
	g := dag.New()
	for name, n := range nodes {
		meta, err := dag.NewDistributionMeta(n.version, dag.NewRequirements(n.deps...))
		if err != nil {
			t.Fatal(err)
		}
		g.Set(name, meta)
	}
	return g
}

func render(t *testing.T, g *dag.DAG, roots []string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, g, roots, opts); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestRender(t *testing.T) {
	g := graph(t, map[string]struct {
		version string
		deps    []dep
	}{
		"app":   {"1.0", []dep{{Name: "lib-b", RequiredVersion: ""}, {Name: "lib-a", RequiredVersion: ">=2.0"}}},
		"lib-a": {"2.1", []dep{{Name: "lib-b", RequiredVersion: "<1"}}},
		"lib-b": {"0.3", nil},
	})

	got := render(t, g, g.Roots(), Options{})
	want := strings.Join([]string{
		"app [installed=1.0]",
		"----lib-a [required=>=2.0, installed=2.1]",
		"--------lib-b [required=<1, installed=0.3]",
		"----lib-b [required=Any, installed=0.3]",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderNotInstalled(t *testing.T) {
	g := graph(t, map[string]struct {
		version string
		deps    []dep
	}{
		"pkg": {"1.0", []dep{{Name: "ghost", RequiredVersion: `>=1; extra == "x"`}}},
	})

	got := render(t, g, []string{"pkg"}, Options{})
	want := "pkg [installed=1.0]\n" +
		`----ghost [required=>=1; extra == "x", installed=Not-installed]` + "\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderMissingRoot(t *testing.T) {
	got := render(t, dag.New(), []string{"nothing"}, Options{})
	if got != "nothing [installed=Not-installed]\n" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderCycle(t *testing.T) {
	g := graph(t, map[string]struct {
		version string
		deps    []dep
	}{
		"a": {"1", []dep{{Name: "b", RequiredVersion: ">=1"}}},
		"b": {"2", []dep{{Name: "c", RequiredVersion: ""}}},
		"c": {"3", []dep{{Name: "a", RequiredVersion: "==1"}}},
	})

	got := render(t, g, []string{"a"}, Options{})
	want := strings.Join([]string{
		"a [installed=1]",
		"----b [required=>=1, installed=2]",
		"--------c [required=Any, installed=3]",
		"------------a [required===1, installed=1] (cycle)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderSelfLoop(t *testing.T) {
	g := graph(t, map[string]struct {
		version string
		deps    []dep
	}{
		"self": {"1", []dep{{Name: "self", RequiredVersion: ""}}},
	})

	got := render(t, g, []string{"self"}, Options{})
	want := "self [installed=1]\n----self [required=Any, installed=1] (cycle)\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderDiamondIsNotACycle(t *testing.T) {
	g := graph(t, map[string]struct {
		version string
		deps    []dep
	}{
		"top":   {"1", []dep{{Name: "left", RequiredVersion: ""}, {Name: "right", RequiredVersion: ""}}},
		"left":  {"1", []dep{{Name: "base", RequiredVersion: ""}}},
		"right": {"1", []dep{{Name: "base", RequiredVersion: ""}}},
		"base":  {"1", nil},
	})

	got := render(t, g, []string{"top"}, Options{})
	if strings.Contains(got, CycleMarker) {
		t.Errorf("diamond rendered a cycle:\n%s", got)
	}
	if n := strings.Count(got, "base [required=Any, installed=1]"); n != 2 {
		t.Errorf("base rendered %d times, want 2:\n%s", n, got)
	}
}

func TestRenderComplexVersionsVerbatim(t *testing.T) {
	versions := []string{"1.0a12.dev456", "1.0+abc.5", "1!1.0", "1.0.post456"}
	for _, v := range versions {
		t.Run(v, func(t *testing.T) {
			g := graph(t, map[string]struct {
				version string
				deps    []dep
			}{
				"root": {v, []dep{{Name: "leaf", RequiredVersion: ">= " + v}}},
				"leaf": {v, nil},
			})
			got := render(t, g, g.Roots(), Options{})
			want := "root [installed=" + v + "]\n----leaf [required=>= " + v + ", installed=" + v + "]\n"
			if got != want {
				t.Errorf("Render = %q, want %q", got, want)
			}
		})
	}
}

func TestRenderOptions(t *testing.T) {
	g := graph(t, map[string]struct {
		version string
		deps    []dep
	}{
		"a": {"1", []dep{{Name: "b", RequiredVersion: ""}}},
		"b": {"1", nil},
	})

	var buf bytes.Buffer
	if err := RenderNode(&buf, g, "a", Options{Indent: 2, IndentChar: ' '}); err != nil {
		t.Fatal(err)
	}
	want := "a [installed=1]\n  b [required=Any, installed=1]\n"
	if buf.String() != want {
		t.Errorf("RenderNode = %q, want %q", buf.String(), want)
	}
}
