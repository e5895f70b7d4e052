package deps

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeFetcher serves registry documents from memory and records every call.
type fakeFetcher struct {
	docs  map[string]*Info
	errs  map[string]error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, name string) (*Info, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	info, ok := f.docs[name]
	if !ok {
		return nil, fmt.Errorf("no document for %s", name)
	}
	return info, nil
}

// pkg builds a single-version registry document.
func pkg(name string, deps ...string) *Info {
	m := make(map[string]string, len(deps))
	for _, d := range deps {
		m[d] = "*"
	}
	return &Info{Name: name, Versions: map[string]VersionInfo{"1.0.0": {Dependencies: m}}}
}

func manifest(name string, deps ...string) *Info {
	m := make(map[string]string, len(deps))
	for _, d := range deps {
		m[d] = "*"
	}
	return &Info{Name: name, Dependencies: m}
}

func TestBuilderRun(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*Info{
		"b": pkg("b", "d"),
		"c": pkg("c", "d"),
		"d": pkg("d"),
	}}

	pkgs, err := NewBuilder(f, Options{}).Run(context.Background(), manifest("a", "c", "b"))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := Packages{
		"a": {Dependencies: []Edge{{Name: "b", Deep: true}, {Name: "c", Deep: true}}},
		"b": {Dependencies: []Edge{{Name: "d", Deep: true}}},
		"c": {Dependencies: []Edge{{Name: "d", Deep: false}}},
		"d": {Dependencies: []Edge{}},
	}
	if diff := cmp.Diff(want, pkgs); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}

	// Breadth-first, alphabetical within a level, d fetched once.
	if diff := cmp.Diff([]string{"b", "c", "d"}, f.calls); diff != "" {
		t.Errorf("fetch order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderCycle(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*Info{
		"b": pkg("b", "c"),
		"c": pkg("c", "a", "b"),
	}}

	b := NewBuilder(f, Options{})
	pkgs, err := b.Run(context.Background(), manifest("a", "b"))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := Packages{
		"a": {Dependencies: []Edge{{Name: "b", Deep: true}}},
		"b": {Dependencies: []Edge{{Name: "c", Deep: true}}},
		"c": {Dependencies: []Edge{{Name: "a"}, {Name: "b"}}},
	}
	if diff := cmp.Diff(want, pkgs); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
	if b.Fetches() != 2 {
		t.Errorf("Fetches() = %d, want 2", b.Fetches())
	}
}

func TestBuilderFetchesEachNameOnce(t *testing.T) {
	// Every package depends on every other one.
	names := []string{"p1", "p2", "p3", "p4", "p5"}
	docs := make(map[string]*Info)
	for _, n := range names {
		docs[n] = pkg(n, names...)
	}
	f := &fakeFetcher{docs: docs}

	b := NewBuilder(f, Options{})
	pkgs, err := b.Run(context.Background(), manifest("root", names...))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(pkgs) != len(names)+1 {
		t.Errorf("len(packages) = %d, want %d", len(pkgs), len(names)+1)
	}
	if len(f.calls) != len(names) || b.Fetches() != len(names) {
		t.Errorf("fetches = %d (%v), want %d", len(f.calls), f.calls, len(names))
	}

	// Only the root saw its children resolved first.
	for _, e := range pkgs["root"].Dependencies {
		if !e.Deep {
			t.Errorf("root -> %s should be deep", e.Name)
		}
	}
	for _, n := range names {
		for _, e := range pkgs[n].Dependencies {
			if e.Deep {
				t.Errorf("%s -> %s should not be deep", n, e.Name)
			}
		}
	}
}

func TestBuilderRootFromRegistry(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*Info{"ms": pkg("ms")}}
	root := &Info{
		Name:     "debug",
		Homepage: "https://github.com/debug-js/debug#readme",
		Versions: map[string]VersionInfo{
			"2.6.9": {Dependencies: map[string]string{"ms": "2.0.0"}},
			"4.3.4": {Dependencies: map[string]string{"ms": "2.1.2"}},
			"0.1.0": {Dependencies: map[string]string{"stale": "1"}},
		},
	}

	pkgs, err := NewBuilder(f, Options{}).Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := Packages{
		"debug": {Dependencies: []Edge{{Name: "ms", Deep: true}}, GitHub: "debug-js/debug"},
		"ms":    {Dependencies: []Edge{}},
	}
	if diff := cmp.Diff(want, pkgs); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderNameFallback(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*Info{"b": {Versions: map[string]VersionInfo{"1.0.0": {}}}}}

	pkgs, err := NewBuilder(f, Options{}).Run(context.Background(), manifest("a", "b"))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if _, ok := pkgs["b"]; !ok {
		t.Fatalf("record for b missing: %v", pkgs.Names())
	}
	if !pkgs["a"].Dependencies[0].Deep {
		t.Error("a -> b should be deep")
	}
}

func TestBuilderFailFast(t *testing.T) {
	boom := errors.New("registry down")
	f := &fakeFetcher{
		docs: map[string]*Info{"b": pkg("b", "e")},
		errs: map[string]error{"c": boom},
	}

	pkgs, err := NewBuilder(f, Options{}).Run(context.Background(), manifest("a", "b", "c", "d"))
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if pkgs != nil {
		t.Errorf("Run() returned partial result %v", pkgs.Names())
	}
	if diff := cmp.Diff([]string{"b", "c"}, f.calls); diff != "" {
		t.Errorf("fetches after failure (-want +got):\n%s", diff)
	}
}

func TestBuilderCanceled(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*Info{"b": pkg("b")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder(f, Options{}).Run(ctx, manifest("a", "b"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("fetched %v after cancel", f.calls)
	}
}

func TestBuilderLogsRequests(t *testing.T) {
	f := &fakeFetcher{docs: map[string]*Info{"b": pkg("b"), "c": pkg("c")}}
	var lines []string
	opts := Options{Logger: func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}}

	if _, err := NewBuilder(f, opts).Run(context.Background(), manifest("a", "b", "c")); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{"Request b", "Request c"}, lines); diff != "" {
		t.Errorf("log lines mismatch (-want +got):\n%s", diff)
	}
}

type locatingFetcher struct {
	*fakeFetcher
}

func (locatingFetcher) URL(name string) string { return "https://registry.example.com/" + name }

func TestBuilderLogsRequestURLs(t *testing.T) {
	f := locatingFetcher{&fakeFetcher{docs: map[string]*Info{"b": pkg("b")}}}
	var lines []string
	opts := Options{Logger: func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}}

	if _, err := NewBuilder(f, opts).Run(context.Background(), manifest("a", "b")); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{"Request https://registry.example.com/b"}, lines); diff != "" {
		t.Errorf("log lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderLeafRoot(t *testing.T) {
	pkgs, err := NewBuilder(&fakeFetcher{}, Options{}).Run(context.Background(), &Info{Name: "solo"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := Packages{"solo": {Dependencies: []Edge{}}}
	if diff := cmp.Diff(want, pkgs); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}
