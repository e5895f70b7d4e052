package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/rdtree/pkg/deps"
)

// Tree renders the dependency tree of root as a nested markdown list.
//
// Each line is "- [name](#anchor)", indented two spaces per level. Deep edges
// are expanded recursively; other edges print as a single reference line.
// A deep edge back to a package on the current path, or to a package missing
// from pkgs, also prints as a reference.
func Tree(pkgs deps.Packages, root string) string {
	var buf bytes.Buffer
	t := treeWriter{buf: &buf, pkgs: pkgs, path: make(map[string]bool)}
	t.write(root, "")
	return buf.String()
}

type treeWriter struct {
	buf  *bytes.Buffer
	pkgs deps.Packages
	path map[string]bool // ancestors of the package being written
}

func (t *treeWriter) write(name, indent string) {
	writeItem(t.buf, name, indent)
	rec, ok := t.pkgs[name]
	if !ok {
		return
	}

	t.path[name] = true
	defer delete(t.path, name)

	for _, dep := range rec.Dependencies {
		if t.expand(dep) {
			t.write(dep.Name, indent+"  ")
		} else {
			writeItem(t.buf, dep.Name, indent+"  ")
		}
	}
}

func (t *treeWriter) expand(e deps.Edge) bool {
	if !e.Deep || t.path[e.Name] {
		return false
	}
	_, ok := t.pkgs[e.Name]
	return ok
}

func writeItem(buf *bytes.Buffer, name, indent string) {
	fmt.Fprintf(buf, "%s- [%s](#%s)\n", indent, name, Anchor(name))
}

// Anchor returns the in-page anchor for a package name: the name with every
// "." removed. Other characters are left untouched.
func Anchor(name string) string {
	return strings.ReplaceAll(name, ".", "")
}
