package markdown

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/rdtree/pkg/deps"
)

const tableHeader = "| package | npm | dependencies | github issues |\n|:-:|:-:|:-:|:-:|\n"

// Table renders one badge row per package, sorted by name.
//
// The columns link the GitHub repository, the npm version badge, the
// dependency status badge and the open issues badge. The repository slug is
// used as-is, so an empty slug yields links to the GitHub root.
func Table(pkgs deps.Packages) string {
	var buf bytes.Buffer
	buf.WriteString(tableHeader)
	for _, name := range pkgs.Names() {
		writeRow(&buf, name, pkgs[name].GitHub)
	}
	return buf.String()
}

func writeRow(buf *bytes.Buffer, name, gh string) {
	fmt.Fprintf(buf, `| <h6><a href="https://github.com/%s">%s</a></h6> `, gh, name)
	fmt.Fprintf(buf, `| [![](https://img.shields.io/npm/v/%s.svg?style=flat-square)](https://www.npmjs.org/package/%s) `, name, name)
	fmt.Fprintf(buf, `| [![](https://img.shields.io/david/%s.svg?style=flat-square)](https://david-dm.org/%s#info=dependencies) `, gh, gh)
	fmt.Fprintf(buf, "| [![](https://img.shields.io/github/issues-raw/%s.svg?style=flat-square)](https://github.com/%s/issues) |\n", gh, gh)
}

// Write renders the tree of root, a blank line and the table to w.
func Write(w io.Writer, pkgs deps.Packages, root string) error {
	_, err := io.WriteString(w, Tree(pkgs, root)+"\n"+Table(pkgs))
	return err
}
