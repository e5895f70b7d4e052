// Package markdown renders resolved dependency graphs as markdown.
//
// [Tree] prints a nested list rooted at the project package, expanding each
// deep edge once. [Table] prints a badge table with one row per package.
// [Write] combines both in the layout used by the CLI:
//
//	- [a](#a)
//	  - [b](#b)
//
//	| package | npm | dependencies | github issues |
//	|:-:|:-:|:-:|:-:|
//	| <h6>...a...</h6> | ... | ... | ... |
//	| <h6>...b...</h6> | ... | ... | ... |
//
// All functions are pure: the same [deps.Packages] always renders the same
// text.
//
// [deps.Packages]: github.com/matzehuels/rdtree/pkg/deps.Packages
package markdown
