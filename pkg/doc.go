// Package pkg provides the libraries behind rdtree, which prints the recursive
// dependency tree of an npm package as markdown.
//
// # Overview
//
// The pkg directory is organized as follows:
//
//  1. [deps] - Dependency graph collection (root resolution, BFS builder)
//  2. [deps/javascript] - package.json manifests and the npm-backed fetcher
//  3. [integrations] - Shared HTTP client and the npm registry client
//  4. [render/markdown] - Nested list and badge table output
//  5. [errors] - Coded errors and input validation
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The data flow of a run:
//
//	package.json or package name
//	         ↓
//	    [deps.ResolveRoot] (local manifest, else registry)
//	         ↓
//	    [deps.Builder] (breadth-first, one fetch per name)
//	         ↓
//	    [deps.Packages]
//	         ↓
//	    [markdown.Write] (tree, blank line, table)
//
// # Quick Start
//
//	client := npm.NewClient(npm.Options{})
//	src := javascript.NewSource(client)
//
//	root, err := deps.ResolveRoot(ctx, "express", src, src)
//	if err != nil {
//	    return err
//	}
//	pkgs, err := deps.NewBuilder(src, deps.Options{}).Run(ctx, root)
//	if err != nil {
//	    return err
//	}
//	return markdown.Write(os.Stdout, pkgs, root.Name)
//
// [deps]: github.com/matzehuels/rdtree/pkg/deps
// [deps/javascript]: github.com/matzehuels/rdtree/pkg/deps/javascript
// [integrations]: github.com/matzehuels/rdtree/pkg/integrations
// [render/markdown]: github.com/matzehuels/rdtree/pkg/render/markdown
// [errors]: github.com/matzehuels/rdtree/pkg/errors
// [buildinfo]: github.com/matzehuels/rdtree/pkg/buildinfo
// [deps.ResolveRoot]: github.com/matzehuels/rdtree/pkg/deps.ResolveRoot
// [deps.Builder]: github.com/matzehuels/rdtree/pkg/deps.Builder
// [deps.Packages]: github.com/matzehuels/rdtree/pkg/deps.Packages
// [markdown.Write]: github.com/matzehuels/rdtree/pkg/render/markdown.Write
package pkg
