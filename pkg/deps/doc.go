// Package deps builds the transitive dependency graph of an npm package.
//
// # Overview
//
// A run starts from a root package, either a local package.json or a package
// name looked up in the registry ([ResolveRoot]), and walks its dependencies
// breadth first with a [Builder]:
//
//	src := javascript.NewSource(npm.NewClient(npm.Options{}))
//	root, err := deps.ResolveRoot(ctx, "express", src, src)
//	if err != nil {
//	    return err
//	}
//	pkgs, err := deps.NewBuilder(src, deps.Options{}).Run(ctx, root)
//
// The result is a [Packages] map with one [Record] per distinct name.
//
// # Resolution
//
// The builder keeps a FIFO worklist of (name, parent) pairs. A name that is
// already recorded is skipped when dequeued, so each package is fetched at
// most once and circular dependencies terminate. Fetches are strictly
// sequential. The first error aborts the run and nothing is returned.
//
// Dependencies are taken from a single version: the highest key of the
// registry "versions" map under loose semver ordering ([LatestVersion]), or
// the flat "dependencies" of a manifest. Version ranges are not evaluated.
//
// # Deep edges
//
// Each [Record] lists its dependencies as [Edge] values sorted by name. When a
// dequeued package is resolved, the edge from the parent that queued it is
// marked Deep. Every resolved package except the root therefore has exactly
// one deep incoming edge, and following deep edges from the root visits a
// spanning tree of the graph. Renderers expand deep edges and print the rest
// as references.
package deps
