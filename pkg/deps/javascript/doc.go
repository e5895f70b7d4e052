// Package javascript connects npm packages to the dependency graph builder.
//
// # Overview
//
// [Source] implements both [deps.ManifestReader] and [deps.Fetcher]:
//
//   - package.json manifests are read from disk by [PackageJSON]
//   - every other package is fetched from the npm registry via [npm]
//
// # Usage
//
//	src := javascript.NewSource(npm.NewClient(npm.Options{}))
//	root, _ := deps.ResolveRoot(ctx, "express", src, src)
//	pkgs, _ := deps.NewBuilder(src, deps.Options{}).Run(ctx, root)
//
// Registry documents keep all published versions; the builder picks the
// newest one. A package.json contributes its flat "dependencies" only.
//
// [npm]: github.com/matzehuels/rdtree/pkg/integrations/npm
// [deps.ManifestReader]: github.com/matzehuels/rdtree/pkg/deps.ManifestReader
// [deps.Fetcher]: github.com/matzehuels/rdtree/pkg/deps.Fetcher
package javascript
