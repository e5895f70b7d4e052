package deps

import (
	"context"
	"maps"
	"slices"
	"strings"
)

// DefaultManifest is the manifest file name read when no input is given.
const DefaultManifest = "package.json"

// Info is the metadata of one package as served by a registry, or as read
// from a local manifest. A registry document carries Versions; a flat
// manifest carries Dependencies directly.
type Info struct {
	Name         string                 // Package name
	Homepage     string                 // Project homepage URL
	Repository   any                    // Repository URL string or {"url": ...} object
	Dependencies map[string]string      // Flat manifest dependencies (name -> range)
	Versions     map[string]VersionInfo // Registry versions (nil for a flat manifest)
}

// VersionInfo is the manifest of a single published version.
type VersionInfo struct {
	Dependencies map[string]string // Runtime dependencies (name -> range)
}

// Fetcher retrieves package metadata from a registry.
type Fetcher interface {
	// Fetch retrieves the full metadata for the named package.
	Fetch(ctx context.Context, name string) (*Info, error)
}

// Locator is implemented by fetchers that can report the URL a package is
// fetched from. The builder uses it for its progress lines.
type Locator interface {
	URL(name string) string
}

// ManifestReader loads a local manifest file.
type ManifestReader interface {
	// ReadManifest reads and decodes the manifest at path.
	ReadManifest(path string) (*Info, error)
}

// Edge is a dependency reference from one record to another package.
// Deep is set once the target has been resolved as a child of the record's
// package; renderers expand deep edges and print the others as leaves.
type Edge struct {
	Name string
	Deep bool
}

// Record is the resolved state of one package.
type Record struct {
	Dependencies []Edge // Sorted by name
	GitHub       string // owner/repo slug, may be empty
}

// Packages maps package names to their resolved records.
type Packages map[string]*Record

// Names returns the package names in lexicographic order.
func (p Packages) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Options configures dependency resolution behavior.
type Options struct {
	Logger func(string, ...any) // Progress callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// LatestDependencies returns the dependencies of the newest version of info.
//
// A flat manifest (no Versions) yields its Dependencies. Otherwise the version
// key that sorts highest under loose semantic versioning is selected; an empty
// Versions map yields nil.
func LatestDependencies(info *Info) map[string]string {
	if info.Versions == nil {
		return info.Dependencies
	}
	latest, ok := LatestVersion(slices.Collect(maps.Keys(info.Versions)))
	if !ok {
		return nil
	}
	return info.Versions[latest].Dependencies
}

// RepositorySlug derives an "owner/repo" slug from the homepage or repository.
//
// The homepage wins over the repository URL. The last two path segments are
// kept and any "#fragment" is dropped, so
// "https://github.com/facebook/react#readme" becomes "facebook/react". The
// source is not checked to be a GitHub URL.
func RepositorySlug(info *Info) string {
	src := info.Homepage
	if src == "" {
		src = repositoryURL(info.Repository)
	}
	parts := strings.Split(src, "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	slug, _, _ := strings.Cut(strings.Join(parts, "/"), "#")
	return slug
}

func repositoryURL(v any) string {
	switch repo := v.(type) {
	case string:
		return repo
	case map[string]any:
		if s, ok := repo["url"].(string); ok {
			return s
		}
	}
	return ""
}
