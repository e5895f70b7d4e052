package deps

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/rdtree/pkg/errors"
)

// ResolveRoot loads the root package for a run.
//
// An empty input means DefaultManifest in the working directory. The input is
// first read as a local manifest, without any registry request. If that fails
// and the input names a package.json file, the manifest error is returned as
// INVALID_INPUT. Otherwise the input is taken as a package name and fetched.
func ResolveRoot(ctx context.Context, input string, m ManifestReader, f Fetcher) (*Info, error) {
	path := input
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "working directory")
		}
		path = filepath.Join(wd, DefaultManifest)
	}

	info, err := m.ReadManifest(path)
	if err == nil {
		if info.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "manifest %s has no name", path)
		}
		return info, nil
	}
	if LooksLikeManifest(path) {
		if errors.Is(err, errors.ErrCodeInvalidInput) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read manifest %s", path)
	}

	name := strings.TrimSpace(input)
	if err := errors.ValidateNpmPackageName(name); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%q is neither a manifest nor a package name", input)
	}
	info, err = f.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	if info.Name == "" {
		info.Name = name
	}
	return info, nil
}

// LooksLikeManifest reports whether path names a package.json file.
func LooksLikeManifest(path string) bool {
	return strings.HasSuffix(path, DefaultManifest)
}
