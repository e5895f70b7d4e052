package javascript

import (
	"context"

	"github.com/matzehuels/rdtree/pkg/deps"
	"github.com/matzehuels/rdtree/pkg/integrations/npm"
)

// Source resolves JavaScript packages: local package.json manifests for the
// root and the npm registry for everything else.
type Source struct {
	PackageJSON
	client *npm.Client
}

// NewSource creates a Source backed by the given npm client.
func NewSource(c *npm.Client) *Source {
	return &Source{client: c}
}

// Fetch implements [deps.Fetcher] using the npm registry.
func (s *Source) Fetch(ctx context.Context, name string) (*deps.Info, error) {
	p, err := s.client.FetchPackage(ctx, name)
	if err != nil {
		return nil, err
	}
	return toInfo(p), nil
}

// URL implements [deps.Locator].
func (s *Source) URL(name string) string {
	return s.client.URL(name)
}

func toInfo(p *npm.PackageInfo) *deps.Info {
	versions := make(map[string]deps.VersionInfo, len(p.Versions))
	for v, details := range p.Versions {
		versions[v] = deps.VersionInfo{Dependencies: details.Dependencies}
	}
	return &deps.Info{
		Name:       p.Name,
		Homepage:   p.Homepage,
		Repository: p.Repository,
		Versions:   versions,
	}
}
