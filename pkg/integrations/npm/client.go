package npm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	rderrors "github.com/matzehuels/rdtree/pkg/errors"
	"github.com/matzehuels/rdtree/pkg/integrations"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// PackageInfo is the package document ("packument") served by the registry.
// Only the fields needed to walk dependencies and link repositories are decoded.
type PackageInfo struct {
	Name       string                 `json:"name"`
	Homepage   string                 `json:"homepage"`
	Repository any                    `json:"repository"`
	DistTags   map[string]string      `json:"dist-tags"`
	Versions   map[string]VersionInfo `json:"versions"`
}

// VersionInfo holds the per-version manifest of a package document.
type VersionInfo struct {
	Version      string       `json:"version"`
	Dependencies Dependencies `json:"dependencies"`
}

// Dependencies maps dependency names to version ranges.
//
// Old package documents carry arrays, strings or nested objects here for
// some versions. Anything that is not an object decodes as an empty map, and
// a non-string range decodes as "", so one malformed historic version cannot
// fail the whole document.
type Dependencies map[string]string

func (d *Dependencies) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = Dependencies{}
		return nil
	}
	deps := make(Dependencies, len(raw))
	for name, v := range raw {
		var spec string
		if json.Unmarshal(v, &spec) != nil {
			spec = ""
		}
		deps[name] = spec
	}
	*d = deps
	return nil
}

// Options configures a [Client]. Zero values select the defaults.
type Options struct {
	BaseURL    string        // Registry base URL (default: DefaultRegistry)
	Timeout    time.Duration // Per-request timeout (default: integrations.DefaultTimeout)
	UserAgent  string        // User-Agent header (omitted if empty)
	HTTPClient *http.Client  // Overrides Timeout when set
}

type Client struct {
	*integrations.Client
	baseURL string
}

func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultRegistry
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = integrations.NewHTTPClient(opts.Timeout)
	}
	headers := map[string]string{"Accept": "application/json"}
	if opts.UserAgent != "" {
		headers["User-Agent"] = opts.UserAgent
	}
	return &Client{
		Client:  integrations.NewClient(hc, headers),
		baseURL: base,
	}
}

// URL returns the package document URL for pkg.
func (c *Client) URL(pkg string) string {
	return c.baseURL + "/" + integrations.EscapePackagePath(pkg)
}

// FetchPackage retrieves the full package document for pkg.
// Every failure is a REGISTRY_ERROR; a missing package is also
// PACKAGE_NOT_FOUND and a malformed body is also PARSE_ERROR.
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	pkg = strings.TrimSpace(pkg)
	var info PackageInfo
	if err := c.Get(ctx, c.URL(pkg), &info); err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case errors.Is(err, integrations.ErrNotFound):
			err = rderrors.Wrap(rderrors.ErrCodePackageNotFound, err, "npm package %s", pkg)
		case errors.Is(err, integrations.ErrDecode):
			err = rderrors.Wrap(rderrors.ErrCodeParse, err, "npm package %s", pkg)
		}
		return nil, rderrors.Wrap(rderrors.ErrCodeRegistry, err, "request %s", c.URL(pkg))
	}
	return &info, nil
}
