package javascript

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/rdtree/pkg/deps"
	"github.com/matzehuels/rdtree/pkg/errors"
)

// PackageJSON reads package.json manifests. Only the runtime "dependencies"
// are kept; devDependencies and peerDependencies are not part of the graph.
type PackageJSON struct{}

// ReadManifest reads the manifest at path. A read failure is INVALID_INPUT;
// malformed JSON is INVALID_INPUT wrapping PARSE_ERROR.
func (PackageJSON) ReadManifest(path string) (*deps.Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput,
			errors.Wrap(errors.ErrCodeParse, err, "decode JSON"), "parse %s", path)
	}

	return &deps.Info{
		Name:         pkg.Name,
		Homepage:     pkg.Homepage,
		Repository:   pkg.Repository,
		Dependencies: pkg.Dependencies,
	}, nil
}

type packageFile struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Homepage     string            `json:"homepage"`
	Repository   any               `json:"repository"`
	Dependencies map[string]string `json:"dependencies"`
}
