package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/scafflab/scaffgen/pkg/errors"
)

// manifest is the on-disk form of a catalog:
//
//	[[files]]
//	path = "src/main.cs"
//	content = "..."
//
// or the equivalent YAML `files:` list.
type manifest struct {
	Files []Entry `toml:"files" yaml:"files"`
}

// LoadManifest builds a catalog from a TOML or YAML manifest file, selected
// by extension (.toml, .yaml, .yml). Entry order in the file is catalog
// order, so duplicate paths keep their last-write-wins meaning.
func LoadManifest(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", path)
	}

	var m manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid TOML manifest %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid YAML manifest %s", path)
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported manifest format %q (want .toml, .yaml or .yml)", ext)
	}

	return New(m.Files...), nil
}
