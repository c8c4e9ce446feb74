package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPattern selects every component below a root.
const DefaultPattern = "**/*.vue"

// Target is one tree of components to transform.
type Target struct {
	Root    string   `yaml:"root" toml:"root"`
	Pattern string   `yaml:"pattern" toml:"pattern"`
	Out     string   `yaml:"out" toml:"out"`
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// Manifest describes a multi-target build, loaded from YAML or TOML.
//
//	workers: 8
//	targets:
//	  - root: src
//	    pattern: "**/*.vue"
//	    out: build/src
//	    exclude: ["**/node_modules/**"]
type Manifest struct {
	Workers int      `yaml:"workers" toml:"workers"`
	Targets []Target `yaml:"targets" toml:"targets"`
}

// LoadManifest reads a manifest, picking the format from the extension.
// Relative roots and outputs are taken relative to the manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", filepath.Ext(path))
	}

	if len(m.Targets) == 0 {
		return nil, fmt.Errorf("manifest %s declares no targets", path)
	}

	dir := filepath.Dir(path)
	for i := range m.Targets {
		t := &m.Targets[i]
		if t.Root == "" {
			return nil, fmt.Errorf("manifest %s: target %d has no root", path, i)
		}
		if t.Pattern == "" {
			t.Pattern = DefaultPattern
		}
		t.Root = relativeTo(dir, t.Root)
		if t.Out != "" {
			t.Out = relativeTo(dir, t.Out)
		}
	}
	return &m, nil
}

func relativeTo(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
