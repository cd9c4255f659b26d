package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"devcheck/internal/doctor"
)

const catalogFile = "tools.json"

// Catalog is the declarative list of tool checks plus system requirements.
type Catalog struct {
	Version            string                  `json:"version" yaml:"version"`
	Tools              []doctor.ToolDescriptor `json:"tools" yaml:"tools"`
	SystemRequirements doctor.Requirements     `json:"system_requirements" yaml:"system_requirements"`
}

// defaultCatalog is the built-in fallback when no catalog file exists. It
// carries no tools: a machine without a catalog has nothing to check.
var defaultCatalog = Catalog{
	Version: "1.0.0",
	Tools:   []doctor.ToolDescriptor{},
	SystemRequirements: doctor.Requirements{
		MinOSVersion:  "13.0",
		Architectures: []string{"arm64", "x86_64"},
	},
}

// Load reads the catalog from path, or from DefaultPath when path is empty.
// A missing file falls back to the built-in default without error; a file
// that exists but cannot be parsed returns the default alongside the error.
func Load(path string) (Catalog, error) {
	if path == "" {
		path = DefaultPath()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultCatalog, nil
		}
		return defaultCatalog, err
	}
	var c Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &c)
	default:
		err = json.Unmarshal(b, &c)
	}
	if err != nil {
		return defaultCatalog, err
	}
	c.normalize()
	return c, nil
}

// Save writes the catalog as indented JSON, creating parent directories.
func Save(c Catalog, path string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

// normalize trims identifiers, drops empty entries, and applies the command
// default for descriptors that omit a check type.
func (c *Catalog) normalize() {
	tools := make([]doctor.ToolDescriptor, 0, len(c.Tools))
	for _, t := range c.Tools {
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			continue
		}
		if strings.TrimSpace(t.Name) == "" {
			t.Name = t.ID
		}
		if t.Check.Type == "" {
			t.Check.Type = doctor.KindCommand
		}
		tools = append(tools, t)
	}
	c.Tools = tools
}
