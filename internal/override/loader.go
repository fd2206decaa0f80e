package override

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is a parsed override file.
type File struct {
	Version    string               `yaml:"version"`
	Derived    []string             `yaml:"derives,omitempty"`
	Attributes map[string]Attribute `yaml:"attributes,omitempty"`

	derived map[string]struct{}
}

// Attribute is a manually supplied attribute type and default value.
type Attribute struct {
	Type    string  `yaml:"type,omitempty"`
	Default *string `yaml:"default,omitempty"`
}

// LoadFile loads and parses an override file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse override YAML: %w", err)
	}

	if err := validate(&f); err != nil {
		return nil, err
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values and builds the lookup index.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	f.derived = make(map[string]struct{}, len(f.Derived))
	for _, name := range f.Derived {
		f.derived[strings.TrimSpace(name)] = struct{}{}
	}
}

func validate(f *File) error {
	for _, name := range f.Derived {
		if !isQualified(name) {
			return fmt.Errorf("derives: %q is not of the form <Class>.<property>", name)
		}
	}

	for name := range f.Attributes {
		if !isQualified(name) {
			return fmt.Errorf("attributes: %q is not of the form <Class>.<property>", name)
		}
	}

	return nil
}

func isQualified(name string) bool {
	cls, prop, ok := strings.Cut(strings.TrimSpace(name), ".")
	return ok && cls != "" && prop != "" && !strings.Contains(prop, ".")
}

// Derives reports whether the qualified property is declared derived.
func (f *File) Derives(qualified string) bool {
	if f == nil {
		return false
	}

	if f.derived == nil {
		applyDefaults(f)
	}

	_, ok := f.derived[qualified]

	return ok
}

// Attribute returns the manually supplied type/default for a qualified property.
func (f *File) Attribute(qualified string) (Attribute, bool) {
	if f == nil {
		return Attribute{}, false
	}

	a, ok := f.Attributes[qualified]

	return a, ok
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
