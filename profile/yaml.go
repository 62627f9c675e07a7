package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a profile from a YAML file. If the document names a base
// profile ("base: census"), the file is overlaid on that built-in: only
// keys present in the document are replaced, so a file can adjust the
// keyword list or add a schema without restating the rest.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile document. See Load.
func Parse(data []byte) (*Profile, error) {
	var header struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	p := &Profile{}
	if header.Base != "" {
		base, err := Builtin(header.Base)
		if err != nil {
			return nil, err
		}
		p = base
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
