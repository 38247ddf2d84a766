package settings

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/hft-labs/hft/internal/manifest"
)

// file mirrors the on-disk settings layout.
type file struct {
	SettingsVersion    int                               `yaml:"settingsVersion"`
	Defaults           map[string]interface{}            `yaml:"hftDefaults"`
	GameTypeDefaults   map[string]map[string]interface{} `yaml:"hftGameTypeDefaults"`
	APIVersionSettings map[string]map[string]interface{} `yaml:"apiVersionSettings"`
}

// Load reads and validates the settings file at path.
func Load(path string) (*manifest.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading settings %s: %w", path, err)
	}
	return s, nil
}

// Parse validates raw settings YAML against the embedded schema and builds
// the immutable Settings consumed by manifest parsing.
func Parse(data []byte) (*manifest.Settings, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}

	s := &manifest.Settings{
		Defaults:           f.Defaults,
		GameTypeDefaults:   f.GameTypeDefaults,
		APIVersionSettings: make(map[string]manifest.VersionSettings, len(f.APIVersionSettings)),
	}
	for version, bundle := range f.APIVersionSettings {
		s.APIVersionSettings[version] = manifest.VersionSettings(bundle)
	}
	return s, nil
}
