package config

// Preset is a saved harvest query.
type Preset struct {
	// Query is the search query sent to the API.
	Query string `yaml:"query"`

	// PageSize overrides the global page size for this preset.
	// If zero, the global page size is used.
	PageSize int `yaml:"pageSize,omitempty"`

	// MaxArticles overrides the global article cap for this preset.
	MaxArticles int `yaml:"maxArticles,omitempty"`
}

// File represents the structure of the .natscan configuration file.
type File struct {
	// APIKey authenticates against the bibliographic API. A key given
	// on the command line takes precedence.
	APIKey string `yaml:"apiKey,omitempty"`

	// Presets maps preset names to saved harvest queries.
	Presets map[string]Preset `yaml:"presets,omitempty"`
}

// GetPreset returns the named preset and whether it exists.
func (f *File) GetPreset(name string) (Preset, bool) {
	p, ok := f.Presets[name]
	return p, ok
}
