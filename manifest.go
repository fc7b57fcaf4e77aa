package gallery

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Entry is one gallery item: an image path relative to the asset root and the
// title shown in the label column.
type Entry struct {
	Src   string `json:"src"`
	Title string `json:"title"`
}

// Manifest is the ordered list of gallery items. It is read once at startup
// and never mutated.
type Manifest struct {
	Planes []Entry `json:"planes"`
}

// ParseManifest parses manifest JSON of the form
// {"planes": [{"src": "1.jpg", "title": "..."}]}.
func ParseManifest(jsonData []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, fmt.Errorf("gallery: parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file from fsys.
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("gallery: read manifest: %w", err)
	}
	return ParseManifest(data)
}

// Validate reports an error when the manifest has no planes or an entry has
// no image path.
func (m *Manifest) Validate() error {
	if len(m.Planes) == 0 {
		return fmt.Errorf("gallery: manifest has no planes")
	}
	for i, e := range m.Planes {
		if e.Src == "" {
			return fmt.Errorf("gallery: manifest plane %d: empty src", i)
		}
	}
	return nil
}
