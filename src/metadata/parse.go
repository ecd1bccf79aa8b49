package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Parse decodes a metadata document.
// It fails if the document isn't valid JSON or is missing any field we need; all missing
// fields are reported together.
func Parse(data []byte) (*Manifest, error) {
	manifest := &Manifest{}
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to decode cargo metadata: %w", err)
	}
	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf("invalid cargo metadata: %w", err)
	}
	return manifest, nil
}

// validate checks that every field we read later is present.
// A null JSON array decodes to a nil slice, same as a missing one, and we treat both as missing.
func (m *Manifest) validate() error {
	if m.Version != 0 && m.Version != FormatVersion {
		return fmt.Errorf("unsupported format version %d, expected %d", m.Version, FormatVersion)
	}
	var merr *multierror.Error
	if m.Packages == nil {
		merr = multierror.Append(merr, fmt.Errorf("missing field packages"))
	}
	for i, pkg := range m.Packages {
		if pkg.Targets == nil {
			merr = multierror.Append(merr, fmt.Errorf("missing field packages[%d].targets", i))
		}
		for j, target := range pkg.Targets {
			if target.Name == "" {
				merr = multierror.Append(merr, fmt.Errorf("missing field packages[%d].targets[%d].name", i, j))
			}
			if target.Kind == nil {
				merr = multierror.Append(merr, fmt.Errorf("missing field packages[%d].targets[%d].kind", i, j))
			}
		}
	}
	return merr.ErrorOrNil()
}
