package metadata

import (
	"golang.org/x/exp/slices"
)

// IsBinary returns true if this target produces an executable.
func (t Target) IsBinary() bool {
	return slices.Contains(t.Kind, BinaryKind)
}

// ListTargets returns a descriptor for every target in the manifest, in the order they appear
// (packages in order, then targets within each package). Duplicate names are kept.
func ListTargets(manifest *Manifest) []TargetDescriptor {
	var descriptors []TargetDescriptor
	for _, pkg := range manifest.Packages {
		log.Debug("Package %s %s has %d targets", pkg.Name, pkg.Version, len(pkg.Targets))
		for _, target := range pkg.Targets {
			descriptors = append(descriptors, TargetDescriptor{
				Name:     target.Name,
				IsBinary: target.IsBinary(),
			})
		}
	}
	return descriptors
}

// BinaryTargets returns the names of the binary targets among the given descriptors, preserving their order.
func BinaryTargets(descriptors []TargetDescriptor) []string {
	var names []string
	for _, d := range descriptors {
		if d.IsBinary {
			names = append(names, d.Name)
		}
	}
	return names
}
