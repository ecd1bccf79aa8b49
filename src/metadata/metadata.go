// Package metadata fetches and interprets the output of `cargo metadata`.
//
// Only the parts of the document needed to find a project's binary targets are decoded;
// see https://doc.rust-lang.org/cargo/commands/cargo-metadata.html for the full format.
package metadata

import (
	"github.com/semantic-rs/list-cargo-binaries/src/cli/logging"
)

var log = logging.Log

// FormatVersion is the version of the metadata format we request from cargo and understand.
const FormatVersion = 1

// BinaryKind is the target kind that marks a target as producing an executable.
const BinaryKind = "bin"

// A Manifest is the document emitted by `cargo metadata`.
type Manifest struct {
	Version         int       `json:"version"`
	TargetDirectory string    `json:"target_directory"`
	Packages        []Package `json:"packages"`
}

// A Package is a single crate in the workspace.
type Package struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Targets []Target `json:"targets"`
}

// A Target is a single build output of a package, e.g. a library or a binary.
type Target struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// A TargetDescriptor is the part of a Target we care about once the manifest has been read.
type TargetDescriptor struct {
	Name     string
	IsBinary bool
}
