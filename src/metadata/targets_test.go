package metadata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkg(targets ...Target) Package {
	return Package{Targets: targets}
}

func target(name string, kind ...string) Target {
	return Target{Name: name, Kind: kind}
}

func binaries(manifest *Manifest) []string {
	return BinaryTargets(ListTargets(manifest))
}

func TestSingleBinary(t *testing.T) {
	manifest := &Manifest{Packages: []Package{pkg(target("mytool", "bin"))}}
	assert.Equal(t, []string{"mytool"}, binaries(manifest))
}

func TestLibraryAndBinary(t *testing.T) {
	manifest := &Manifest{Packages: []Package{pkg(target("lib1", "lib"), target("mytool", "bin"))}}
	assert.Equal(t, []TargetDescriptor{
		{Name: "lib1", IsBinary: false},
		{Name: "mytool", IsBinary: true},
	}, ListTargets(manifest))
	assert.Equal(t, []string{"mytool"}, binaries(manifest))
}

func TestBinariesAcrossPackages(t *testing.T) {
	manifest := &Manifest{Packages: []Package{pkg(target("a", "bin")), pkg(target("b", "bin"))}}
	assert.Equal(t, []string{"a", "b"}, binaries(manifest))
}

func TestNoPackages(t *testing.T) {
	manifest := &Manifest{Packages: []Package{}}
	assert.Equal(t, 0, len(ListTargets(manifest)))
	assert.Equal(t, 0, len(binaries(manifest)))
}

func TestNoBinaries(t *testing.T) {
	manifest := &Manifest{Packages: []Package{
		pkg(target("lib1", "lib"), target("proc", "proc-macro")),
		pkg(target("example", "example"), target("build-script-build", "custom-build")),
	}}
	assert.Equal(t, 4, len(ListTargets(manifest)))
	assert.Equal(t, 0, len(binaries(manifest)))
}

func TestOrderIsNotSorted(t *testing.T) {
	manifest := &Manifest{Packages: []Package{
		pkg(target("zeta", "bin"), target("alpha", "bin")),
		pkg(target("mid", "bin")),
	}}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, binaries(manifest))
}

func TestDuplicateNamesAreKept(t *testing.T) {
	manifest := &Manifest{Packages: []Package{pkg(target("tool", "bin")), pkg(target("tool", "bin"))}}
	assert.Equal(t, []string{"tool", "tool"}, binaries(manifest))
}

func TestBinKindAmongOthers(t *testing.T) {
	assert.True(t, target("multi", "lib", "bin").IsBinary())
	assert.False(t, target("bins", "bins").IsBinary())
	assert.False(t, target("empty").IsBinary())
}

func TestWorkspaceBinaries(t *testing.T) {
	data, err := os.ReadFile("test_data/workspace.json")
	require.NoError(t, err)
	manifest, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"semantic-rs", "cleanroom"}, binaries(manifest))
}

func TestLibraryOnlyBinaries(t *testing.T) {
	data, err := os.ReadFile("test_data/library_only.json")
	require.NoError(t, err)
	manifest, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 3, len(ListTargets(manifest)))
	assert.Equal(t, 0, len(binaries(manifest)))
}
