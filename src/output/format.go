package output

import (
	"fmt"
	"strings"

	"github.com/semantic-rs/list-cargo-binaries/src/cli"
)

// A Format defines how the list of binary names is written to stdout.
type Format string

const (
	// Compat writes every name followed by a single space and no newline.
	// This is byte-for-byte what existing CI scripts consume.
	Compat Format = "compat"
	// Words writes the names separated by single spaces, terminated by a newline.
	Words Format = "words"
	// Lines writes one name per line.
	Lines Format = "lines"
	// JSON writes a JSON array of names.
	JSON Format = "json"
)

// Formats is the set of all known formats.
var Formats = []Format{Compat, Words, Lines, JSON}

// UnmarshalFlag implements the flags.Unmarshaler interface.
func (f *Format) UnmarshalFlag(in string) error {
	for _, format := range Formats {
		if strings.EqualFold(in, string(format)) {
			*f = format
			return nil
		}
	}
	names := formatNames()
	return fmt.Errorf("unknown output format %q, must be one of %s%s", in, strings.Join(names, ", "), cli.SuggestionMessage(in, names, 2))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (f *Format) UnmarshalText(text []byte) error {
	return f.UnmarshalFlag(string(text))
}

// String implements the fmt.Stringer interface
func (f Format) String() string {
	return string(f)
}

func formatNames() []string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return names
}
