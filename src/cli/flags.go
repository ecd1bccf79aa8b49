// Package cli contains helper functions related to flag parsing, logging and signal handling.
package cli

import (
	cli "github.com/peterebden/go-cli-init/v5/flags"
	"github.com/thought-machine/go-flags"
)

// ParseFlagsOrDie parses the app's flags and dies if unsuccessful.
// Also dies if any unexpected arguments are passed.
// It returns the active command if there is one.
func ParseFlagsOrDie(appname string, data interface{}) string {
	return cli.ParseFlagsOrDie(appname, data, nil)
}

// ParseFlags parses the given arguments (which include the program name) into data.
// It returns any extra arguments and any error encountered.
func ParseFlags(appname string, data interface{}, args []string) (*flags.Parser, []string, error) {
	return cli.ParseFlags(appname, data, args, flags.PassDoubleDash, nil, nil)
}

// A Duration is used for flags that represent a time duration; it's just a wrapper
// around time.Duration that implements the flags.Unmarshaler and
// encoding.TextUnmarshaler interfaces.
type Duration = cli.Duration
