// Contains various utility functions related to logging.

package cli

import (
	"io"
	"os"

	cli "github.com/peterebden/go-cli-init/v5/logging"
	"github.com/peterebden/go-deferred-regex"
	"golang.org/x/term"
	"gopkg.in/op/go-logging.v1"

	logger "github.com/semantic-rs/list-cargo-binaries/src/cli/logging"
)

var log = logger.Log

// StdErrIsATerminal is true if the process' stderr is an interactive TTY.
var StdErrIsATerminal = IsATerminal(os.Stderr)

// StripAnsi is a regex to find & replace ANSI console escape sequences.
var StripAnsi = deferredregex.DeferredRegex{Re: "\x1b[^m]+m"}

// A Verbosity is used as a flag to define logging verbosity.
type Verbosity = cli.Verbosity

// InitLogging initialises logging to stderr at the given verbosity.
// Stdout is reserved for the tool's actual output so nothing is ever logged there.
func InitLogging(verbosity Verbosity) {
	initLogging(os.Stderr, verbosity, StdErrIsATerminal)
}

func initLogging(w io.Writer, verbosity Verbosity, coloured bool) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormatter(coloured))
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(verbosity), "")
	log.SetBackend(leveled)
}

func logFormatter(coloured bool) logging.Formatter {
	formatStr := "%{time:15:04:05.000} %{level:7s}: %{message}"
	if coloured {
		formatStr = "%{color}" + formatStr + "%{color:reset}"
	}
	return logging.MustStringFormatter(formatStr)
}

// IsATerminal returns true if the given file is an interactive TTY.
func IsATerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
