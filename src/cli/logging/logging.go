// Package logging contains the singleton logger that we use globally.
// It has nothing else in it so every package can import it without cycles.
package logging

import (
	"gopkg.in/op/go-logging.v1"
)

// Log is the logger shared by every package in this module.
var Log = logging.MustGetLogger("cargo")
