// Package fs contains filesystem helpers.
package fs

import (
	"os"
	"strings"

	"github.com/peterebden/go-deferred-regex"
)

var homeRex = deferredregex.DeferredRegex{Re: "^~(?:/|$)"}

// ExpandHomePath expands a leading ~ (without a user specifier) to the current user's home directory.
// Config values aren't passed through a shell, so we do this ourselves.
func ExpandHomePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return ExpandHomePathTo(path, home)
}

// ExpandHomePathTo expands a leading ~ to the given directory.
func ExpandHomePathTo(path, to string) string {
	return homeRex.ReplaceAllStringFunc(path, func(prefix string) string {
		return strings.Replace(prefix, "~", to, 1)
	})
}
