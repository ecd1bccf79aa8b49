// Package output writes the results of the tool to stdout.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Print writes the given names to w in the given format.
// Names are written in the order given; they are not sorted or de-duplicated.
func Print(w io.Writer, names []string, format Format) error {
	switch format {
	case Compat, "":
		var sb strings.Builder
		for _, name := range names {
			sb.WriteString(name)
			sb.WriteByte(' ')
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case Words:
		if len(names) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Join(names, " "))
		return err
	case Lines:
		if len(names) == 0 {
			return nil
		}
		_, err := io.WriteString(w, strings.Join(names, "\n")+"\n")
		return err
	case JSON:
		if names == nil {
			names = []string{}
		}
		b, err := json.Marshal(names)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// PrintTargetDir writes the cargo target directory to w.
func PrintTargetDir(w io.Writer, dir string) error {
	if dir == "" {
		return fmt.Errorf("metadata has no target_directory")
	}
	_, err := fmt.Fprintln(w, dir)
	return err
}
