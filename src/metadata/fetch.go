package metadata

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"github.com/dustin/go-humanize"
	"github.com/google/shlex"

	"github.com/semantic-rs/list-cargo-binaries/src/cli"
)

// A Runner runs an external command and returns its stdout and stderr.
// It's satisfied by *process.Executor.
type Runner interface {
	ExecWithTimeout(ctx context.Context, dir string, env []string, timeout time.Duration, argv []string) ([]byte, []byte, error)
}

// A Fetcher runs `cargo metadata` to retrieve the metadata for a project.
type Fetcher struct {
	runner       Runner
	cargo        []string
	manifestPath string
	dir          string
	timeout      time.Duration
}

// NewFetcher returns a new Fetcher.
// cargo is the command used to invoke cargo; it's split according to shell quoting rules.
// manifestPath is optional and is passed to cargo as --manifest-path if given.
// dir is the directory to run cargo in; if empty the current directory is used.
// A zero timeout waits for cargo indefinitely.
func NewFetcher(runner Runner, cargo, manifestPath, dir string, timeout time.Duration) (*Fetcher, error) {
	argv, err := shlex.Split(cargo)
	if err != nil {
		return nil, fmt.Errorf("invalid cargo command %q: %w", cargo, err)
	} else if len(argv) == 0 {
		return nil, fmt.Errorf("empty cargo command")
	}
	return &Fetcher{
		runner:       runner,
		cargo:        argv,
		manifestPath: manifestPath,
		dir:          dir,
		timeout:      timeout,
	}, nil
}

// Command returns the full command line that Fetch runs.
func (f *Fetcher) Command() []string {
	argv := append([]string{}, f.cargo...)
	argv = append(argv, "metadata", "--no-deps", fmt.Sprintf("--format-version=%d", FormatVersion))
	if f.manifestPath != "" {
		argv = append(argv, "--manifest-path", f.manifestPath)
	}
	return argv
}

// Fetch runs cargo and returns the metadata document it wrote to stdout.
// If cargo fails the returned error includes whatever it wrote to stderr.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	argv := f.Command()
	log.Debug("Running %s", shellescape.QuoteCommand(argv))
	stdout, stderr, err := f.runner.ExecWithTimeout(ctx, f.dir, nil, f.timeout, argv)
	if err != nil {
		msg := strings.TrimSpace(cli.StripAnsi.ReplaceAllString(string(stderr), ""))
		if msg == "" {
			return nil, fmt.Errorf("failed to run %s: %w", shellescape.QuoteCommand(argv), err)
		}
		return nil, fmt.Errorf("failed to run %s: %w\n%s", shellescape.QuoteCommand(argv), err, msg)
	}
	log.Debug("Read %s of metadata from %s", humanize.Bytes(uint64(len(stdout))), f.cargo[0])
	return stdout, nil
}

// ReadFile reads a previously captured metadata document from the given file, or from stdin if it's "-".
func ReadFile(filename string) ([]byte, error) {
	if filename == "-" {
		return readAll(os.Stdin, "stdin")
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readAll(f, filename)
}

func readAll(r io.Reader, name string) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata from %s: %w", name, err)
	}
	log.Debug("Read %s of metadata from %s", humanize.Bytes(uint64(len(b))), name)
	return b, nil
}
