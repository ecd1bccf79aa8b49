// list_cargo_binaries inspects a Rust project with `cargo metadata` and prints the names of
// all the binary targets it defines.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/semantic-rs/list-cargo-binaries/src/cli"
	"github.com/semantic-rs/list-cargo-binaries/src/cli/logging"
	"github.com/semantic-rs/list-cargo-binaries/src/config"
	"github.com/semantic-rs/list-cargo-binaries/src/metadata"
	"github.com/semantic-rs/list-cargo-binaries/src/output"
	"github.com/semantic-rs/list-cargo-binaries/src/process"
)

var log = logging.Log

type options struct {
	Usage     string
	Verbosity cli.Verbosity `short:"v" long:"verbosity" default:"warning" description:"Verbosity of logging to stderr (error, warning, notice, info or debug)"`
	Config    string        `long:"config" description:"Additional config file to read after the default ones"`
	Cargo     struct {
		Tool         string       `long:"cargo" env:"CARGO" description:"Cargo command to run; overrides cargo.tool in config"`
		ManifestPath string       `long:"manifest_path" description:"Path to Cargo.toml to inspect; overrides cargo.manifestpath in config"`
		Dir          string       `short:"C" long:"dir" description:"Directory to run cargo in and to look for .cargobinsconfig in"`
		Timeout      cli.Duration `long:"timeout" description:"Kill cargo if it hasn't finished after this long; overrides cargo.timeout in config"`
	} `group:"Options controlling how cargo is run"`
	Input          string        `short:"i" long:"input" description:"Read metadata from this file (- for stdin) instead of running cargo"`
	Format         output.Format `short:"f" long:"format" description:"Output format; one of compat, words, lines or json. Overrides output.format in config"`
	PrintTargetDir bool          `long:"print_target_dir" description:"Print the cargo target directory instead of binary names"`
}

var opts = options{
	Usage: `
list_cargo_binaries prints the names of all binary targets defined in the current Rust project.

It runs 'cargo metadata --no-deps --format-version=1' and selects every target whose kind
includes "bin". By default the names are printed each followed by a single space, e.g.

  $ list_cargo_binaries
  semantic-rs cleanroom 

which is convenient to splice into shell loops in CI.
`,
}

func main() {
	cli.ParseFlagsOrDie("list_cargo_binaries", &opts)
	cli.InitLogging(opts.Verbosity)
	if err := run(context.Background(), &opts, os.Stdout); err != nil {
		log.Fatalf("%s", err)
	}
}

// run executes the whole pipeline, writing results to w.
// Nothing is written to w unless every earlier step succeeds.
func run(ctx context.Context, opts *options, w io.Writer) error {
	conf, err := readConfig(opts)
	if err != nil {
		return err
	}
	data, err := readMetadata(ctx, conf, opts)
	if err != nil {
		return err
	}
	manifest, err := metadata.Parse(data)
	if err != nil {
		return err
	}
	if opts.PrintTargetDir {
		return output.PrintTargetDir(w, manifest.TargetDirectory)
	}
	names := metadata.BinaryTargets(metadata.ListTargets(manifest))
	log.Info("Found %d binary targets", len(names))
	return output.Print(w, names, conf.Output.Format)
}

// readConfig reads the config files and applies any flags on top of them.
func readConfig(opts *options) (*config.Configuration, error) {
	dir := opts.Cargo.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	files := config.DefaultConfigFiles(dir)
	if opts.Config != "" {
		if _, err := os.Stat(opts.Config); err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
		files = append(files, opts.Config)
	}
	conf, err := config.ReadConfigFiles(files)
	if err != nil {
		return nil, err
	}
	if opts.Cargo.Tool != "" {
		conf.Cargo.Tool = opts.Cargo.Tool
	}
	if opts.Cargo.ManifestPath != "" {
		conf.Cargo.ManifestPath = opts.Cargo.ManifestPath
	}
	if opts.Cargo.Timeout > 0 {
		conf.Cargo.Timeout = opts.Cargo.Timeout
	}
	if opts.Format != "" {
		conf.Output.Format = opts.Format
	}
	return conf, nil
}

// readMetadata returns the metadata document, either from the input file or by running cargo.
func readMetadata(ctx context.Context, conf *config.Configuration, opts *options) ([]byte, error) {
	if opts.Input != "" {
		return metadata.ReadFile(opts.Input)
	}
	fetcher, err := metadata.NewFetcher(process.New(), conf.Cargo.Tool, conf.Cargo.ManifestPath, opts.Cargo.Dir, time.Duration(conf.Cargo.Timeout))
	if err != nil {
		return nil, err
	}
	return fetcher.Fetch(ctx)
}
