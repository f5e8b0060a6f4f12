// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"varheat/internal/clibase"
	"varheat/internal/cliutil"
	"varheat/internal/config"
	"varheat/internal/output"
	"varheat/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	// Input / output
	DataFile string
	OutFile  string
	TopN     int

	// Report
	Scores       bool
	ScoresFormat string
	Header       bool // true unless --no-header
	Summary      bool
}

// ParseArgs registers and parses all flags over defaults (normally
// config.Load), returning the effective Options. Positionals fill DATA_FILE
// then OUT_FILE.
func ParseArgs(fs *flag.FlagSet, argv []string, defaults config.Settings) (Options, error) {
	var o Options
	var help, showExamples, noHeader bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.DataFile, "data-file", defaults.DataFile, "tab-delimited input matrix ('-' for STDIN)")
	fs.StringVar(&o.DataFile, "d", defaults.DataFile, "alias of --data-file")
	fs.StringVar(&o.OutFile, "out-file", defaults.OutFile, "PNG output path")
	fs.StringVar(&o.OutFile, "o", defaults.OutFile, "alias of --out-file")
	fs.IntVar(&o.TopN, "top-n", defaults.TopN, "number of most variable rows to plot")
	fs.IntVar(&o.TopN, "n", defaults.TopN, "alias of --top-n")

	fs.BoolVar(&o.Scores, "scores", false, "print the selected rows' statistics [false]")
	fs.StringVar(&o.ScoresFormat, "scores-format", output.FormatText, "score report format: text | json | jsonl [text]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in the TSV report [false]")
	fs.BoolVar(&o.Summary, "summary", false, "print a load/selection summary line [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !noHeader

	if err := applyPositionals(fs, &o, posArgs); err != nil {
		return o, err
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	return o, validate(o)
}

func applyPositionals(fs *flag.FlagSet, o *Options, posArgs []string) error {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch {
	case len(posArgs) > 2:
		return fmt.Errorf("%w: got %d, want at most DATA_FILE and OUT_FILE", clibase.ErrTooManyPositionals, len(posArgs))
	case len(posArgs) == 0:
		return nil
	}
	if set["data-file"] || set["d"] {
		return errors.New("--data-file conflicts with positional DATA_FILE")
	}
	data, err := cliutil.ExpandOne(posArgs[0])
	if err != nil {
		return err
	}
	o.DataFile = data
	if len(posArgs) == 2 {
		if set["out-file"] || set["o"] {
			return errors.New("--out-file conflicts with positional OUT_FILE")
		}
		o.OutFile = posArgs[1]
	}
	return nil
}

func validate(o Options) error {
	switch {
	case o.DataFile == "":
		return errors.New("a data file is required")
	case o.OutFile == "":
		return errors.New("--out-file must not be empty")
	case o.OutFile == "-":
		return errors.New("--out-file must be a file path; the PNG is not written to STDOUT")
	case o.TopN < 1:
		return fmt.Errorf("--top-n must be ≥ 1, got %d", o.TopN)
	}
	if _, ok := writers.SelectionWriters[o.ScoresFormat]; !ok {
		return fmt.Errorf("invalid --scores-format %q (want %s)", o.ScoresFormat, strings.Join(writers.SelectionFormats(), " | "))
	}
	return nil
}
