// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"varheat/internal/appcore"
	"varheat/internal/cli"
	"varheat/internal/clibase"
	"varheat/internal/cmdutil"
	"varheat/internal/config"
	"varheat/internal/version"
)

const name = "varheat"

// RunContext parses argv, resolves env settings, and runs one heatmap job.
// With no arguments the built-in (or VARHEAT_*) defaults are used.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	settings, err := config.Load()
	if err != nil {
		cmdutil.Warnf(stderr, false, "%v; invalid values keep their defaults", err)
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv, settings)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.Flush(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return cmdutil.Flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return cmdutil.Flush(outw, stderr, 0)
	}

	lg, err := cmdutil.NewLogger(stderr, opts.LogOptions())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	return appcore.Run(parent, stdout, stderr, lg, appcore.Options{
		DataFile:     opts.DataFile,
		OutFile:      opts.OutFile,
		TopN:         opts.TopN,
		Style:        settings.Style,
		Scores:       opts.Scores,
		ScoresFormat: opts.ScoresFormat,
		Header:       opts.Header,
		Summary:      opts.Summary,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
