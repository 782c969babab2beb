// Command setstress runs a concurrent workload against set.ConcurrentSet
// and prints the resulting report as YAML.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/P1x3lc0w/P1x3lc0w.Common/internal/stress"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func main() {
	opts := &Options{}
	if _, err := flags.NewParser(opts, flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, opts *Options, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	report, runErr := stress.Run(ctx, opts.config())
	if report != nil {
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "could not write report")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "could not write report")
		}
	}

	return runErr
}
