package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sghaida/hrpatterns/app"
	"github.com/sghaida/hrpatterns/config"
	"github.com/sghaida/hrpatterns/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags, loads configuration and runs the selected demo.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("hrdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprint(stderr, "usage: hrdemo [options]\n\nRuns the factory, observer and singleton demos.\n\nOptions:\n")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "path to a YAML config file")
	demo := flags.String("demo", "", "demo to run: factory, observer, singleton or all")
	roster := flags.String("roster", "", "path to a YAML roster for the factory demo")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")
	logFormat := flags.String("log-format", "", "log format: text or json")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "hrdemo: unexpected argument %q\n", flags.Arg(0))
		flags.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	// Flags win over file and environment.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "demo":
			cfg.Demo.Name = *demo
		case "roster":
			cfg.Demo.Roster = *roster
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	logger := logging.Configure(stderr, cfg.Log.Level, cfg.Log.Format)
	logger.Debug("hrdemo: starting", "demo", cfg.Demo.Name)

	svc, err := app.Build(cfg, stdout, logger)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if err := svc.Value().Run(context.Background()); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
