package main

import (
	"fmt"
	"io"
	"os"

	"github.com/launchdarkly/synonym-registry/framework"
	"github.com/launchdarkly/synonym-registry/synonymtests"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Set via LD_FLAGS.
var AppVersion string

func main() {
	app := &cli.App{
		Name:  "synonym-tests",
		Usage: "Run the synonym registry self-check battery",

		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "run",
				Usage: "regex pattern(s) to select tests to run",
			},
			&cli.StringSliceFlag{
				Name:  "skip",
				Usage: "regex pattern(s) to select tests not to run",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "show debug output for failed tests",
			},
			&cli.BoolFlag{
				Name:  "debug-all",
				Usage: "show debug output for all tests",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.PathFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
			},
		},

		Action: func(ctx *cli.Context) error {
			params, err := readParams(ctx)
			if err != nil {
				return err
			}
			if params.debugAll {
				log.SetLevel(log.DebugLevel)
			}
			color.NoColor = color.NoColor || params.noColor

			runTests(params, os.Args[0], os.Stdout, os.Stderr, os.Exit)
			return nil
		},

		Version: AppVersion,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func readParams(ctx *cli.Context) (commandParams, error) {
	var config Config
	if path := ctx.Path("config"); path != "" {
		c, err := loadConfig(path)
		if err != nil {
			return commandParams{}, err
		}
		log.Debugf("Loaded config from %s", path)
		config = c
	}
	if ctx.IsSet("run") {
		config.Run = ctx.StringSlice("run")
	}
	if ctx.IsSet("skip") {
		config.Skip = ctx.StringSlice("skip")
	}
	if ctx.IsSet("debug") {
		config.Debug = ctx.Bool("debug")
	}
	if ctx.IsSet("debug-all") {
		config.DebugAll = ctx.Bool("debug-all")
	}
	if ctx.IsSet("no-color") {
		config.NoColor = ctx.Bool("no-color")
	}
	return config.params()
}

// runTests runs the battery once and finalizes the session, which calls exit.
func runTests(params commandParams, program string, out, errOut io.Writer, exit func(int)) int {
	framework.PrintFilterDescription(out, params.filters)

	fmt.Fprintln(out, "Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	session := framework.NewSession(errOut, exit)
	results := session.Run(params.filters.AsFilter, testLogger, synonymtests.Register)

	fmt.Fprintln(out)
	printResults(out, program, results)
	return session.Finalize()
}

func printResults(out io.Writer, program string, results framework.Results) {
	if results.OK() {
		fmt.Fprintf(out, "All tests passed (%d)\n", len(results.Tests))
		return
	}
	fmt.Fprintln(out, "FAILED TESTS:")
	ids := make([]framework.TestID, 0, len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  - %s\n", f.TestID)
		ids = append(ids, f.TestID)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To run only the failed tests:")
	fmt.Fprintf(out, "  %s\n", rerunCommand(program, ids))
}
