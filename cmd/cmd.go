package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nutdoc/nutfilter/filter"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the nutfilter CLI with the given version string.
//
// doxygen invokes the filter as `nutfilter <file.nut>` and reads the
// rewritten source from stdout, so stdout carries only filtered output.
// Everything else (banners, discovered classes, warnings) goes to stderr.
func Execute(version string) {
	setupLogging()

	cmd := &cli.Command{
		Name:                   "nutfilter",
		Usage:                  "Rewrite Squirrel scripts into C++ that doxygen can parse",
		Version:                version,
		UseShortOptionHandling: true,
		// Allow `nutfilter script.nut` as shorthand for `nutfilter filter script.nut`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("usage: nutfilter <file.nut>")
			}
			return filterFile(cmd.Args().First(), filter.DefaultConfig())
		},
		Commands: []*cli.Command{
			{
				Name:      "filter",
				Usage:     "Filter a .nut file to stdout",
				ArgsUsage: "<file.nut>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strip-function",
						Usage: "Remove the function keyword instead of keeping it",
					},
					&cli.BoolFlag{
						Name:  "rename-constructor",
						Usage: "Replace constructor with the class name instead of appending it",
					},
					&cli.BoolFlag{
						Name:  "no-brace-fixup",
						Usage: "Do not insert a missing ; after closing braces",
					},
					&cli.BoolFlag{
						Name:  "no-track",
						Usage: "Do not synthesize declarations for Class::function definitions",
					},
					&cli.BoolFlag{
						Name:  "show-private",
						Usage: "Do not mark underscore-prefixed symbols as private",
					},
				},
				Action: filterAction,
			},
		},
	}

	log.Infof("starting Squirrel doxygen filter %s", version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging disables colored stderr output when NO_COLOR is set or
// stderr is not a terminal (doxygen runs filters with piped stderr).
func setupLogging() {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd())) {
		log.SetFormatter(&log.TextFormatter{DisableColors: true})
	}
}

func filterAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("usage: nutfilter filter [flags] <file.nut>")
	}
	cfg := filter.DefaultConfig()
	cfg.KeepFunction = !cmd.Bool("strip-function")
	cfg.KeepConstructor = !cmd.Bool("rename-constructor")
	cfg.CheckClassEnd = !cmd.Bool("no-brace-fixup")
	cfg.TrackMemberFunctions = !cmd.Bool("no-track")
	cfg.HidePrivate = !cmd.Bool("show-private")
	return filterFile(cmd.Args().First(), cfg)
}

func filterFile(path string, cfg filter.Config) error {
	log.Infof("filtering %s", path)

	// Read the whole file up front; line endings are preserved as-is so
	// the filtered output stays line-for-line comparable to the input.
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f := filter.New(cfg, os.Stdout)
	if err := f.Run(string(src)); err != nil {
		return fmt.Errorf("filtering %s: %w", path, err)
	}
	log.Infof("finished %s", path)
	return nil
}
