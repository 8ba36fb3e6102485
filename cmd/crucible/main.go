// Command crucible reads a digit cost grid and prints the minimal crossing
// cost for each run-length configuration, one per line.
//
// By default it crosses from the top-left to the bottom-right corner under two
// configurations: at most 3 moves per straight run, then 4 to 10 moves per run.
//
// Every flag may also come from the environment (CRUCIBLE_*), and a .env file
// in the working directory is loaded first when present.
//
//	crucible -i input
//	crucible --run 1:3 --run 4:10 --path < input
//	CRUCIBLE_RUNS=2:5 crucible -i input -
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "crucible"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// newCommand builds the command tree. Reader and Writer default to stdin/stdout.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "minimal cost grid crossings under straight-run limits",
		Version:   Version,
		ArgsUsage: "[GRID_FILE|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "grid file, one row of digits per line; - reads stdin",
				Value:   "input",
				Sources: cli.EnvVars("CRUCIBLE_INPUT"),
			},
			&cli.StringSliceFlag{
				Name:    "run",
				Aliases: []string{"r"},
				Usage:   "run-length limits MIN:MAX, repeatable; one output line each",
				Value:   defaultRuns,
				Sources: cli.EnvVars("CRUCIBLE_RUNS"),
			},
			&cli.StringFlag{
				Name:    "start",
				Usage:   "start cell ROW,COL (default top-left corner)",
				Sources: cli.EnvVars("CRUCIBLE_START"),
			},
			&cli.StringFlag{
				Name:    "goal",
				Usage:   "goal cell ROW,COL (default bottom-right corner)",
				Sources: cli.EnvVars("CRUCIBLE_GOAL"),
			},
			&cli.BoolFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "print the move string after each cost",
				Sources: cli.EnvVars("CRUCIBLE_PATH"),
			},
			&cli.IntFlag{
				Name:    "max-expansions",
				Usage:   "give up after this many states per run (0 = unlimited)",
				Value:   0,
				Sources: cli.EnvVars("CRUCIBLE_MAX_EXPANSIONS"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log grid size, timings and search statistics to stderr",
				Sources: cli.EnvVars("CRUCIBLE_VERBOSE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := configFromCommand(cmd)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				log.SetFlags(log.LstdFlags | log.Lmicroseconds)
			}

			return run(ctx, cfg, cmd.Root().Reader, cmd.Root().Writer)
		},
	}
}

// configFromCommand resolves flags into a config. A positional argument
// overrides --input.
func configFromCommand(cmd *cli.Command) (config, error) {
	cfg := config{
		InputPath:     cmd.String("input"),
		ShowPath:      cmd.Bool("path"),
		MaxExpansions: int(cmd.Int("max-expansions")),
		Verbose:       cmd.Bool("verbose"),
	}
	if cmd.Args().Len() > 0 {
		cfg.InputPath = cmd.Args().First()
	}
	if cfg.MaxExpansions < 0 {
		return config{}, fmt.Errorf("max-expansions must be non-negative, got %d", cfg.MaxExpansions)
	}

	var err error
	if cfg.Runs, err = parseRuns(cmd.StringSlice("run")); err != nil {
		return config{}, err
	}
	if cfg.Start, err = parseCell(cmd.String("start")); err != nil {
		return config{}, fmt.Errorf("start: %w", err)
	}
	if cfg.Goal, err = parseCell(cmd.String("goal")); err != nil {
		return config{}, fmt.Errorf("goal: %w", err)
	}

	return cfg, nil
}
