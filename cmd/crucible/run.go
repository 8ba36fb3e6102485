package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// loadGrid reads the grid from path, or from stdin when path is "-".
func loadGrid(path string, stdin io.Reader) (*gridgraph.CostGrid, error) {
	if path == "-" {
		return gridgraph.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// run loads the grid, solves every configured run concurrently and prints one
// cost per line in configuration order, followed by the move string when
// ShowPath is set.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer) error {
	g, err := loadGrid(cfg.InputPath, stdin)
	if err != nil {
		return err
	}
	start, goal := cfg.endpoints(g)
	if cfg.Verbose {
		log.Printf("grid %dx%d, start %v, goal %v, %d run(s)", g.Height(), g.Width(), start, goal, len(cfg.Runs))
	}

	began := time.Now()
	results, err := dijkstra.SolveAll(ctx, g, start, goal, cfg.Runs, cfg.options()...)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		for i, r := range results {
			log.Printf("run %v: cost %d, %d states finalized, %d pushed", cfg.Runs[i], r.Cost, r.Expanded, r.Pushed)
		}
		log.Printf("solved in %v", time.Since(began))
	}

	for _, r := range results {
		if cfg.ShowPath {
			fmt.Fprintf(stdout, "%d %s\n", r.Cost, r.Arrows())
			continue
		}
		fmt.Fprintln(stdout, r.Cost)
	}

	return nil
}
