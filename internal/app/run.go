package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"life-rle/internal/patterns"
	"life-rle/pkg/core"
	"life-rle/pkg/rle"
	"life-rle/pkg/sims/life"
)

// Run is the headless driver: it builds a board, advances it cfg.Steps
// generations and writes the result as RLE.
func Run(cfg *Config, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	if cfg.List {
		for _, name := range patterns.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	sim, err := Prepare(cfg, stdin)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Steps; i++ {
		sim.Step()
	}
	logger.Printf("life: %dx%d board at generation %d, population %d",
		sim.Rows(), sim.Cols(), sim.Generation(), sim.Population())

	return writePattern(cfg.Out, rle.Encode(sim.Snapshot()), stdout)
}

// Prepare creates the kernel described by cfg and overlays the configured
// pattern, if any, onto it.
func Prepare(cfg *Config, stdin io.Reader) (*life.Life, error) {
	pattern, err := loadPattern(cfg, stdin)
	if err != nil {
		return nil, err
	}

	lc := life.DefaultConfig()
	lc.Randomize = cfg.Random
	lc.Seed = cfg.Seed
	if pattern != nil {
		lc.Rows, lc.Cols = pattern.Rows(), pattern.Cols()
	}
	if cfg.Rows > 0 {
		lc.Rows = cfg.Rows
	}
	if cfg.Cols > 0 {
		lc.Cols = cfg.Cols
	}

	sim, err := life.NewWithConfig(lc)
	if err != nil {
		return nil, err
	}
	if pattern != nil {
		sim.Load(pattern)
	}
	return sim, nil
}

func loadPattern(cfg *Config, stdin io.Reader) (*core.Board, error) {
	switch {
	case cfg.Pattern != "" && cfg.In != "":
		return nil, errors.New("app: -pattern and -in are mutually exclusive")
	case cfg.Pattern != "":
		return patterns.Lookup(cfg.Pattern)
	case cfg.In != "":
		return readPattern(cfg.In, stdin)
	}
	return nil, nil
}

// reloadable reports whether path can be read again after startup. Stdin is
// consumed by Prepare, so "-" cannot be re-imported.
func reloadable(path string) error {
	switch path {
	case "":
		return errors.New("app: import: no -in file configured")
	case "-":
		return errors.New("app: import: stdin was already consumed at startup")
	}
	return nil
}

// readPattern decodes RLE from path, or from stdin when path is "-".
func readPattern(path string, stdin io.Reader) (*core.Board, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		if stdin == nil {
			return nil, errors.New("app: no stdin to read a pattern from")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("app: read pattern: %w", err)
	}
	b, err := rle.Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", path, err)
	}
	return b, nil
}

// writePattern writes RLE text to path, or to stdout when path is empty or "-".
func writePattern(path, text string, stdout io.Writer) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("app: write pattern: %w", err)
	}
	return nil
}
