package app

import "flag"

// Config represents the command-line parameters for the drivers.
type Config struct {
	// Rows and Cols size the board. Zero means the loaded pattern's size, or
	// the simulation default when no pattern is given.
	Rows   int
	Cols   int
	Random bool
	Seed   int64

	Pattern string
	In      string
	Out     string
	Steps   int
	List    bool

	Scale int
	TPS   int
	GPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, Scale: 2, TPS: 60, GPS: 15}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows (0 = pattern height)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns (0 = pattern width)")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to load (see -list)")
	fs.StringVar(&c.In, "in", c.In, "RLE file to load, - for stdin")
	fs.StringVar(&c.Out, "out", c.Out, "RLE file to write, empty or - for stdout")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to advance before exporting")
	fs.BoolVar(&c.List, "list", c.List, "list built-in patterns and exit")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
}
