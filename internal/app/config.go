package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Rule   string
	Mode   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  192,
		Height: 128,
		Scale:  3,
		TPS:    30,
		Seed:   42,
		Rule:   "23/3",
		Mode:   "random",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the border noise source")
	fs.StringVar(&c.Rule, "rule", c.Rule, "automaton rule in survive/birth form")
	fs.StringVar(&c.Mode, "mode", c.Mode, "play mode to start in (random or stamp); empty starts stopped")
}
