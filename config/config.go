package config

import (
	"flag"
	"io"
	"math"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"mcts/meta"
)

var (
	Games = []string{"connect4", "uttt"}
	Modes = []string{"play", "selfplay", "arena"}
)

type Config struct {
	Game       string        `yaml:"game"`
	Mode       string        `yaml:"mode"`
	Think      time.Duration `yaml:"think"`
	Iterations int           `yaml:"iterations"` // overrides Think when positive
	Seed       uint64        `yaml:"seed"`       // 0 draws a random seed
	Human      string        `yaml:"human"`      // side the human plays in play mode
	Games      int           `yaml:"games"`
	Parallel   int           `yaml:"parallel"`
	Out        string        `yaml:"out"`
	Dot        string        `yaml:"dot"`
	LogLevel   string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Game:     "connect4",
		Mode:     "play",
		Think:    meta.THINK_TIME,
		Human:    "p1",
		Games:    meta.GAMES,
		Parallel: meta.PARALLEL_GAMES,
		Out:      meta.OUT_DIR,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

func (c *Config) register(fs *flag.FlagSet) {
	fs.StringVar(&c.Game, "game", c.Game, "Game to play: connect4 or uttt")
	fs.StringVar(&c.Mode, "mode", c.Mode, "play, selfplay or arena")
	fs.DurationVar(&c.Think, "think", c.Think, "Search time per move")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "Search iterations per move, overrides -think")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed, 0 for a random one")
	fs.StringVar(&c.Human, "human", c.Human, "Side the human plays: p1 or p2")
	fs.IntVar(&c.Games, "games", c.Games, "Number of arena games")
	fs.IntVar(&c.Parallel, "parallel", c.Parallel, "Arena games played at once")
	fs.StringVar(&c.Out, "out", c.Out, "Directory for arena records")
	fs.StringVar(&c.Dot, "dot", c.Dot, "Write the final search tree of selfplay to this Graphviz file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// FromArgs builds the configuration from command line arguments. Values come
// from the defaults, then the file given with -config, then the other flags.
func FromArgs(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "YAML configuration file")
	flags := Default()
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return Config{}, err
		}
	}

	replay := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.register(replay)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = replay.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "applying flags")
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case !slices.Contains(Games, c.Game):
		return errors.Errorf("unknown game %q", c.Game)
	case !slices.Contains(Modes, c.Mode):
		return errors.Errorf("unknown mode %q", c.Mode)
	case c.Human != "p1" && c.Human != "p2":
		return errors.Errorf("human must play p1 or p2, not %q", c.Human)
	case c.Think <= 0 && c.Iterations <= 0:
		return errors.New("either think time or iterations must be positive")
	case c.Mode == "arena" && c.Games <= 0:
		return errors.New("arena needs at least one game")
	}
	return nil
}

// ResolveSeed returns the configured seed, drawing a fresh non-zero one when
// none was given.
func (c *Config) ResolveSeed() uint64 {
	if c.Seed == 0 {
		c.Seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return c.Seed
}
