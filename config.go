package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/HuXin0817/doots/pkg/assess"
	"github.com/HuXin0817/doots/pkg/models/message"
	"github.com/HuXin0817/doots/pkg/players"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// defaultConfig is loaded when no file is given. The log level keeps the move log
// off the terminal the game is drawn on.
const defaultConfig = `
Log:
  Encoding: plain
  Level: error
`

const maxPlayableSize = 50

var errInvalidConfig = errors.New("invalid config")

type Config struct {
	BoardSize int    `json:",default=3,range=[1:50]"`
	Player1   string `json:",default=hoomin,options=hoomin|doot|boox|rollout|first"`
	Player2   string `json:",default=doot,options=hoomin|doot|boox|rollout|first"`
	Quiet     bool   `json:",optional"`
	Color     bool   `json:",default=true"`

	Transcript struct {
		Path          string        `json:",optional"`
		Format        string        `json:",default=json,options=json|yaml"`
		FlushInterval time.Duration `json:",default=1s"`
	}

	Rollout struct {
		Goroutines int           `json:",optional"`
		SearchTime time.Duration `json:",default=500ms"`
		Seed       int64         `json:",optional"`
	}

	Pprof string `json:",optional"`
	Log   logx.LogConf
}

func (c Config) RolloutOptions() []assess.RolloutOption {
	options := []assess.RolloutOption{
		assess.WithGoroutines(c.Rollout.Goroutines),
		assess.WithSearchTime(c.Rollout.SearchTime),
	}
	if c.Rollout.Seed != 0 {
		options = append(options, assess.WithSeed(c.Rollout.Seed))
	}
	return options
}

type flags struct {
	configFile string
	size       int
	one        string
	two        string
	quiet      bool
	noColor    bool
	transcript string
	format     string
	pprof      string
	searchTime time.Duration
	seed       int64
	verbose    bool
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVarP(&f.configFile, "config", "f", "", "the config file")
	fs.IntVarP(&f.size, "size", "s", 3, "boxes per side (size 2 => 3x3 dots)")
	fs.StringVar(&f.one, "one", "hoomin", "player one: hoomin|doot|boox|rollout|first")
	fs.StringVar(&f.two, "two", "doot", "player two: hoomin|doot|boox|rollout|first")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print the start and the end of the game")
	fs.BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	fs.StringVarP(&f.transcript, "transcript", "t", "", "write every move to this file")
	fs.StringVar(&f.format, "format", "json", "transcript format: json|yaml")
	fs.StringVar(&f.pprof, "pprof", "", "serve profiling handlers on this address")
	fs.DurationVar(&f.searchTime, "search-time", assess.DefaultSearchTime, "rollout thinking time per move")
	fs.Int64Var(&f.seed, "seed", 0, "rollout random seed (0 picks one)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every move")
}

// loadConfig reads the config file, if any, then applies the flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (c Config, err error) {
	if f.configFile != "" {
		err = conf.Load(f.configFile, &c)
	} else {
		err = conf.LoadFromYamlBytes([]byte(defaultConfig), &c)
	}
	if err != nil {
		return c, err
	}

	changed := cmd.Flags().Changed
	if changed("size") {
		c.BoardSize = f.size
	}
	if changed("one") {
		c.Player1 = f.one
	}
	if changed("two") {
		c.Player2 = f.two
	}
	if changed("quiet") {
		c.Quiet = f.quiet
	}
	if changed("no-color") {
		c.Color = !f.noColor
	}
	if changed("transcript") {
		c.Transcript.Path = f.transcript
	}
	if changed("format") {
		c.Transcript.Format = f.format
	}
	if changed("pprof") {
		c.Pprof = f.pprof
	}
	if changed("search-time") {
		c.Rollout.SearchTime = f.searchTime
	}
	if changed("seed") {
		c.Rollout.Seed = f.seed
	}
	if changed("verbose") && f.verbose {
		c.Log.Level = "info"
	}

	return c, validate(c)
}

func validate(c Config) error {
	switch {
	case c.BoardSize < 1 || c.BoardSize > maxPlayableSize:
		return fmt.Errorf("%w: board size %d not in [1, %d]", errInvalidConfig, c.BoardSize, maxPlayableSize)
	case !slices.Contains(players.Kinds, c.Player1):
		return fmt.Errorf("%w: player one %q, want one of %v", errInvalidConfig, c.Player1, players.Kinds)
	case !slices.Contains(players.Kinds, c.Player2):
		return fmt.Errorf("%w: player two %q, want one of %v", errInvalidConfig, c.Player2, players.Kinds)
	case c.Transcript.Format != message.FormatJSON && c.Transcript.Format != message.FormatYAML:
		return fmt.Errorf("%w: transcript format %q", errInvalidConfig, c.Transcript.Format)
	}
	return nil
}
