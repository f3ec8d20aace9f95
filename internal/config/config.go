// Package config reads the command line, the environment and an optional
// .env file into a Config.
package config

import (
	"time"

	"git.lost.host/meutraa/encore/internal/clock"
	"git.lost.host/meutraa/encore/internal/engine"
	"git.lost.host/meutraa/encore/internal/game"
	"git.lost.host/meutraa/encore/internal/score"
	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Config struct {
	Directory     string
	Mode          engine.Mode
	Difficulty    int
	Boss          string
	Database      string
	Countdown     time.Duration
	Offset        time.Duration
	MissWindow    time.Duration
	PassThreshold time.Duration
	FramePeriod   time.Duration
	ScrollSpeed   float64 // Rows per second
	BarRow        uint
	ColumnSpacing uint
	Keys          []rune
	Level         int
	Drunkenness   int
	Health        int
	Audio         bool
	LogFile       string
	Debug         bool
	History       bool
}

// Engine is the timing configuration handed to a session
func (c *Config) Engine() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Countdown = c.Countdown
	cfg.MissWindow = c.MissWindow
	cfg.PassThreshold = c.PassThreshold
	cfg.InputOffset = c.Offset
	return cfg
}

// KeyLane maps a rune to its lane
func (c *Config) KeyLane(r rune) (game.Lane, bool) {
	for i, k := range c.Keys {
		if i >= game.NLanes {
			break
		}
		if r == k {
			return game.Lane(i), true
		}
	}
	return 0, false
}

// Parse reads args (without the program name). Values missing from the
// command line fall back to ENCORE_* variables, which may come from .env.
// The song directory is always an argument.
func Parse(args []string) (*Config, error) {
	// A missing .env is the common case
	_ = godotenv.Load()

	app := kingpin.New("encore", "Rockstar rhythm game")
	app.Version(Version)

	var (
		c    Config
		mode string
		keys string
	)
	app.Arg("directory", "Song/chart directory").Required().ExistingDirVar(&c.Directory)
	app.Flag("mode", "Game mode, concert or combat").Default("concert").Short('m').Envar("ENCORE_MODE").EnumVar(&mode, "concert", "combat")
	app.Flag("difficulty", "Chart index to play").Default("0").Envar("ENCORE_DIFFICULTY").IntVar(&c.Difficulty)
	app.Flag("boss", "Boss sheet for combat mode").Envar("ENCORE_BOSS").StringVar(&c.Boss)
	app.Flag("db", "Wallet and session ledger").Default("./encore.db").Envar("ENCORE_DB").StringVar(&c.Database)
	app.Flag("countdown", "Pre-roll before the song").Default(clock.DefaultCountdown.String()).Short('c').Envar("ENCORE_COUNTDOWN").DurationVar(&c.Countdown)
	app.Flag("offset", "Global offset").Default("0ms").Short('o').Envar("ENCORE_OFFSET").DurationVar(&c.Offset)
	app.Flag("miss-window", "Widest judgeable distance").Default(score.MissWindow.String()).Envar("ENCORE_MISS_WINDOW").DurationVar(&c.MissWindow)
	app.Flag("pass-threshold", "How far past the line a note is missed").Default("200ms").Envar("ENCORE_PASS_THRESHOLD").DurationVar(&c.PassThreshold)
	app.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Envar("ENCORE_FRAME_PERIOD").DurationVar(&c.FramePeriod)
	app.Flag("scroll-speed", "Rows scrolled per second").Default("40").Short('s').Envar("ENCORE_SCROLL_SPEED").Float64Var(&c.ScrollSpeed)
	app.Flag("bar-row", "Rows between the hit bar and the bottom").Default("8").Envar("ENCORE_BAR_ROW").UintVar(&c.BarRow)
	app.Flag("spacing", "Columns between keys").Default("6").Short('S').Envar("ENCORE_SPACING").UintVar(&c.ColumnSpacing)
	app.Flag("keys", "Keys for the four lanes").Default("dfjk").Short('k').Envar("ENCORE_KEYS").StringVar(&keys)
	app.Flag("level", "Player level").Default("0").Envar("ENCORE_LEVEL").IntVar(&c.Level)
	app.Flag("drunkenness", "Player drunkenness, 0-100").Default("0").Envar("ENCORE_DRUNKENNESS").IntVar(&c.Drunkenness)
	app.Flag("health", "Player health").Default("100").Envar("ENCORE_HEALTH").IntVar(&c.Health)
	app.Flag("audio", "Play the song audio").Default("true").Envar("ENCORE_AUDIO").BoolVar(&c.Audio)
	app.Flag("log", "Log file").Default("encore.log").Envar("ENCORE_LOG").StringVar(&c.LogFile)
	app.Flag("debug", "Log every judgment").Envar("ENCORE_DEBUG").BoolVar(&c.Debug)
	app.Flag("history", "Print the wallet and the sessions played on the chart, then exit").BoolVar(&c.History)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	var err error
	if c.Mode, err = engine.ParseMode(mode); nil != err {
		return nil, err
	}
	c.Keys = []rune(keys)
	if len(c.Keys) != game.NLanes {
		return nil, errKeys(len(c.Keys))
	}
	if c.Drunkenness < 0 {
		c.Drunkenness = 0
	} else if c.Drunkenness > 100 {
		c.Drunkenness = 100
	}
	return &c, nil
}
