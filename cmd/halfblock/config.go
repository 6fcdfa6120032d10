package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"

	"git.sr.ht/~rockorager/halfblock"
	"github.com/BurntSushi/toml"
	"github.com/muesli/termenv"
)

// options is the result of merging defaults, the config file and flags
type options struct {
	cfg     halfblock.Config
	width   int
	height  int
	verbose bool
	files   []string
}

// fileConfig is the layout of config.toml
type fileConfig struct {
	X           *uint `toml:"x"`
	Y           *int  `toml:"y"`
	Absolute    *bool `toml:"absolute"`
	TrueColor   *bool `toml:"truecolor"`
	Transparent *bool `toml:"transparent"`
	Width       *int  `toml:"width"`
	Height      *int  `toml:"height"`
	Verbose     *bool `toml:"verbose"`
}

type environ func(string) string

func (e environ) Getenv(key string) string {
	return e(key)
}

func (e environ) Environ() []string {
	return nil
}

// detectTrueColor reports whether the environment advertises 24-bit color
func detectTrueColor(getenv func(string) string) bool {
	out := termenv.NewOutput(io.Discard,
		termenv.WithEnvironment(environ(getenv)),
		termenv.WithTTY(true),
	)
	return out.EnvColorProfile() == termenv.TrueColor
}

// defaultConfigPath returns the config file looked up when -config is not
// given, or "" when there is no config directory
func defaultConfigPath(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "halfblock", "config.toml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "halfblock", "config.toml")
	}
	return ""
}

func parseArgs(args []string, stderr io.Writer, getenv func(string) string) (*options, error) {
	set := flag.NewFlagSet("halfblock", flag.ContinueOnError)
	set.SetOutput(stderr)
	set.Usage = func() {
		fmt.Fprintln(set.Output(), "usage: halfblock [flags] file...")
		set.PrintDefaults()
	}

	var (
		x           uint
		y           int
		absolute    bool
		truecolor   bool
		transparent bool
		width       int
		height      int
		verbose     bool
		configPath  string
	)
	set.UintVar(&x, "x", 0, "columns to move right before each row")
	set.IntVar(&y, "y", 0, "rows to move down (negative: up) before printing")
	set.BoolVar(&absolute, "absolute", false, "place the image relative to the top left corner")
	set.BoolVar(&truecolor, "truecolor", false, "use 24-bit colors (default from COLORTERM)")
	set.BoolVar(&transparent, "transparent", false, "leave transparent pixels unpainted")
	set.IntVar(&width, "width", 0, "width in columns")
	set.IntVar(&height, "height", 0, "height in rows")
	set.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/halfblock/config.toml)")
	set.BoolVar(&verbose, "v", false, "log to stderr")
	set.BoolVar(&verbose, "verbose", false, "log to stderr")
	if err := set.Parse(args); err != nil {
		return nil, err
	}

	opts := &options{}
	opts.cfg.TrueColor = detectTrueColor(getenv)

	path := configPath
	if path == "" {
		path = defaultConfigPath(getenv)
	}
	if path != "" {
		err := loadConfigFile(path, opts)
		switch {
		case err == nil:
		case configPath == "" && errors.Is(err, fs.ErrNotExist):
			// the default file is optional
		default:
			return nil, err
		}
	}

	var err error
	set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			err = errors.Join(err, setX(opts, x))
		case "y":
			err = errors.Join(err, setY(opts, y))
		case "absolute":
			opts.cfg.AbsoluteOffset = absolute
		case "truecolor":
			opts.cfg.TrueColor = truecolor
		case "transparent":
			opts.cfg.Transparent = transparent
		case "width":
			opts.width = width
		case "height":
			opts.height = height
		case "v", "verbose":
			opts.verbose = verbose
		}
	})
	if err != nil {
		return nil, err
	}
	if opts.width < 0 || opts.height < 0 {
		return nil, fmt.Errorf("width and height must not be negative")
	}
	if err := opts.cfg.Validate(); err != nil {
		return nil, err
	}

	opts.files = set.Args()
	if len(opts.files) == 0 {
		set.Usage()
		return nil, fmt.Errorf("no image given")
	}
	return opts, nil
}

// loadConfigFile applies the values set in the TOML file at path
func loadConfigFile(path string, opts *options) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if fc.X != nil {
		if err := setX(opts, *fc.X); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if fc.Y != nil {
		if err := setY(opts, *fc.Y); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if fc.Absolute != nil {
		opts.cfg.AbsoluteOffset = *fc.Absolute
	}
	if fc.TrueColor != nil {
		opts.cfg.TrueColor = *fc.TrueColor
	}
	if fc.Transparent != nil {
		opts.cfg.Transparent = *fc.Transparent
	}
	if fc.Width != nil {
		opts.width = *fc.Width
	}
	if fc.Height != nil {
		opts.height = *fc.Height
	}
	if fc.Verbose != nil {
		opts.verbose = *fc.Verbose
	}
	return nil
}

func setX(opts *options, x uint) error {
	if x > math.MaxUint16 {
		return fmt.Errorf("x offset %d out of range", x)
	}
	opts.cfg.X = uint16(x)
	return nil
}

func setY(opts *options, y int) error {
	if y < math.MinInt16 || y > math.MaxInt16 {
		return fmt.Errorf("y offset %d out of range", y)
	}
	opts.cfg.Y = int16(y)
	return nil
}
