package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/pipeline"
)

const configFile = "config.toml"

// Config is the on-disk configuration. Every field is optional.
//
//	padding = 32
//	style = "square"
//	formats = ["svg", "png"]
//	scale = 3
//
//	[theme]
//	group_fill = "whitesmoke"
//	group_stroke = "rgb(90, 90, 90)"
//	font_family = "Inter"
//	font_size = 16
type Config struct {
	Padding *float64       `toml:"padding"`
	Style   string         `toml:"style"`
	Formats []string       `toml:"formats"`
	Scale   float64        `toml:"scale"`
	Theme   pipeline.Theme `toml:"theme"`
}

// defaultConfigPath returns $XDG_CONFIG_HOME/canvas2svg/config.toml.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads the config at path, or the default path when path is
// empty. A missing default file yields an empty config; a missing explicit
// file is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Theme.Normalize(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// apply overlays the config on opts.
func (c Config) apply(opts *pipeline.Options) {
	if c.Padding != nil {
		opts.Padding = *c.Padding
	}
	if c.Style != "" {
		opts.Style = c.Style
	}
	if len(c.Formats) > 0 {
		opts.Formats = c.Formats
	}
	if c.Scale != 0 {
		opts.Scale = c.Scale
	}
	opts.Theme = c.Theme
}

// optionFlags holds the conversion flags shared by render and serve.
type optionFlags struct {
	config  string
	padding float64
	style   string
	formats string
	scale   float64
}

func (f *optionFlags) register(fs *pflag.FlagSet, withFormats bool) {
	fs.StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/canvas2svg/config.toml)")
	fs.Float64Var(&f.padding, "padding", pipeline.DefaultPadding, "margin around the content")
	fs.StringVar(&f.style, "style", pipeline.DefaultStyle, "visual style: rounded (default), square")
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	if withFormats {
		fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	}
}

// resolve builds options from defaults, then the config file, then flags
// the user set explicitly.
func (f *optionFlags) resolve(fs *pflag.FlagSet) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	cfg, err := loadConfig(f.config)
	if err != nil {
		return opts, err
	}
	cfg.apply(&opts)

	if fs.Changed("padding") {
		opts.Padding = f.padding
	}
	if fs.Changed("style") {
		opts.Style = f.style
	}
	if fs.Changed("scale") {
		opts.Scale = f.scale
	}
	if fs.Changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
