package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

const EnvPrefix = "UPTIME"

type Config struct {
	Interval   int           `mapstructure:"interval"`  // seconds between probes; 0 runs once
	Count      int           `mapstructure:"count"`     // max probes when polling; 0 is unbounded
	URL        string        `mapstructure:"url"`       // skips the interactive prompt when set
	LogFile    string        `mapstructure:"log-file"`  // uptime log, working-directory relative
	Timeout    time.Duration `mapstructure:"timeout"`   // per-probe request timeout
	NoColor    bool          `mapstructure:"no-color"`  // plain console output
	DryRun     bool          `mapstructure:"dry-run"`   // keep log lines in memory only
	LogDir     string        `mapstructure:"log-dir"`   // diagnostic logs; empty means stderr
	LogLevel   string        `mapstructure:"log-level"` // zap level name
	ConfigFile string        `mapstructure:"config"`    // optional yaml/json/toml file
}

// Error marks a configuration problem detected before any probing starts.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "config: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// IntervalDuration converts Interval to a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// Load resolves configuration from args, UPTIME_* environment variables and
// an optional config file, in that order of precedence. Usage and flag errors
// are printed to usage. pflag.ErrHelp is returned unwrapped for --help.
func Load(args []string, usage io.Writer) (*Config, error) {
	fs := newFlagSet(usage)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &Error{Err: err}
	}
	if fs.NArg() > 0 {
		return nil, &Error{Err: fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, &Error{Err: err}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Err: fmt.Errorf("error reading config file: %w", err)}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to unmarshal config: %w", err)}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, &Error{Err: err}
	}
	return &cfg, nil
}

func newFlagSet(usage io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("uptime", pflag.ContinueOnError)
	fs.SetOutput(usage)
	fs.SortFlags = false

	fs.Int("interval", 0, "seconds between checks; 0 checks once")
	fs.Int("count", 0, "stop after this many checks when polling (0 = forever)")
	fs.String("url", "", "website to check; prompts when empty")
	fs.String("log-file", "uptime_log.txt", "uptime log file")
	fs.Duration("timeout", 5*time.Second, "request timeout")
	fs.Bool("no-color", false, "disable colored output")
	fs.Bool("dry-run", false, "do not write the uptime log file")
	fs.String("log-dir", "", "directory for diagnostic logs (default: stderr)")
	fs.String("log-level", "info", "diagnostic log level")
	fs.String("config", "", "optional config file")
	return fs
}

func validateConfig(cfg *Config) error {
	var err error
	if cfg.Interval < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid interval %d: must be a non-negative integer (seconds)", cfg.Interval))
	}
	if cfg.Count < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid count %d", cfg.Count))
	}
	if cfg.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("invalid timeout %v", cfg.Timeout))
	}
	if strings.TrimSpace(cfg.LogFile) == "" && !cfg.DryRun {
		err = multierr.Append(err, errors.New("log file is required"))
	}
	if _, lerr := zapcore.ParseLevel(cfg.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("invalid log level %q", cfg.LogLevel))
	}
	return err
}
