package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	errInvalidPort           = errors.New("config: invalid PORT number")
	errConcurrencyOutOfRange = errors.New("config: LINK_CHECK_CONCURRENCY must be 1-100")
	errTimeoutOutOfRange     = errors.New("config: LINK_CHECK_TIMEOUT must be between 1s and 60s")
	errNegativeRate          = errors.New("config: LINK_CHECK_RPS must not be negative")
	errRecentLimit           = errors.New("config: GITHUB_RECENT_LIMIT must be at least 1")
	errUnknownEnvironment    = errors.New("config: unknown TEST_ENV")
)

// Config holds all harness configuration.
type Config struct {
	Env       string          `mapstructure:"test_env"`
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	Browser   BrowserConfig   `mapstructure:"browser"`
	LinkCheck LinkCheckConfig `mapstructure:"link_check"`
	GitHub    GitHubConfig    `mapstructure:"github"`

	// EnvironmentsFile optionally replaces the built-in environment table.
	EnvironmentsFile string `mapstructure:"environments_file"`

	// Environment is the resolved entry for Env.
	Environment Environment `mapstructure:"-"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age"`
}

// BrowserConfig configures the Playwright session.
type BrowserConfig struct {
	Headless      bool          `mapstructure:"headless"`
	SlowMo        time.Duration `mapstructure:"slow_mo"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Preinstalled  bool          `mapstructure:"preinstalled"`
	ScreenshotDir string        `mapstructure:"screenshot_dir"`
}

// LinkCheckConfig configures the link validator.
type LinkCheckConfig struct {
	Concurrency       int           `mapstructure:"concurrency"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"rps"`
	BlockPrivate      bool          `mapstructure:"block_private"`
}

// GitHubConfig configures the pull-request client.
type GitHubConfig struct {
	Token       string `mapstructure:"token"`
	BaseURL     string `mapstructure:"base_url"`
	Owner       string `mapstructure:"owner"`
	Repo        string `mapstructure:"repo"`
	RecentLimit int    `mapstructure:"recent_limit"`
	MaxPages    int    `mapstructure:"max_pages"`
}

// SetDefaults registers every key with its default so AutomaticEnv can
// override it (viper only binds environment variables for known keys).
func SetDefaults(v *viper.Viper) {
	v.SetDefault("test_env", "production")
	v.SetDefault("port", "8080")
	v.SetDefault("environments_file", "")

	v.SetDefault("log.level", "ERROR")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)

	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.slow_mo", "0s")
	v.SetDefault("browser.timeout", "30s")
	v.SetDefault("browser.preinstalled", false)
	v.SetDefault("browser.screenshot_dir", "test-results/screenshots")

	v.SetDefault("link_check.concurrency", 10)
	v.SetDefault("link_check.timeout", "10s")
	v.SetDefault("link_check.rps", 0.0)
	v.SetDefault("link_check.block_private", false)

	v.SetDefault("github.token", "")
	v.SetDefault("github.base_url", "")
	v.SetDefault("github.owner", "appwrite")
	v.SetDefault("github.repo", "appwrite")
	v.SetDefault("github.recent_limit", 5)
	v.SetDefault("github.max_pages", 1)
}

// Load reads configuration from environment variables with sensible
// defaults. Keys map to variables by upper-casing and replacing dots, so
// link_check.concurrency is read from LINK_CHECK_CONCURRENCY.
func Load() (Config, error) {
	return FromViper(NewViper())
}

// NewViper returns a viper instance with every default registered and
// environment variables bound. Callers may layer a config file or command
// flags on top before passing it to FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper decodes, resolves and validates the configuration held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	envs, err := LoadEnvironments(cfg.EnvironmentsFile)
	if err != nil {
		return Config{}, err
	}
	env, err := envs.Lookup(cfg.Env)
	if err != nil {
		return Config{}, err
	}
	cfg.Environment = env

	return cfg, nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.LinkCheck.Concurrency < 1 || c.LinkCheck.Concurrency > 100 {
		return fmt.Errorf("%w: got %d", errConcurrencyOutOfRange, c.LinkCheck.Concurrency)
	}

	if c.LinkCheck.Timeout < time.Second || c.LinkCheck.Timeout > time.Minute {
		return fmt.Errorf("%w: got %s", errTimeoutOutOfRange, c.LinkCheck.Timeout)
	}

	if c.LinkCheck.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: got %g", errNegativeRate, c.LinkCheck.RequestsPerSecond)
	}

	if c.GitHub.RecentLimit < 1 {
		return fmt.Errorf("%w: got %d", errRecentLimit, c.GitHub.RecentLimit)
	}

	return nil
}
