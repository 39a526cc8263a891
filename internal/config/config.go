// Package config handles loading and validating the deal-desk server
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/deal-desk/pkg/feedback"
	"github.com/donaldgifford/deal-desk/pkg/focus"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Focus         FocusConfig         `yaml:"focus"`
	Feedback      FeedbackConfig      `yaml:"feedback"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// FocusConfig defines the outreach protocol: weekly touch caps and the
// sizes of the derived work lists.
type FocusConfig struct {
	BuyerWeeklyCap     int `yaml:"buyer_weekly_cap"`
	SellerWeeklyCap    int `yaml:"seller_weekly_cap"`
	DailyLimit         int `yaml:"daily_limit"`
	HotDealLimit       int `yaml:"hot_deal_limit"`
	AgingDays          int `yaml:"aging_days"`
	AgingLimit         int `yaml:"aging_limit"`
	OnboardingLateDays int `yaml:"onboarding_late_days"`
}

// Policy converts the section into the aggregator's policy.
func (f *FocusConfig) Policy() focus.Policy {
	return focus.Policy{
		BuyerWeeklyCap:  f.BuyerWeeklyCap,
		SellerWeeklyCap: f.SellerWeeklyCap,
		DailyLimit:      f.DailyLimit,
		HotDealLimit:    f.HotDealLimit,
		AgingDays:       f.AgingDays,
		AgingLimit:      f.AgingLimit,
	}
}

// FeedbackConfig defines how match feedback is interpreted.
type FeedbackConfig struct {
	IgnoredAfter time.Duration `yaml:"ignored_after"` // default: 48h
}

// ScheduleConfig defines cron specs and intervals for background jobs.
type ScheduleConfig struct {
	TouchResetCron  string        `yaml:"touch_reset_cron"` // default: Monday 00:00
	DigestCron      string        `yaml:"digest_cron"`      // empty disables the digest
	RescoreInterval time.Duration `yaml:"rescore_interval"`
	Timezone        string        `yaml:"timezone"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool          `yaml:"enabled"`
	WebhookURL string        `yaml:"webhook_url"`
	Username   string        `yaml:"username"`
	RateLimit  time.Duration `yaml:"rate_limit"` // minimum spacing between posts
}

// TracingConfig defines OpenTelemetry export settings. An empty endpoint
// disables tracing.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadEnvFiles loads KEY=value pairs from the given dotenv files into the
// process environment. Variables already set are not overridden and
// missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			errs = append(errs, fmt.Errorf("loading env file %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment variables in data and decodes it as a config.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyFocusDefaults(&cfg.Focus)
	applyFeedbackDefaults(&cfg.Feedback)
	applyScheduleDefaults(&cfg.Schedule)
	applyDiscordDefaults(&cfg.Notifications.Discord)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyFocusDefaults(f *FocusConfig) {
	def := focus.DefaultPolicy()
	if f.BuyerWeeklyCap == 0 {
		f.BuyerWeeklyCap = def.BuyerWeeklyCap
	}
	if f.SellerWeeklyCap == 0 {
		f.SellerWeeklyCap = def.SellerWeeklyCap
	}
	if f.DailyLimit == 0 {
		f.DailyLimit = def.DailyLimit
	}
	if f.HotDealLimit == 0 {
		f.HotDealLimit = def.HotDealLimit
	}
	if f.AgingDays == 0 {
		f.AgingDays = def.AgingDays
	}
	if f.AgingLimit == 0 {
		f.AgingLimit = def.AgingLimit
	}
	if f.OnboardingLateDays == 0 {
		f.OnboardingLateDays = focus.DefaultOnboardingLateDays
	}
}

func applyFeedbackDefaults(f *FeedbackConfig) {
	if f.IgnoredAfter == 0 {
		f.IgnoredAfter = feedback.DefaultIgnoredAfter
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.TouchResetCron == "" {
		s.TouchResetCron = "0 0 * * 1"
	}
	if s.RescoreInterval == 0 {
		s.RescoreInterval = time.Hour
	}
	if s.Timezone == "" {
		s.Timezone = "UTC"
	}
}

func applyDiscordDefaults(d *DiscordConfig) {
	if d.Username == "" {
		d.Username = "Deal Desk"
	}
	if d.RateLimit == 0 {
		d.RateLimit = 2 * time.Second
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Focus.BuyerWeeklyCap < 0 || cfg.Focus.SellerWeeklyCap < 0 {
		errs = append(errs, fmt.Errorf("focus weekly caps must not be negative"))
	}
	for _, l := range []struct {
		name  string
		value int
	}{
		{"focus.daily_limit", cfg.Focus.DailyLimit},
		{"focus.hot_deal_limit", cfg.Focus.HotDealLimit},
		{"focus.aging_limit", cfg.Focus.AgingLimit},
	} {
		if l.value < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1", l.name))
		}
	}
	if cfg.Focus.AgingDays < 0 {
		errs = append(errs, fmt.Errorf("focus.aging_days must not be negative"))
	}
	if cfg.Feedback.IgnoredAfter < 0 {
		errs = append(errs, fmt.Errorf("feedback.ignored_after must not be negative"))
	}

	if _, err := cron.ParseStandard(cfg.Schedule.TouchResetCron); err != nil {
		errs = append(errs, fmt.Errorf("schedule.touch_reset_cron: %w", err))
	}
	if cfg.Schedule.DigestCron != "" {
		if _, err := cron.ParseStandard(cfg.Schedule.DigestCron); err != nil {
			errs = append(errs, fmt.Errorf("schedule.digest_cron: %w", err))
		}
	}
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("schedule.timezone: %w", err))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"tracing.sample_ratio must be between 0 and 1 (got %v)", cfg.Tracing.SampleRatio,
		))
	}

	return errors.Join(errs...)
}
