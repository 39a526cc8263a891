package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-desk/pkg/focus"
)

const minimalDB = `
database:
  host: localhost
  name: dealdesk
  user: broker
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "dealdesk", cfg.Database.Name)
				assert.Equal(t, "broker", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDB,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, focus.DefaultPolicy(), cfg.Focus.Policy())
				assert.Equal(t, 3, cfg.Focus.OnboardingLateDays)
				assert.Equal(t, 48*time.Hour, cfg.Feedback.IgnoredAfter)
				assert.Equal(t, "0 0 * * 1", cfg.Schedule.TouchResetCron)
				assert.Empty(t, cfg.Schedule.DigestCron)
				assert.Equal(t, time.Hour, cfg.Schedule.RescoreInterval)
				assert.Equal(t, "UTC", cfg.Schedule.Timezone)
				assert.Equal(t, "Deal Desk", cfg.Notifications.Discord.Username)
				assert.Equal(t, 2*time.Second, cfg.Notifications.Discord.RateLimit)
				assert.Empty(t, cfg.Tracing.Endpoint)
				assert.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0.0001)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDB + `  password: "${TEST_DD_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DD_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database fields",
			yaml: `
database:
  port: 5432
`,
			wantErr: "database.host is required",
		},
		{
			name: "negative caps rejected",
			yaml: minimalDB + `
focus:
  buyer_weekly_cap: -1
`,
			wantErr: "focus weekly caps must not be negative",
		},
		{
			name: "negative daily limit rejected",
			yaml: minimalDB + `
focus:
  daily_limit: -1
`,
			wantErr: "focus.daily_limit must be at least 1",
		},
		{
			name: "negative hot deal limit rejected",
			yaml: minimalDB + `
focus:
  hot_deal_limit: -3
`,
			wantErr: "focus.hot_deal_limit must be at least 1",
		},
		{
			name: "negative aging limit rejected",
			yaml: minimalDB + `
focus:
  aging_limit: -5
`,
			wantErr: "focus.aging_limit must be at least 1",
		},
		{
			name: "invalid touch reset cron",
			yaml: minimalDB + `
schedule:
  touch_reset_cron: "every monday"
`,
			wantErr: "schedule.touch_reset_cron",
		},
		{
			name: "invalid digest cron",
			yaml: minimalDB + `
schedule:
  digest_cron: "61 * * * *"
`,
			wantErr: "schedule.digest_cron",
		},
		{
			name: "unknown timezone",
			yaml: minimalDB + `
schedule:
  timezone: Mars/Olympus
`,
			wantErr: "schedule.timezone",
		},
		{
			name: "discord enabled without webhook",
			yaml: minimalDB + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required when discord is enabled",
		},
		{
			name: "sample ratio out of range",
			yaml: minimalDB + `
tracing:
  sample_ratio: 2
`,
			wantErr: "tracing.sample_ratio must be between 0 and 1",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: dealdesk_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
focus:
  buyer_weekly_cap: 4
  seller_weekly_cap: 1
  daily_limit: 15
  hot_deal_limit: 5
  aging_days: 21
  aging_limit: 8
  onboarding_late_days: 2
feedback:
  ignored_after: 72h
schedule:
  touch_reset_cron: "0 6 * * 0"
  digest_cron: "0 8 * * 1-5"
  rescore_interval: 30m
  timezone: Asia/Dubai
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
    rate_limit: 5s
tracing:
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, focus.Policy{
					BuyerWeeklyCap:  4,
					SellerWeeklyCap: 1,
					DailyLimit:      15,
					HotDealLimit:    5,
					AgingDays:       21,
					AgingLimit:      8,
				}, cfg.Focus.Policy())
				assert.Equal(t, 2, cfg.Focus.OnboardingLateDays)
				assert.Equal(t, 72*time.Hour, cfg.Feedback.IgnoredAfter)
				assert.Equal(t, "0 8 * * 1-5", cfg.Schedule.DigestCron)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.RescoreInterval)
				assert.Equal(t, "Asia/Dubai", cfg.Schedule.Timezone)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, 5*time.Second, cfg.Notifications.Discord.RateLimit)
				assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
				assert.True(t, cfg.Tracing.Insecure)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DD_FROM_DOTENV=broker\n"), 0o600))
	t.Setenv("TEST_DD_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("TEST_DD_FROM_DOTENV"))

	require.NoError(t, LoadEnvFiles("", filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "broker", os.Getenv("TEST_DD_FROM_DOTENV"))

	cfg, err := Parse([]byte(`
database:
  host: localhost
  name: dealdesk
  user: ${TEST_DD_FROM_DOTENV}
`))
	require.NoError(t, err)
	assert.Equal(t, "broker", cfg.Database.User)
}

func TestLoadEnvFiles_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DD_PRESET=file\n"), 0o600))
	t.Setenv("TEST_DD_PRESET", "process")

	require.NoError(t, LoadEnvFiles(path))
	assert.Equal(t, "process", os.Getenv("TEST_DD_PRESET"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "dealdesk",
				User:     "broker",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=dealdesk user=broker password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "dealdesk",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=dealdesk user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
