package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Query    Query    `mapstructure:",squash"`
	Rollup   Rollup   `mapstructure:",squash"`
	Reports  Reports  `mapstructure:",squash"`
	Grant    Grant    `mapstructure:",squash"`
	Mail     Mail     `mapstructure:",squash"`
	Migrate  Migrate  `mapstructure:",squash"`
}

type App struct {
	Env            string   `mapstructure:"app_env"`
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Query bounds every ad-hoc query issued against the event store.
type Query struct {
	DefaultLimit       int `mapstructure:"query_default_limit"`
	MaxLimit           int `mapstructure:"query_max_limit"`
	MaxRangeDays       int `mapstructure:"query_max_range_days"`
	DefaultWindowDays  int `mapstructure:"query_default_window_days"`
	MaxSessionEventRow int `mapstructure:"query_max_session_event_rows"`
}

type Rollup struct {
	CronSchedule         string `mapstructure:"rollup_cron"`
	MaxConcurrentTenants int    `mapstructure:"rollup_max_concurrent_tenants"`
	Enabled              bool   `mapstructure:"rollup_enabled"`
}

type Reports struct {
	CronSchedule         string `mapstructure:"reports_cron"`
	BatchSize            int    `mapstructure:"reports_batch_size"`
	MaxConcurrentReports int    `mapstructure:"reports_max_concurrent"`
	Enabled              bool   `mapstructure:"reports_enabled"`
}

type Grant struct {
	DeviationAlertPoints float64 `mapstructure:"grant_deviation_alert_points"`
	LineAlertPercent     float64 `mapstructure:"grant_line_alert_percent"`
}

type Mail struct {
	Host             string        `mapstructure:"smtp_host"`
	Port             int           `mapstructure:"smtp_port"`
	User             string        `mapstructure:"smtp_user"`
	Password         string        `mapstructure:"smtp_password"`
	From             string        `mapstructure:"smtp_from"`
	FromName         string        `mapstructure:"smtp_from_name"`
	UseTLS           bool          `mapstructure:"smtp_use_tls"`
	Timeout          time.Duration `mapstructure:"smtp_timeout"`
	RatePerSecond    float64       `mapstructure:"mail_rate_per_second"`
	Burst            int           `mapstructure:"mail_burst"`
	FailureThreshold uint32        `mapstructure:"mail_breaker_failure_threshold"`
	OpenTimeout      time.Duration `mapstructure:"mail_breaker_open_timeout"`
}

// Migrate drives cmd/migrate. The seeded default dashboard belongs to SeedOwnerID.
type Migrate struct {
	SeedDashboards bool  `mapstructure:"migrate_seed_dashboards"`
	SeedOwnerID    int64 `mapstructure:"migrate_seed_owner_id"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("QUERY_DEFAULT_LIMIT", 100)
	viper.SetDefault("QUERY_MAX_LIMIT", 1000)
	viper.SetDefault("QUERY_MAX_RANGE_DAYS", 366)
	viper.SetDefault("QUERY_DEFAULT_WINDOW_DAYS", 30)
	viper.SetDefault("QUERY_MAX_SESSION_EVENT_ROWS", 500000)

	viper.SetDefault("ROLLUP_CRON", "0 2 * * *") // 02:00 UTC
	viper.SetDefault("ROLLUP_MAX_CONCURRENT_TENANTS", 4)
	viper.SetDefault("ROLLUP_ENABLED", true)

	viper.SetDefault("REPORTS_CRON", "0 * * * *") // hourly
	viper.SetDefault("REPORTS_BATCH_SIZE", 200)
	viper.SetDefault("REPORTS_MAX_CONCURRENT", 3)
	viper.SetDefault("REPORTS_ENABLED", true)

	viper.SetDefault("GRANT_DEVIATION_ALERT_POINTS", 15.0)
	viper.SetDefault("GRANT_LINE_ALERT_PERCENT", 90.0)

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "reports@localhost")
	viper.SetDefault("SMTP_FROM_NAME", "Analytics Reports")
	viper.SetDefault("SMTP_USE_TLS", true)
	viper.SetDefault("SMTP_TIMEOUT", "30s")
	viper.SetDefault("MAIL_RATE_PER_SECOND", 5.0)
	viper.SetDefault("MAIL_BURST", 10)
	viper.SetDefault("MAIL_BREAKER_FAILURE_THRESHOLD", 5)
	viper.SetDefault("MAIL_BREAKER_OPEN_TIMEOUT", "60s")

	viper.SetDefault("MIGRATE_SEED_DASHBOARDS", true)
	viper.SetDefault("MIGRATE_SEED_OWNER_ID", 1)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in the known locations")
}
