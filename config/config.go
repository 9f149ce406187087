package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & transport
	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig

	// Study assistant specifics
	LLM            LLMConfig
	Intents        IntentsConfig
	Cron           CronConfig
	GoogleCalendar GoogleCalendarConfig
	Timezone       string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// Requests per minute allowed per client on the chat endpoint.
	ChatRateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LLMConfig holds configuration for the classification model endpoint.
type LLMConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	BaseURL string
}

// IntentsConfig points at the static intent definition file.
type IntentsConfig struct {
	Path string
}

// CronConfig tunes the reminder delivery engine.
type CronConfig struct {
	Interval     time.Duration
	BatchSize    int
	OverdueGrace time.Duration
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ChatRateLimitPerMin = viper.GetInt("http_server.chat_rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = expandEnvVar(viper.GetString("postgres.password"))
	cfg.Postgres.Name = viper.GetString("postgres.name")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	// SMTP
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = expandEnvVar(viper.GetString("smtp.password"))
	cfg.SMTP.From = viper.GetString("smtp.from")

	// LLM classifier
	cfg.LLM.Enabled = viper.GetBool("llm.enabled")
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	if cfg.LLM.Enabled && cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("llm.enabled is true but llm.api_key is empty")
	}

	// Intent definitions
	cfg.Intents.Path = viper.GetString("intents.path")

	// Cron engine
	cfg.Cron.Interval = viper.GetDuration("cron.interval")
	cfg.Cron.BatchSize = viper.GetInt("cron.batch_size")
	cfg.Cron.OverdueGrace = viper.GetDuration("cron.overdue_grace")

	// Google Calendar mirror
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Timezone = viper.GetString("timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.chat_rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.name", "study_assistant")
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.min_conns", 2)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("smtp.port", 587)

	viper.SetDefault("llm.enabled", false)
	viper.SetDefault("llm.model", "gemini-2.5-flash")

	viper.SetDefault("intents.path", "./config/intents.json")

	viper.SetDefault("cron.interval", "5m")
	viper.SetDefault("cron.batch_size", 200)
	viper.SetDefault("cron.overdue_grace", "24h")

	viper.SetDefault("timezone", "Asia/Ho_Chi_Minh")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
