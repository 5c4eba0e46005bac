package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configurations.
type Config struct {
	Database struct {
		Driver   string `mapstructure:"driver"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Kafka struct {
		Enabled bool     `mapstructure:"enabled"`
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	Jobs struct {
		Enabled            bool          `mapstructure:"enabled"`
		APIURL             string        `mapstructure:"api_url"`
		HeartbeatInterval  time.Duration `mapstructure:"heartbeat_interval"`
		HeartbeatLog       string        `mapstructure:"heartbeat_log"`
		ReminderInterval   time.Duration `mapstructure:"reminder_interval"`
		ReminderLog        string        `mapstructure:"reminder_log"`
		ReminderWindowDays int           `mapstructure:"reminder_window_days"`
	} `mapstructure:"jobs"`
}

// LoadConfig reads configuration from config.yml, falling back to defaults
// for any key the file does not set.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.user", "root")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "crm_db")
	viper.SetDefault("server.port", ":3000")
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"127.0.0.1:9092"})
	viper.SetDefault("kafka.topic", "crm-order-events")
	viper.SetDefault("jobs.enabled", false)
	viper.SetDefault("jobs.api_url", "http://localhost:3000")
	viper.SetDefault("jobs.heartbeat_interval", "5m")
	viper.SetDefault("jobs.heartbeat_log", "/tmp/crm_heartbeat_log.txt")
	viper.SetDefault("jobs.reminder_interval", "12h")
	viper.SetDefault("jobs.reminder_log", "/tmp/order_reminders_log.txt")
	viper.SetDefault("jobs.reminder_window_days", 7)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults apply.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
