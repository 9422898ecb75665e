package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/careconnect/booking-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	UserService   UserServiceConfig   `toml:"user_service"`
	Notifications NotificationsConfig `toml:"notifications"`
	Schedule      ScheduleConfig      `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор и настройки key-value бэкенда.
// Backend: "memory" | "file" | "redis" | "postgres"
type StorageConfig struct {
	Backend  string         `toml:"backend"`
	Timeout  int            `toml:"timeout"` // seconds, per operation
	File     FileStorage    `toml:"file"`
	Redis    RedisStorage   `toml:"redis"`
	Postgres DatabaseConfig `toml:"postgres"`
}

// FileStorage настройки файлового бэкенда
type FileStorage struct {
	Dir string `toml:"dir"`
}

// RedisStorage настройки redis бэкенда
type RedisStorage struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DatabaseConfig настройки postgres бэкенда
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// UserServiceConfig настройки клиента UserService
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// NotificationsConfig выбор и настройки notification sink.
// Backend: "rabbitmq" | "log"
type NotificationsConfig struct {
	Backend string `toml:"backend"`
	Timeout int    `toml:"timeout"` // seconds, per dispatch
	AMQPURL string `toml:"amqp_url"`
	Queue   string `toml:"queue"`
}

// ScheduleConfig дефолтные значения расписания, применяются пока
// администратор не сохранил свою конфигурацию
type ScheduleConfig struct {
	DefaultWorkingHoursStart   string `toml:"default_working_hours_start"`
	DefaultWorkingHoursEnd     string `toml:"default_working_hours_end"`
	DefaultSlotDurationMinutes int    `toml:"default_slot_duration_minutes"`
	DefaultMaxAdvanceDays      int    `toml:"default_max_advance_days"`
	DefaultNotificationAddress string `toml:"default_notification_address"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.Timeout == 0 {
		cfg.Storage.Timeout = 5
	}
	if cfg.Storage.File.Dir == "" {
		cfg.Storage.File.Dir = "data"
	}
	if cfg.Notifications.Backend == "" {
		cfg.Notifications.Backend = "log"
	}
	if cfg.Notifications.Timeout == 0 {
		cfg.Notifications.Timeout = 5
	}
	if cfg.UserService.Timeout == 0 {
		cfg.UserService.Timeout = 5
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-service"
	}
	if cfg.Schedule.DefaultWorkingHoursStart == "" {
		cfg.Schedule.DefaultWorkingHoursStart = string(domain.DefaultWorkingHoursStart)
	}
	if cfg.Schedule.DefaultWorkingHoursEnd == "" {
		cfg.Schedule.DefaultWorkingHoursEnd = string(domain.DefaultWorkingHoursEnd)
	}
	if cfg.Schedule.DefaultSlotDurationMinutes == 0 {
		cfg.Schedule.DefaultSlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.Schedule.DefaultMaxAdvanceDays == 0 {
		cfg.Schedule.DefaultMaxAdvanceDays = domain.DefaultMaxAdvanceDays
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case "memory", "file", "redis", "postgres":
	default:
		return fmt.Errorf("config: unknown storage backend %q", cfg.Storage.Backend)
	}

	switch cfg.Notifications.Backend {
	case "rabbitmq", "log":
	default:
		return fmt.Errorf("config: unknown notifications backend %q", cfg.Notifications.Backend)
	}

	if cfg.Storage.Backend == "redis" && cfg.Storage.Redis.Addr == "" {
		return fmt.Errorf("config: storage.redis.addr is required for the redis backend")
	}
	if cfg.Storage.Backend == "postgres" && cfg.Storage.Postgres.Host == "" {
		return fmt.Errorf("config: storage.postgres.host is required for the postgres backend")
	}
	if cfg.Notifications.Backend == "rabbitmq" && cfg.Notifications.AMQPURL == "" {
		return fmt.Errorf("config: notifications.amqp_url is required for the rabbitmq backend")
	}

	return nil
}
