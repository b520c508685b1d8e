package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Драйверы хранилища бронирований
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Events    EventsConfig    `toml:"events"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig HTTP сервер; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища списка бронирований
type StorageConfig struct {
	Driver    string `toml:"driver"`
	Namespace string `toml:"namespace"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// EventsConfig публикация событий бронирования в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type CatalogConfig struct {
	Path string `toml:"path"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	Timezone                string `toml:"timezone"`
	CancellationNoticeHours int    `toml:"cancellation_notice_hours"`
	ProcessingDelayMs       int    `toml:"processing_delay_ms"`
	FirstWeekday            int    `toml:"first_weekday"`
}

// Location часовой пояс сервиса; пустое значение означает локальный пояс
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c BookingConfig) CancellationNotice() time.Duration {
	return time.Duration(c.CancellationNoticeHours) * time.Hour
}

func (c BookingConfig) ProcessingDelay() time.Duration {
	return time.Duration(c.ProcessingDelayMs) * time.Millisecond
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default конфигурация по умолчанию; Load накладывает на неё значения из файла
func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "lesson_booking",
		},
		Storage: StorageConfig{
			Driver:    StorageMemory,
			Namespace: "userBookings",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "lessons",
		},
		Events: EventsConfig{
			Exchange: "lesson_bookings",
		},
		Catalog: CatalogConfig{Path: "catalog.toml"},
		Booking: BookingConfig{
			CancellationNoticeHours: 24,
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("%w: storage.driver=%q, expected memory|postgres|redis", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.Namespace == "" {
		return fmt.Errorf("%w: storage.namespace is empty", ErrInvalidConfig)
	}

	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("%w: events.url is required when events are enabled", ErrInvalidConfig)
	}

	if c.Catalog.Path == "" {
		return fmt.Errorf("%w: catalog.path is empty", ErrInvalidConfig)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone=%q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	if c.Booking.CancellationNoticeHours < 1 {
		return fmt.Errorf("%w: booking.cancellation_notice_hours=%d, expected at least 1",
			ErrInvalidConfig, c.Booking.CancellationNoticeHours)
	}
	if c.Booking.ProcessingDelayMs < 0 {
		return fmt.Errorf("%w: booking.processing_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.Booking.FirstWeekday < 0 || c.Booking.FirstWeekday > 6 {
		return fmt.Errorf("%w: booking.first_weekday=%d, expected 0..6", ErrInvalidConfig, c.Booking.FirstWeekday)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.requests_per_minute must be positive", ErrInvalidConfig)
	}

	return nil
}
