// Package config - загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	AccountsService AccountsServiceConfig `toml:"accounts_service"`
	BusinessWindow  BusinessWindowConfig  `toml:"business_window"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AccountsServiceConfig настройки клиента сервиса аккаунтов
type AccountsServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BusinessWindowConfig рабочие часы, в которые доступны слоты
// Слоты часовые; FirstHour и LastHour - первый и последний час начала слота (включительно)
type BusinessWindowConfig struct {
	FirstHour          int  `toml:"first_hour"`
	LastHour           int  `toml:"last_hour"`
	NormalizeWeekStart bool `toml:"normalize_week_start"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.BusinessWindow.FirstHour < 0 || c.BusinessWindow.FirstHour > 23 {
		return fmt.Errorf("config: business_window.first_hour must be in [0, 23]")
	}
	if c.BusinessWindow.LastHour < 0 || c.BusinessWindow.LastHour > 23 {
		return fmt.Errorf("config: business_window.last_hour must be in [0, 23]")
	}
	if c.BusinessWindow.FirstHour > c.BusinessWindow.LastHour {
		return fmt.Errorf("config: business_window.first_hour must not exceed last_hour")
	}
	return nil
}
