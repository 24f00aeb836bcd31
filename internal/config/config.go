package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Inventory InventoryConfig `toml:"inventory"`
	Payment   PaymentConfig   `toml:"payment"`
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
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// InventoryConfig начальные остатки номеров по категориям.
// Леджер создается один раз на старте процесса с этими значениями.
type InventoryConfig struct {
	Standard  int `toml:"standard"`
	Luxury    int `toml:"luxury"`
	Apartment int `toml:"apartment"`
}

// Capacities возвращает остатки в виде, пригодном для создания леджера
func (i *InventoryConfig) Capacities() map[domain.RoomCategory]int {
	return map[domain.RoomCategory]int{
		domain.RoomStandard:  i.Standard,
		domain.RoomLuxury:    i.Luxury,
		domain.RoomApartment: i.Apartment,
	}
}

// PaymentConfig настройки платёжного шлюза
type PaymentConfig struct {
	// EURRate фиксированный опубликованный курс конверсии USD -> EUR
	EURRate string `toml:"eur_rate"`
}

// Load читает конфигурацию из toml-файла и применяет дефолты
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "hotel_bookings",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "stdout",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-hotel-booking",
		},
		Inventory: InventoryConfig{
			Standard:  10,
			Luxury:    5,
			Apartment: 3,
		},
		Payment: PaymentConfig{
			EURRate: "0.85",
		},
	}
}
