package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Backend  BackendConfig
	SMTP     SMTPConfig
	Mapbox   MapboxConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Host          string
	Port          int
	Env           string
	PublicURL     string
	CookieSecure  bool
	AllowedOrigin string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SimpleProtocol - без подготовленных выражений (пулер транзакций управляемого бэкенда)
	SimpleProtocol bool
	ConnectRetries int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LocationsCacheTTL time.Duration
	ExtrasCacheTTL    time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type WorkerConfig struct {
	Enabled         bool
	ConsumerGroup   string
	BatchSize       int
	ShutdownTimeout time.Duration
}

// BackendConfig - управляемый бэкенд (hosted auth + remote functions)
type BackendConfig struct {
	URL            string
	AnonKey        string
	JWTSecret      string
	RequestTimeout time.Duration
}

// SMTPConfig - параметры почтового транспорта
type SMTPConfig struct {
	Host      string
	Port      int
	Secure    bool
	User      string
	Password  string
	From      string
	Recipient string
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	DrivingProfile string
	RequestTimeout int
}

// BookingConfig - параметры бронирования
type BookingConfig struct {
	Currency             string
	DefaultLocationLimit int
	AdminPageSize        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env необязателен: в контейнере всё приходит из окружения
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults()

	cfg := &Config{
		Server: ServerConfig{
			Host:          viper.GetString("API_HOST"),
			Port:          viper.GetInt("API_PORT"),
			Env:           viper.GetString("API_ENV"),
			PublicURL:     viper.GetString("PUBLIC_URL"),
			CookieSecure:  viper.GetBool("COOKIE_SECURE"),
			AllowedOrigin: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			SimpleProtocol:  viper.GetBool("DB_SIMPLE_PROTOCOL"),
			ConnectRetries:  viper.GetInt("DB_CONNECT_RETRIES"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LocationsCacheTTL: time.Duration(viper.GetInt("LOCATIONS_CACHE_TTL")) * time.Second,
			ExtrasCacheTTL:    time.Duration(viper.GetInt("EXTRAS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:   viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:       viper.GetInt("WORKER_BATCH_SIZE"),
			ShutdownTimeout: time.Duration(viper.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		Backend: BackendConfig{
			URL:            viper.GetString("BACKEND_URL"),
			AnonKey:        viper.GetString("BACKEND_ANON_KEY"),
			JWTSecret:      viper.GetString("BACKEND_JWT_SECRET"),
			RequestTimeout: time.Duration(viper.GetInt("BACKEND_REQUEST_TIMEOUT")) * time.Second,
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetInt("SMTP_PORT"),
			Secure:    viper.GetBool("SMTP_SECURE"),
			User:      viper.GetString("SMTP_USER"),
			Password:  viper.GetString("SMTP_PASSWORD"),
			From:      viper.GetString("MAIL_FROM"),
			Recipient: viper.GetString("CONTACT_RECIPIENT"),
		},
		Mapbox: MapboxConfig{
			AccessToken:    viper.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        viper.GetString("MAPBOX_BASE_URL"),
			DrivingProfile: viper.GetString("MAPBOX_DRIVING_PROFILE"),
			RequestTimeout: viper.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
		Booking: BookingConfig{
			Currency:             viper.GetString("BOOKING_CURRENCY"),
			DefaultLocationLimit: viper.GetInt("LOCATIONS_DEFAULT_LIMIT"),
			AdminPageSize:        viper.GetInt("ADMIN_PAGE_SIZE"),
		},
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
	if cfg.SMTP.Recipient == "" {
		cfg.SMTP.Recipient = cfg.SMTP.User
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("PUBLIC_URL", "http://localhost:8080")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSLMODE", "require")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 1800)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 300)
	viper.SetDefault("DB_SIMPLE_PROTOCOL", true)
	viper.SetDefault("DB_CONNECT_RETRIES", 3)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("LOCATIONS_CACHE_TTL", 300)
	viper.SetDefault("EXTRAS_CACHE_TTL", 600)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("WORKER_CONSUMER_GROUP", "reservation-notification-workers")
	viper.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)
	viper.SetDefault("WORKER_BATCH_SIZE", 10)
	viper.SetDefault("BACKEND_REQUEST_TIMEOUT", 15)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	viper.SetDefault("MAPBOX_DRIVING_PROFILE", "mapbox/driving")
	viper.SetDefault("MAPBOX_REQUEST_TIMEOUT", 10)
	viper.SetDefault("BOOKING_CURRENCY", "EUR")
	viper.SetDefault("LOCATIONS_DEFAULT_LIMIT", 1000)
	viper.SetDefault("ADMIN_PAGE_SIZE", 20)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения в формате key=value
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Configured - заданы ли учётные данные почтового транспорта
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Password != ""
}

// Configured - задан ли токен Mapbox
func (c *MapboxConfig) Configured() bool {
	return c.AccessToken != ""
}
