package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Directory   DirectoryConfig
	RabbitMQ    RabbitMQConfig
	Internal    InternalConfig
	Mail        MailConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	// Backend is "sql" or "redis".
	Backend string
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite".
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret            string
	JWTExpiration        time.Duration
	ResetTokenExpiration time.Duration
	// SimulatedLatency is applied to register, login and password reset.
	SimulatedLatency time.Duration
	SeedDemoUser     bool
}

type DirectoryConfig struct {
	// ResetCacheOnStart drops the persisted designer collection before
	// loading, so the seed list wins.
	ResetCacheOnStart bool
	SeedFile          string
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type InternalConfig struct {
	APIURL string
	APIKey string
}

type MailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	// ResetURL is the page that receives ?token= in reset mails.
	ResetURL string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("STORAGE_BACKEND", "sql")),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "fashion_directory"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "fashion-directory.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:        getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
			ResetTokenExpiration: getEnvDuration("RESET_TOKEN_EXPIRATION", 30*time.Minute),
			SimulatedLatency:     getEnvDuration("AUTH_SIMULATED_LATENCY", time.Second),
			SeedDemoUser:         getEnvBool("AUTH_SEED_DEMO_USER", true),
		},
		Directory: DirectoryConfig{
			ResetCacheOnStart: getEnvBool("DIRECTORY_RESET_CACHE_ON_START", false),
			SeedFile:          getEnv("DIRECTORY_SEED_FILE", ""),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getEnvBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			APIURL: getEnv("INTERNAL_API_URL", "http://localhost:8080"),
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Mail: MailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvInt("SMTP_PORT", 587),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("MAIL_FROM", "no-reply@sunyani.com"),
			ResetURL:     getEnv("MAIL_RESET_URL", "http://localhost:3000/reset-password"),
		},
	}
}

// GetDSN returns the MySQL data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
