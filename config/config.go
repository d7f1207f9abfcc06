package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/baskettime/pkg/utils"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"10000"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
		StaticDir   string `env:"STATIC_DIR"   envDefault:"static"`
		LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	}
	DB struct {
		URL        string `env:"DATABASE_URL"`
		SQLitePath string `env:"SQLITE_PATH" envDefault:"baskettime.db"`
	}
	Session struct {
		Secret       string `env:"SECRET_KEY"`
		LifetimeDays int    `env:"SESSION_LIFETIME_DAYS" envDefault:"7"`
		CookieName   string `env:"SESSION_COOKIE_NAME"   envDefault:"session"`
		CookieSecure bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	}
	Redis struct {
		URL string `env:"REDIS_URL"`
	}
	Security struct {
		BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
	}
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Global DB instance, set by Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadDotEnv loads .env into the process environment. Variables already set win.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// LoadConfig reads configuration from the environment, after loading a .env file if one exists.
func LoadConfig() (*Config, error) {
	if !LoadDotEnv() {
		zap.L().Info("no .env file found, relying on system environment variables")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "10000")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.StaticDir = getEnv("STATIC_DIR", "static")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.DB.URL = normalizeDatabaseURL(getEnv("DATABASE_URL", ""))
	cfg.DB.SQLitePath = getEnv("SQLITE_PATH", "baskettime.db")

	cfg.Session.Secret = getEnv("SECRET_KEY", "")
	cfg.Session.CookieName = getEnv("SESSION_COOKIE_NAME", "session")
	cfg.Redis.URL = getEnv("REDIS_URL", "")

	var err error
	cfg.Session.LifetimeDays, err = getEnvAsInt("SESSION_LIFETIME_DAYS", 7)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_LIFETIME_DAYS: %w", err)
	}
	cfg.Session.CookieSecure, err = getEnvAsBool("SESSION_COOKIE_SECURE", false)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}
	cfg.Security.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	if cfg.Session.Secret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SECRET_KEY is required in production")
		}
		cfg.Session.Secret = utils.GenerateRandomToken(64)
		zap.L().Warn("SECRET_KEY not set, using a random secret; sessions will not survive a restart")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB opens PostgreSQL when DATABASE_URL is set and the embedded SQLite file otherwise.
// It sets the global DB variable.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	if cfg.DB.URL != "" {
		dialector = postgres.Open(cfg.DB.URL)
	} else {
		dialector = sqlite.Open(cfg.DB.SQLitePath + "?_pragma=busy_timeout(5000)")
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DB.URL == "" {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	DB = gormDB
	zap.L().Info("connected to database", zap.String("driver", dialector.Name()))
	return gormDB, nil
}

// Initialize loads all configuration and connects to the database.
// Call it once at the start of main.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		if _, err = ConnectDB(*loadedCfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded, call config.Initialize() first")
	}
	return appConfig
}

// normalizeDatabaseURL rewrites the legacy postgres:// scheme some hosts still hand out.
func normalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected boolean, got '%s'", key, valueStr)
	}
	return value, nil
}
