package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"scheduling-agent/core/logger"
)

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	LogLevel        string `mapstructure:"log_level"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpiryMinutes int    `mapstructure:"expiry_minutes"`
}

// HRAPIConfig configures the upstream HR employee-master API.
type HRAPIConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	TokenURL     string `mapstructure:"token_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	DatasetKey   string `mapstructure:"dataset_key"`
	EmailDomain  string `mapstructure:"email_domain"`
}

// StorageConfig configures the S3 bucket holding candidate documents.
type StorageConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type SchedulingConfig struct {
	BusinessHoursStart int  `mapstructure:"business_hours_start"`
	BusinessHoursEnd   int  `mapstructure:"business_hours_end"`
	DaysBeforeStart    int  `mapstructure:"days_before_start"`
	DaysAfterStart     int  `mapstructure:"days_after_start"`
	MaxProposals       int  `mapstructure:"max_proposals"`
	SeedDemoData       bool `mapstructure:"seed_demo_data"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	HRAPI      HRAPIConfig      `mapstructure:"hr_api"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and the environment into the global config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (SCHEDULER_JWT_SECRET)")
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "scheduling_agent")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.expiry_minutes", 60)

	v.SetDefault("hr_api.email_domain", "example.com")

	v.SetDefault("storage.region", "ap-south-1")
	v.SetDefault("storage.bucket", "candidate-documents")

	v.SetDefault("scheduling.business_hours_start", 9)
	v.SetDefault("scheduling.business_hours_end", 18)
	v.SetDefault("scheduling.days_before_start", 3)
	v.SetDefault("scheduling.days_after_start", 7)
	v.SetDefault("scheduling.max_proposals", 5)
	v.SetDefault("scheduling.seed_demo_data", false)
}

// Get returns the loaded config; panics if Load was never called
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config not initialized, call config.Load() first")
	}
	return instance
}

// GetSafe returns the loaded config and whether it is initialized
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
