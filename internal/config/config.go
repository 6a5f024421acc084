package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Parser ParserConfig
	Draft  DraftConfig
	Batch  BatchConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// ParserConfig controls the quiz text parser and the parse cache.
type ParserConfig struct {
	CaseInsensitiveLetters bool
	MaxTextBytes           int
	CacheTTL               time.Duration
}

type DraftConfig struct {
	TTL time.Duration
}

type BatchConfig struct {
	MaxConcurrency int
	MaxTexts       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("parser.case_insensitive_letters", false)
	v.SetDefault("parser.max_text_bytes", 256*1024)
	v.SetDefault("parser.cache_ttl", "10m")
	v.SetDefault("draft.ttl", "24h")
	v.SetDefault("batch.max_concurrency", 4)
	v.SetDefault("batch.max_texts", 50)
}

// LoadConfig reads config.yaml from the working directory (or ./config, or
// the project root in tests) and applies environment overrides. A missing
// file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Parser: ParserConfig{
			CaseInsensitiveLetters: v.GetBool("parser.case_insensitive_letters"),
			MaxTextBytes:           v.GetInt("parser.max_text_bytes"),
			CacheTTL:               v.GetDuration("parser.cache_ttl"),
		},
		Draft: DraftConfig{
			TTL: v.GetDuration("draft.ttl"),
		},
		Batch: BatchConfig{
			MaxConcurrency: v.GetInt("batch.max_concurrency"),
			MaxTexts:       v.GetInt("batch.max_texts"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = v.GetInt("server.port")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Parser.MaxTextBytes <= 0 {
		return fmt.Errorf("parser.max_text_bytes must be positive, got %d", c.Parser.MaxTextBytes)
	}
	if c.Draft.TTL <= 0 {
		return fmt.Errorf("draft.ttl must be positive, got %s", c.Draft.TTL)
	}
	if c.Batch.MaxConcurrency <= 0 {
		return fmt.Errorf("batch.max_concurrency must be positive, got %d", c.Batch.MaxConcurrency)
	}
	if c.Batch.MaxTexts <= 0 {
		return fmt.Errorf("batch.max_texts must be positive, got %d", c.Batch.MaxTexts)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
