package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/farmasystem/pos/internal/log"
)

type Application struct {
	Env       string `mapstructure:"env"        json:"env"`
	Host      string `mapstructure:"host"       json:"host"`
	SecretKey string `mapstructure:"secret_key" json:"-"`
	Port      int    `mapstructure:"port"       json:"port"`
}

// Backend points at the pharmacy REST backend that owns all persistence
// and authoritative pricing.
type Backend struct {
	BaseURL        string        `mapstructure:"base_url"        json:"base_url"`
	SubmitTimeout  time.Duration `mapstructure:"submit_timeout"  json:"submit_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout"`
}

type Cache struct {
	Host       string        `mapstructure:"host"        json:"host"`
	Password   string        `mapstructure:"password"    json:"-"`
	Database   int           `mapstructure:"database"    json:"database"`
	Port       uint16        `mapstructure:"port"        json:"port"`
	CatalogTTL time.Duration `mapstructure:"catalog_ttl" json:"catalog_ttl"`
}

type Otel struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`
}

type Config struct {
	Backend     `mapstructure:"backend"     json:"backend"`
	Cache       `mapstructure:"cache"       json:"cache"`
	Application `mapstructure:"application" json:"application"`
	Otel        `mapstructure:"otel"        json:"otel"`
}

var (
	once   sync.Once
	config *Config
)

func InitConfig(c context.Context, filename string) *Config {
	cfg := Config{}
	once.Do(func() {
		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "main InitConfig").
			Str(log.KeyProcess, "init config").
			Str("filename", filename).
			Logger()

		viper.SetConfigName(filename)
		viper.AddConfigPath("./env")
		viper.SetConfigType("yaml")
		viper.AutomaticEnv()
		viper.SetDefault("backend.submit_timeout", 30*time.Second)
		viper.SetDefault("backend.request_timeout", 15*time.Second)
		viper.SetDefault("cache.catalog_ttl", time.Hour)

		logger = logger.With().Str(log.KeyProcess, "reading config").Logger()
		logger.Info().Msg("reading config")
		err := viper.ReadInConfig()
		if err != nil {
			err = fmt.Errorf("error when reading config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		logger.Info().Msg("read config")

		logger = logger.With().Str(log.KeyProcess, "unmarshaling config").Logger()
		logger.Info().Msg("unmarshaling config")
		err = viper.Unmarshal(&cfg)
		if err != nil {
			err = fmt.Errorf("error unmarshaling config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		config = &cfg
		logger = logger.With().Any(log.KeyConfig, cfg).Logger()
		logger.Info().Msg("unmarshaled config")
	})
	return config
}
