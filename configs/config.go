package configs

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/riskwatch/riskwatch/pkg/utils"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Port               string `mapstructure:"PORT" validate:"required"`
	SeedCount          int    `mapstructure:"SEED_COUNT" validate:"min=1"`
	ProducerIntervalMs int    `mapstructure:"PRODUCER_INTERVAL_MS" validate:"min=100"`
	LoginDelayMs       int    `mapstructure:"LOGIN_DELAY_MS" validate:"min=0"`
	SessionBackend     string `mapstructure:"SESSION_BACKEND" validate:"oneof=file redis"`
	SessionFile        string `mapstructure:"SESSION_FILE" validate:"required"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	LoginRatePerMin    int    `mapstructure:"LOGIN_RATE_PER_MIN" validate:"min=0"`
	LoginBurst         int    `mapstructure:"LOGIN_BURST" validate:"min=0"`
}

func (c *Config) ProducerInterval() time.Duration {
	return time.Duration(c.ProducerIntervalMs) * time.Millisecond
}

func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMs) * time.Millisecond
}

func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app") // Prefix for env vars
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SEED_COUNT", "200")
	viper.SetDefault("PRODUCER_INTERVAL_MS", "3000")
	viper.SetDefault("LOGIN_DELAY_MS", "1000")
	viper.SetDefault("SESSION_BACKEND", "file")
	viper.SetDefault("SESSION_FILE", "riskwatch_user.json")
	viper.SetDefault("LOGIN_RATE_PER_MIN", "30")
	viper.SetDefault("LOGIN_BURST", "10")

	// Optional: Read from config.yaml if exists
	if gin.ReleaseMode == gin.Mode() {
		viper.SetConfigName("config.prod")
	} else if gin.TestMode == gin.Mode() {
		logger.Warn("running in test mode")
		viper.SetConfigName("config.test")
	} else {
		logger.Warn("running in development mode")
		viper.SetConfigName("config.dev")
	}
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	_ = viper.ReadInConfig() // Ignore if no file

	var cfg Config
	if err := utils.ParseStructEnv(&cfg); err != nil {
		return nil, err
	}
	// Validate after unmarshal
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, utils.FormatConfigErrors(logger, err, cfg)
	}
	return &cfg, nil
}
