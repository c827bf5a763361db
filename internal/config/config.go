package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	JWTUserSecret string `env:"JWT_USER_SECRET"`

	GatewayBaseURL   string `env:"GATEWAY_BASE_URL"`
	GatewaySecretKey string `env:"GATEWAY_SECRET_KEY"`

	// Интервалы свиперов в секундах. Отсчитываются от завершения
	// предыдущего прохода, не от его старта.
	RoomSweepIntervalSec   int `env:"ROOM_SWEEP_INTERVAL"`
	CloserSweepIntervalSec int `env:"CLOSER_SWEEP_INTERVAL"`
	CancelRetryIntervalSec int `env:"CANCEL_RETRY_INTERVAL"`
	SweepInitialDelaySec   int `env:"SWEEP_INITIAL_DELAY"`
}

func (c *Config) RoomSweepInterval() time.Duration {
	return time.Duration(c.RoomSweepIntervalSec) * time.Second
}

func (c *Config) CloserSweepInterval() time.Duration {
	return time.Duration(c.CloserSweepIntervalSec) * time.Second
}

func (c *Config) CancelRetryInterval() time.Duration {
	return time.Duration(c.CancelRetryIntervalSec) * time.Second
}

func (c *Config) SweepInitialDelay() time.Duration {
	return time.Duration(c.SweepInitialDelaySec) * time.Second
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.GatewayBaseURL == "" {
		return nil, errors.New("payment gateway base URL is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret for user tokens")
	flag.StringVar(&flagConfig.GatewayBaseURL, "g", "", "Payment gateway base URL")
	flag.StringVar(&flagConfig.GatewaySecretKey, "k", "", "Payment gateway secret key")
	flag.IntVar(&flagConfig.RoomSweepIntervalSec, "room-sweep", 60, "Room start sweep interval, seconds")        //nolint:mnd
	flag.IntVar(&flagConfig.CloserSweepIntervalSec, "closer-sweep", 5, "Auction closer sweep interval, seconds") //nolint:mnd
	flag.IntVar(&flagConfig.CancelRetryIntervalSec, "cancel-sweep", 15, "Cancel retry sweep interval, seconds")  //nolint:mnd
	flag.IntVar(&flagConfig.SweepInitialDelaySec, "sweep-delay", 5, "Initial delay before first sweep, seconds") //nolint:mnd

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:             defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:            defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:          defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:          defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		GatewayBaseURL:         defaultIfBlank(envConfig.GatewayBaseURL, flagsConfig.GatewayBaseURL),
		GatewaySecretKey:       defaultIfBlank(envConfig.GatewaySecretKey, flagsConfig.GatewaySecretKey),
		RoomSweepIntervalSec:   defaultIfZero(envConfig.RoomSweepIntervalSec, flagsConfig.RoomSweepIntervalSec),
		CloserSweepIntervalSec: defaultIfZero(envConfig.CloserSweepIntervalSec, flagsConfig.CloserSweepIntervalSec),
		CancelRetryIntervalSec: defaultIfZero(envConfig.CancelRetryIntervalSec, flagsConfig.CancelRetryIntervalSec),
		SweepInitialDelaySec:   defaultIfZero(envConfig.SweepInitialDelaySec, flagsConfig.SweepInitialDelaySec),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value int, defaultValue int) int {
	if value == 0 {
		return defaultValue
	}
	return value
}
