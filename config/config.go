package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

type BookingConfig struct {
	HorizonDays   int
	SubmitLockTTL time.Duration
	SnapshotTTL   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	upstreamTimeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		upstreamTimeout = 15 * time.Second
	}

	sessionExpiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		sessionExpiry = 12 * time.Hour
	}

	submitLockTTL, err := time.ParseDuration(viper.GetString("BOOKING_SUBMIT_LOCK_TTL"))
	if err != nil {
		submitLockTTL = 30 * time.Second
	}

	snapshotTTL, err := time.ParseDuration(viper.GetString("BOOKING_SNAPSHOT_TTL"))
	if err != nil {
		snapshotTTL = 15 * time.Minute
	}

	horizonDays := viper.GetInt("BOOKING_HORIZON_DAYS")
	if horizonDays <= 0 {
		horizonDays = 30
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: upstreamTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SESSION_SECRET"),
			Expiry: sessionExpiry,
		},
		Booking: BookingConfig{
			HorizonDays:   horizonDays,
			SubmitLockTTL: submitLockTTL,
			SnapshotTTL:   snapshotTTL,
		},
	}

	return config, nil
}
