package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App            AppConfig
	DB             DBConfig
	JWT            JWTConfig
	Internal       InternalConfig
	ProfileService ProfileServiceConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// JWTConfig holds the signing secret shared by every service that accepts
// platform tokens. Read once at startup, never mutated.
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// InternalConfig holds the machine credential for service-to-service calls.
// A user token never satisfies this gate and vice versa.
type InternalConfig struct {
	ServiceKey string
}

// ProfileServiceConfig points the auth service at the profile service's
// internal endpoint. Timeout bounds the synchronous profile-creation call
// made during registration.
type ProfileServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	tokenExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		tokenExpiry = 8 * time.Hour
	}

	profileTimeout, err := time.ParseDuration(viper.GetString("PROFILE_SERVICE_TIMEOUT"))
	if err != nil {
		profileTimeout = 5 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: tokenExpiry,
		},
		Internal: InternalConfig{
			ServiceKey: viper.GetString("INTERNAL_SERVICE_KEY"),
		},
		ProfileService: ProfileServiceConfig{
			BaseURL: viper.GetString("PROFILE_SERVICE_URL"),
			Timeout: profileTimeout,
		},
	}

	return config, nil
}
