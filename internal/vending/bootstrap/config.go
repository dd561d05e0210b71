package bootstrap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/szilard-n/vending-machine/internal/pkg/database"
)

// VendingConfig holds all settings of the service. Values come from
// environment variables, with an optional .env file for local runs.
type VendingConfig struct {
	HttpPort   string
	JwtSecret  string
	Coins      []int
	DbSettings database.PostgresSettings
}

type rawConfig struct {
	HttpPort   string `mapstructure:"HTTP_PORT"`
	JwtSecret  string `mapstructure:"JWT_SECRET"`
	Coins      string `mapstructure:"ALLOWED_COINS"`
	DbUser     string `mapstructure:"DB_USER"`
	DbPassword string `mapstructure:"DB_PASSWORD"`
	DbHost     string `mapstructure:"DB_HOST"`
	DbPort     string `mapstructure:"DB_PORT"`
	DbName     string `mapstructure:"DB_NAME"`
	DbSsl      bool   `mapstructure:"DB_SSL_ENABLED"`
}

func LoadConfig() (VendingConfig, error) {
	viper.AutomaticEnv()

	viper.SetDefault("HTTP_PORT", ":8080")
	viper.SetDefault("ALLOWED_COINS", "5,10,20,50,100")
	viper.SetDefault("DB_USER", "admin")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "vending_db")
	viper.SetDefault("DB_SSL_ENABLED", false)

	for _, key := range []string{"HTTP_PORT", "JWT_SECRET", "ALLOWED_COINS",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_SSL_ENABLED"} {
		_ = viper.BindEnv(key)
	}

	var raw rawConfig
	if err := viper.Unmarshal(&raw); err != nil {
		return VendingConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if raw.JwtSecret == "" {
		return VendingConfig{}, fmt.Errorf("JWT_SECRET is required")
	}

	coins, err := parseCoins(raw.Coins)
	if err != nil {
		return VendingConfig{}, err
	}

	return VendingConfig{
		HttpPort:  raw.HttpPort,
		JwtSecret: raw.JwtSecret,
		Coins:     coins,
		DbSettings: database.PostgresSettings{
			User:       raw.DbUser,
			Password:   raw.DbPassword,
			Host:       raw.DbHost,
			Port:       raw.DbPort,
			DBName:     raw.DbName,
			SSlEnabled: raw.DbSsl,
		},
	}, nil
}

func parseCoins(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	coins := make([]int, 0, len(parts))

	for _, part := range parts {
		coin, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid coin value %q: %w", part, err)
		}

		coins = append(coins, coin)
	}

	return coins, nil
}
