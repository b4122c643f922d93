package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings, loaded from the environment with an
// optional .env file.
type Config struct {
	ServerPort int

	SolanaRPCURL  string
	EscrowAddress string
	KeyringFile   string

	DatabaseURL string

	ConfirmTimeout  time.Duration
	ConfirmInterval time.Duration
	SweepInterval   time.Duration
}

// Devnet escrow placeholder; funds sent here are not recoverable.
const defaultEscrowAddress = "Esc1111111111111111111111111111111111111111"

// LoadConfig reads configuration from the environment. A missing .env file
// is not an error.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.ServerPort = p
		}
	}
	if cfg.ServerPort == 0 {
		cfg.ServerPort = 8080
	}

	cfg.SolanaRPCURL = getEnvOrDefault("SOLANA_RPC_URL", "https://api.devnet.solana.com")
	cfg.EscrowAddress = getEnvOrDefault("ESCROW_ADDRESS", defaultEscrowAddress)
	cfg.KeyringFile = os.Getenv("KEYRING_FILE")

	// Optional: without it, NFT/transaction records stay in memory.
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.ConfirmTimeout = getDurationOrDefault("CONFIRM_TIMEOUT", 60*time.Second)
	cfg.ConfirmInterval = getDurationOrDefault("CONFIRM_INTERVAL", 2*time.Second)
	cfg.SweepInterval = getDurationOrDefault("SWEEP_INTERVAL", 30*time.Second)

	return cfg, nil
}

// Addr returns the listen address in ":port" form
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
