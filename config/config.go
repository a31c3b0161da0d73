package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL  string
	MongoURL     string
	DBType       string
	Port         string
	BiltyFee     float64
	SlipSavePath string
	GatewayURL   string
	GatewayToken string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		MongoURL:     os.Getenv("MONGO_URL"),
		DBType:       os.Getenv("DB_TYPE"),
		Port:         os.Getenv("PORT"),
		SlipSavePath: os.Getenv("SLIP_SAVE_PATH"),
		GatewayURL:   os.Getenv("GATEWAY_URL"),
		GatewayToken: os.Getenv("GATEWAY_TOKEN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SlipSavePath == "" {
		cfg.SlipSavePath = "./slips"
	}

	// Flat bilty/handling fee used when a booking carries no freight of its own
	cfg.BiltyFee = 20
	if v := os.Getenv("BILTY_FEE"); v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.BiltyFee = fee
		}
	}

	return cfg
}
