// Package config loads server and batch settings from the environment.
package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port    string `env:"PORT" envDefault:"9595"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	OutputDir string `env:"OUTPUT_DIR" envDefault:"output"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"change-me-in-production"`
	LoginUser     string `env:"LOGIN_USER" envDefault:"user"`
	LoginPass     string `env:"LOGIN_PASS" envDefault:"changeme"`

	TripSheet   string `env:"TRIP_SHEET" envDefault:"Trips"`
	ResultSheet string `env:"RESULT_SHEET" envDefault:"Results"`
}

// Load reads the environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
