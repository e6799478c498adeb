package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"time-tracker/api/core"
)

type HTTPConfig struct {
	Address    string        `yaml:"address" env:"API_ADDRESS" env-default:":8080"`
	Timeout    time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
	CORSOrigin string        `yaml:"cors_origin" env:"CORS_ORIGIN" env-default:"*"`
}

type Config struct {
	LogLevel  string     `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	HTTP      HTTPConfig `yaml:"api_server"`
	DBAddress string     `yaml:"db_address" env:"DB_ADDRESS" env-default:"postgres://admin:admin@db:5432/timetracker?sslmode=disable"`
	Timezone  string     `yaml:"timezone" env:"TZ_NAME" env-default:"Local"`
	WeekStart string     `yaml:"week_start" env:"WEEK_START" env-default:"sunday"`
}

func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads configPath, falling back to the environment when the path is empty
// or the file does not exist.
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return cfg, cfg.validate()
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := core.ParseWeekStart(c.WeekStart); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; "Local" and "" mean the process zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
