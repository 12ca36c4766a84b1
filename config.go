package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Addr          string
	LogLevel      string
	LogFormat     string
	GinMode       string
	RequestLogDir string

	Author string
	Color  string
	Head   string
	Tail   string

	Tuning Tuning
}

func Defaults() *Config {
	return &Config{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "logfmt",
		GinMode:   "release",
		Author:    "tonobo",
		Color:     "#ff00ff",
		Head:      "default",
		Tail:      "default",
		Tuning:    DefaultTuning(),
	}
}

// LoadConfig applies environment overrides to the defaults and then the
// command line flags on top. Invalid environment values are reported
// through warn and otherwise ignored.
func LoadConfig(fs *flag.FlagSet, args []string, warn func(error)) (*Config, error) {
	cfg := Defaults()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.LogFormat, "LOG_FORMAT")
	overrideString(&cfg.GinMode, "GIN_MODE")
	overrideString(&cfg.RequestLogDir, "REQUEST_LOG_DIR")
	overrideString(&cfg.Author, "SNAKE_AUTHOR")
	overrideString(&cfg.Color, "SNAKE_COLOR")
	overrideString(&cfg.Head, "SNAKE_HEAD")
	overrideString(&cfg.Tail, "SNAKE_TAIL")
	for _, err := range []error{
		overrideInt(&cfg.Tuning.FoodHealthLimit, "FOOD_HEALTH_LIMIT"),
		overrideFloat(&cfg.Tuning.GreedyFactor, "GREEDY_FACTOR"),
	} {
		if err != nil && warn != nil {
			warn(err)
		}
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "logfmt or json")
	fs.StringVar(&cfg.RequestLogDir, "request-log-dir", cfg.RequestLogDir, "append raw requests per game to this directory")
	fs.IntVar(&cfg.Tuning.FoodHealthLimit, "food-health-limit", cfg.Tuning.FoodHealthLimit, "seek food at or below this health")
	fs.Float64Var(&cfg.Tuning.GreedyFactor, "greedy-factor", cfg.Tuning.GreedyFactor, "food route boost")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

func overrideString(field *string, key string) {
	if val := os.Getenv(key); val != "" {
		*field = val
	}
}

func overrideInt(field *int, key string) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*field = n
	return nil
}

func overrideFloat(field *float64, key string) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*field = f
	return nil
}
