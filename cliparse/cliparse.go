// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPort      = 8000
	defaultSQLiteDSN = "analytics.db"
)

type Config struct {
	Port         int    `validate:"min=1,max=65535"`
	DatabaseURL  string `validate:"required"`
	DatabaseType string `validate:"oneof=sqlite postgres"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	LogFormat    string `validate:"oneof=text json"`
}

var validate = validator.New()

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("store-analytics", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType == "sqlite" {
		cfg.DatabaseURL = defaultSQLiteDSN
	}

	cfg.LogLevel = fallback(cfg.LogLevel, "LOG_LEVEL", "info")
	cfg.LogFormat = fallback(cfg.LogFormat, "LOG_FORMAT", "text")

	if err := validate.Struct(cfg); err != nil {
		return Config{}, describe(err)
	}

	return cfg, nil
}

func fallback(value, env, def string) string {
	if value != "" {
		return strings.ToLower(value)
	}
	if v := os.Getenv(env); v != "" {
		return strings.ToLower(v)
	}
	return def
}

// describe turns validator output into one readable line per field.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "DatabaseURL":
			msgs = append(msgs, "database URL required (use -d or DATABASE_URL env)")
		default:
			msgs = append(msgs, fmt.Sprintf("invalid %s %q (%s %s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
