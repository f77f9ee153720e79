// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Built-in defaults — the tool is designed to run with no config
//     file at all, reading users.json from the working directory.
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backend identifiers accepted in the config.
const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden by
// the corresponding environment variable (env:"...").
//
// Every field carries an env-default so that a missing config file is
// not an error — defaults reproduce the zero-configuration behaviour of
// reading users.json from the current directory.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// NoColor disables ANSI colour in console output. Useful when the
	// output is piped into a file or another program.
	NoColor bool `yaml:"no_color" env:"NO_COLOR" env-default:"false"`

	// Storage is embedded by name so the YAML nests under storage:.
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects and parameterises the storage backend.
type StorageConfig struct {
	// Type picks the backend: "jsonfile" reads users.json directly on
	// every filter run; "sqlite" serves records from a SQLite file that
	// is seeded from users.json on first start.
	Type string `yaml:"type" env:"STORAGE_TYPE" env-default:"jsonfile"`

	// UsersPath is the JSON dataset. Also used as the seed source for
	// the sqlite backend.
	UsersPath string `yaml:"users_path" env:"USERS_PATH" env-default:"users.json"`

	// SQLitePath is the .db file used when Type is "sqlite".
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"users.db"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// ── Source 3: defaults only ───────────────────────────────────────
	// No path from either source is fine: ReadEnv populates the struct
	// from env vars and the env-default tags.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// A path was given explicitly, so a missing file is a user error —
	// better a clear message now than a cryptic "open" failure later.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file, then applies any
	// env:"..." overrides and env-default fallbacks.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
