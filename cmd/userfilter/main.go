// main is the entry point of the user filter tool.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file, env vars, or built-in defaults)
//  2. Initialise the logger
//  3. Construct the storage backend (JSON file or seeded SQLite)
//  4. Run one interactive filter session and exit
//
// RUNNING THE TOOL:
//
//	go run ./cmd/userfilter
//
// or with an explicit config:
//
//	go run ./cmd/userfilter --config=config/local.yaml
//	CONFIG_PATH=config/local.yaml go run ./cmd/userfilter
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/abhisakh/Branching-Out/internal/config"
	"github.com/abhisakh/Branching-Out/internal/storage"
	"github.com/abhisakh/Branching-Out/internal/storage/jsonfile"
	"github.com/abhisakh/Branching-Out/internal/storage/sqlite"
	"github.com/abhisakh/Branching-Out/internal/ui"
	"github.com/abhisakh/Branching-Out/internal/utils/input"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────
	// MustLoad never returns an invalid config; with no config file and
	// no env vars it falls back to defaults (users.json, no sqlite).
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────
	// Structured logs go to stderr so they never interleave with the
	// interactive prompts and result blocks on stdout.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Debug("starting userfilter",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Storage.Type),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────
	// The rest of the program only sees the storage.Storage interface,
	// so the backend choice is contained entirely in this block.
	store, err := newStorage(cfg, log)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── 4. Run the Interactive Session ────────────────────────────────
	presenter := ui.NewPresenter(os.Stdout, cfg.NoColor)
	driver := ui.NewDriver(store, presenter, os.Stdin, log)

	if err := driver.Run(); err != nil {
		// Invalid field selection already printed its message; it ends
		// the session with the default exit code, like any other
		// completed run.
		if errors.Is(err, input.ErrInvalidField) || errors.Is(err, ui.ErrInputClosed) {
			return
		}
		log.Error("session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newStorage builds the backend selected in the config.
//
// The sqlite backend is seeded from the JSON dataset the first time it
// starts against an empty database, so pointing the tool at an exported
// users.json and flipping storage.type is all a migration takes.
func newStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	switch cfg.Storage.Type {
	case config.BackendJSONFile:
		return jsonfile.New(cfg.Storage.UsersPath), nil

	case config.BackendSQLite:
		store, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}

		// Seed errors from a missing users.json are fine — the sqlite
		// file may already hold data, or genuinely be empty.
		seed, err := jsonfile.New(cfg.Storage.UsersPath).GetUsers()
		if err != nil && !errors.Is(err, storage.ErrFileMissing) {
			log.Warn("seed dataset unreadable", slog.String("error", err.Error()))
		}
		inserted, err := store.Seed(seed)
		if err != nil {
			return nil, err
		}
		if inserted > 0 {
			log.Info("seeded sqlite from dataset",
				slog.String("path", cfg.Storage.SQLitePath),
				slog.Int64("records", inserted),
			)
		}
		return store, nil

	default:
		return nil, errors.New("unknown storage type: " + cfg.Storage.Type)
	}
}

// setupLogger returns a *slog.Logger configured for the given
// environment: JSON output for prod/staging (easy to ingest by log
// aggregators), human-readable text for development.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
