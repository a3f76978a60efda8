// Package config loads companion settings from flags, DND_COMPANION_*
// environment variables and defaults, in that order of precedence.
package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Treylong00/DND-Companion/internal/clients/transcript"
	"github.com/Treylong00/DND-Companion/internal/errors"
)

// Store backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Flag and viper keys
const (
	KeyStore       = "store"
	KeyDataDir     = "data-dir"
	KeyRedisAddr   = "redis-addr"
	KeySQLitePath  = "sqlite-path"
	KeyOCRCommand  = "ocr-command"
	KeyOCRMinChars = "ocr-min-chars"
	KeyOCRTimeout  = "ocr-timeout"
	KeyLogLevel    = "log-level"
)

// EnvPrefix prefixes every environment variable, e.g. DND_COMPANION_DATA_DIR
const EnvPrefix = "DND_COMPANION"

const (
	DefaultStore      = StoreFile
	DefaultDataDir    = "data/characters"
	DefaultRedisAddr  = "localhost:6379"
	DefaultLogLevel   = "info"
	DefaultOCRTimeout = 2 * time.Minute
)

var (
	stores    = []string{StoreFile, StoreRedis, StoreSQLite}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds the companion's runtime settings
type Config struct {
	Store       string
	DataDir     string
	RedisAddr   string
	SQLitePath  string
	OCRCommand  []string
	OCRMinChars int
	OCRTimeout  time.Duration
	LogLevel    string
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Store:       DefaultStore,
		DataDir:     DefaultDataDir,
		RedisAddr:   DefaultRedisAddr,
		OCRMinChars: transcript.DefaultMinChars,
		OCRTimeout:  DefaultOCRTimeout,
		LogLevel:    DefaultLogLevel,
	}
}

// RegisterFlags defines the configuration flags on fs
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String(KeyStore, d.Store, "Character store: file, redis or sqlite")
	fs.String(KeyDataDir, d.DataDir, "Directory for the file store")
	fs.String(KeyRedisAddr, d.RedisAddr, "Redis address for the redis store")
	fs.String(KeySQLitePath, "", "Database path for the sqlite store (default <data-dir>/characters.db)")
	fs.String(KeyOCRCommand, "", "OCR command; {path} is replaced by the PDF path, e.g. \"ocrmypdf-text {path}\"")
	fs.Int(KeyOCRMinChars, d.OCRMinChars, "Text layers shorter than this are sent to OCR")
	fs.Duration(KeyOCRTimeout, d.OCRTimeout, "Time limit for one OCR command run")
	fs.String(KeyLogLevel, d.LogLevel, "Log level: debug, info, warn or error")
}

// Load reads flags from fs, falling back to the environment and defaults,
// and validates the result
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault(KeyStore, d.Store)
	v.SetDefault(KeyDataDir, d.DataDir)
	v.SetDefault(KeyRedisAddr, d.RedisAddr)
	v.SetDefault(KeySQLitePath, "")
	v.SetDefault(KeyOCRCommand, "")
	v.SetDefault(KeyOCRMinChars, d.OCRMinChars)
	v.SetDefault(KeyOCRTimeout, d.OCRTimeout)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	cfg := &Config{
		Store:       strings.ToLower(strings.TrimSpace(v.GetString(KeyStore))),
		DataDir:     strings.TrimSpace(v.GetString(KeyDataDir)),
		RedisAddr:   strings.TrimSpace(v.GetString(KeyRedisAddr)),
		SQLitePath:  strings.TrimSpace(v.GetString(KeySQLitePath)),
		OCRCommand:  strings.Fields(v.GetString(KeyOCRCommand)),
		OCRMinChars: v.GetInt(KeyOCRMinChars),
		OCRTimeout:  v.GetDuration(KeyOCRTimeout),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}
	if cfg.SQLitePath == "" && cfg.DataDir != "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "characters.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the selected store needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum(KeyStore, c.Store, stores, vb)
	errors.ValidateEnum(KeyLogLevel, c.LogLevel, logLevels, vb)

	switch c.Store {
	case StoreFile:
		errors.ValidateRequired(KeyDataDir, c.DataDir, vb)
	case StoreRedis:
		errors.ValidateRequired(KeyRedisAddr, c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired(KeySQLitePath, c.SQLitePath, vb)
	}

	if c.OCRMinChars < 0 {
		vb.InvalidField(KeyOCRMinChars, "must not be negative")
	}
	if c.OCRTimeout <= 0 {
		vb.InvalidField(KeyOCRTimeout, "must be positive")
	}
	if len(c.OCRCommand) > 0 && !strings.Contains(strings.Join(c.OCRCommand, " "), transcript.PathPlaceholder) {
		vb.InvalidField(KeyOCRCommand, "must contain "+transcript.PathPlaceholder)
	}
	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
