package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/aguxez/twwc-protein/models"
)

const (
	DefaultListenAddr   = ":8080"
	DefaultSettingsPath = "data/settings/protein.yaml"
	DefaultLogLevel     = "info"
)

// DefaultActivityLevels are emitted on every save even if the form omits them.
var DefaultActivityLevels = []string{"sedentary", "moderately_active", "very_active"}

type Config struct {
	ListenAddr     string
	SettingsPath   string
	DefaultSystem  models.UnitSystem
	ActivityLevels []string
	LogLevel       logrus.Level
}

// Load reads the environment, after loading envFiles (".env" when none are
// given). Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", DefaultListenAddr),
		SettingsPath:   getEnv("SETTINGS_PATH", DefaultSettingsPath),
		DefaultSystem:  models.UnitSystem(strings.ToLower(getEnv("DEFAULT_SYSTEM", string(models.Imperial)))),
		ActivityLevels: DefaultActivityLevels,
		LogLevel:       level,
	}

	if v, ok := os.LookupEnv("ACTIVITY_LEVELS"); ok {
		cfg.ActivityLevels = splitList(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !c.DefaultSystem.Valid() {
		return fmt.Errorf("DEFAULT_SYSTEM must be %q or %q, got %q", models.Imperial, models.Metric, c.DefaultSystem)
	}
	if c.SettingsPath == "" {
		return errors.New("SETTINGS_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range cast.ToStringSlice(strings.ReplaceAll(v, ",", " ")) {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
