package main

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/aguxez/twwc-protein/api"
	"github.com/aguxez/twwc-protein/config"
	"github.com/aguxez/twwc-protein/filewatch"
	"github.com/aguxez/twwc-protein/models"
	"github.com/aguxez/twwc-protein/settings"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// Initialize settings store
	store := &models.SettingsStore{}

	settingsDir := filepath.Dir(cfg.SettingsPath)
	if err := os.MkdirAll(settingsDir, 0o755); err != nil {
		log.Fatalf("error creating settings directory: %v", err)
	}

	// On init, load the stored record into memory
	record, err := filewatch.ParseSettings(cfg.SettingsPath)
	switch {
	case err == nil:
		store.Update(record)
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", cfg.SettingsPath).Info("no stored settings yet")
	default:
		log.Fatalf("error loading settings: %v", err)
	}

	// Setup file watcher
	fw, err := filewatch.NewFileWatcher([]string{settingsDir}, store, log)
	if err != nil {
		log.Fatalf("error creating file watcher: %v", err)
	}
	defer fw.Close()

	handlers := &api.Handlers{
		Repo: &filewatch.Repository{Path: cfg.SettingsPath, Store: store},
		Options: []settings.Option{
			settings.WithDefaultSystem(cfg.DefaultSystem),
			settings.WithActivityLevels(cfg.ActivityLevels...),
		},
		Log: log,
	}

	// Setup HTTP server
	http.HandleFunc("/settings", handlers.HandleSettings)
	http.HandleFunc("/settings/summary", handlers.HandleSettingsSummary)

	// Start file watcher
	go fw.Watch()

	// Start HTTP server
	log.WithField("addr", cfg.ListenAddr).Info("server starting")
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, nil))
}
