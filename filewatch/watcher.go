package filewatch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/aguxez/twwc-protein/models"
)

// FileWatcher reloads the settings store when a settings file changes
type FileWatcher struct {
	store   *models.SettingsStore
	watcher *fsnotify.Watcher
	log     logrus.FieldLogger
}

func NewFileWatcher(paths []string, store *models.SettingsStore, log logrus.FieldLogger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		err = w.Add(path)
		if err != nil {
			w.Close()
			return nil, err
		}
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return &FileWatcher{store: store, watcher: w, log: log}, nil
}

// Watch blocks until Close is called.
func (fw *FileWatcher) Watch() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			// SaveSettings renames into place, which shows up as Create
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.log.WithField("path", event.Name).Info("settings file modified")
				fw.HandleFileChange(event.Name)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.WithError(err).Error("file watcher error")
		}
	}
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// HandleFileChange loads path into the store if it is a YAML settings file.
func (fw *FileWatcher) HandleFileChange(path string) {
	if !isSettingsFile(path) {
		return
	}

	record, err := ParseSettings(path)
	if err != nil {
		fw.log.WithError(err).WithField("path", path).Error("error parsing settings")
		return
	}
	// an empty or truncated file decodes to a zero record
	if record.System == "" {
		fw.log.WithField("path", path).Warn("settings file has no system, keeping current record")
		return
	}
	fw.store.Update(record)
}

func isSettingsFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
