package filewatch

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aguxez/twwc-protein/models"
)

// ParseSettings reads the stored protein settings record from a YAML file
func ParseSettings(path string) (models.SettingsRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SettingsRecord{}, fmt.Errorf("opening settings file: %w", err)
	}

	var record models.SettingsRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return models.SettingsRecord{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	if record.System != "" && !record.System.Valid() {
		return models.SettingsRecord{}, fmt.Errorf("invalid system %q in %s", record.System, path)
	}

	return record, nil
}

// SaveSettings replaces the stored record with record. The file is written
// next to path and renamed over it, so readers never see a partial file.
func SaveSettings(path string, record models.SettingsRecord) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing settings file: %w", err)
	}

	return nil
}
