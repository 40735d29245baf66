package filewatch

import "github.com/aguxez/twwc-protein/models"

// Repository persists the settings record to a YAML file and keeps the
// in-memory store current without waiting for the watcher.
type Repository struct {
	Path  string
	Store *models.SettingsStore
}

func (r *Repository) ProteinSettingsInput() models.SettingsRecord {
	return r.Store.ProteinSettingsInput()
}

func (r *Repository) Save(record models.SettingsRecord) error {
	if err := SaveSettings(r.Path, record); err != nil {
		return err
	}
	r.Store.Update(record)
	return nil
}
