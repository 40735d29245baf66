package filewatch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguxez/twwc-protein/models"
)

func TestRepositorySave(t *testing.T) {
	repo := &Repository{
		Path:  filepath.Join(t.TempDir(), "protein.yaml"),
		Store: &models.SettingsStore{},
	}

	rec := models.SettingsRecord{
		System: models.Metric,
		ActivityLevel: map[string]models.ActivityLevel{
			"sedentary": {Goal: models.GoalGroup{MaintainKg: "1.2", MaintainLbs: "0.54"}},
		},
	}
	require.NoError(t, repo.Save(rec))

	assert.Equal(t, rec, repo.ProteinSettingsInput())

	onDisk, err := ParseSettings(repo.Path)
	require.NoError(t, err)
	assert.Equal(t, rec, onDisk)
}

func TestRepositorySaveFailureKeepsStore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "blocker"), "")

	repo := &Repository{
		Path:  filepath.Join(dir, "blocker", "protein.yaml"),
		Store: &models.SettingsStore{},
	}

	err := repo.Save(models.SettingsRecord{System: models.Imperial})
	assert.Error(t, err)
	assert.Equal(t, models.UnitSystem(""), repo.ProteinSettingsInput().System)
}
