package models

import "sync"

// SettingsStore holds the current protein settings record. It is shared
// between the file watcher and the request handlers.
type SettingsStore struct {
	mu     sync.RWMutex
	record SettingsRecord
}

func (s *SettingsStore) Update(record SettingsRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record.Clone()
}

// ProteinSettingsInput returns a copy of the current record.
func (s *SettingsStore) ProteinSettingsInput() SettingsRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}
