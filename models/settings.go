package models

type UnitSystem string

const (
	Imperial UnitSystem = "imperial"
	Metric   UnitSystem = "metric"
)

// Valid reports whether s is one of the known unit systems.
func (s UnitSystem) Valid() bool {
	return s == Imperial || s == Metric
}

// GoalGroup holds the maintain and maintain-high multipliers of one
// activity level in both unit systems. Values are empty or decimal strings.
type GoalGroup struct {
	MaintainLbs     string `yaml:"m_maintain_lbs" json:"m_maintain_lbs" mapstructure:"m_maintain_lbs"`
	MaintainKg      string `yaml:"m_maintain_kg" json:"m_maintain_kg" mapstructure:"m_maintain_kg"`
	MaintainHighLbs string `yaml:"m_maintain_high_lbs" json:"m_maintain_high_lbs" mapstructure:"m_maintain_high_lbs"`
	MaintainHighKg  string `yaml:"m_maintain_high_kg" json:"m_maintain_high_kg" mapstructure:"m_maintain_high_kg"`
}

type ActivityLevel struct {
	Goal GoalGroup `yaml:"goal" json:"goal" mapstructure:"goal"`
}

// SettingsRecord is the stored protein settings option.
type SettingsRecord struct {
	System        UnitSystem               `yaml:"system" json:"system" mapstructure:"system"`
	ActivityLevel map[string]ActivityLevel `yaml:"activity_level" json:"activity_level" mapstructure:"activity_level"`
}

// Clone returns a copy of the record that shares no map with r.
func (r SettingsRecord) Clone() SettingsRecord {
	out := SettingsRecord{System: r.System}
	if r.ActivityLevel != nil {
		out.ActivityLevel = make(map[string]ActivityLevel, len(r.ActivityLevel))
		for k, v := range r.ActivityLevel {
			out.ActivityLevel[k] = v
		}
	}
	return out
}
