// Package settings normalizes protein settings submitted from the admin
// form into the record that gets persisted.
package settings

import (
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/aguxez/twwc-protein/models"
)

// InputProvider supplies the stored protein settings record when no
// record has been set on the normalizer explicitly.
type InputProvider interface {
	ProteinSettingsInput() models.SettingsRecord
}

// ProviderFunc adapts a plain function to InputProvider.
type ProviderFunc func() models.SettingsRecord

func (f ProviderFunc) ProteinSettingsInput() models.SettingsRecord {
	return f()
}

// Normalizer coerces raw admin input. It is not safe for concurrent use;
// build one per request.
type Normalizer struct {
	provider      InputProvider
	input         *models.SettingsRecord
	defaultSystem models.UnitSystem
	levels        []string
	log           logrus.FieldLogger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDefaultSystem sets the unit system used when the input carries none
// or an unknown one.
func WithDefaultSystem(system models.UnitSystem) Option {
	return func(n *Normalizer) {
		if system.Valid() {
			n.defaultSystem = system
		}
	}
}

// WithActivityLevels sets the activity levels Normalize always emits, even
// when the submission leaves them out.
func WithActivityLevels(levels ...string) Option {
	return func(n *Normalizer) {
		n.levels = append([]string(nil), levels...)
	}
}

// WithLogger sets the logger used when input degrades to defaults.
func WithLogger(log logrus.FieldLogger) Option {
	return func(n *Normalizer) {
		if log != nil {
			n.log = log
		}
	}
}

// NewNormalizer returns a Normalizer reading from provider until a record is set.
func NewNormalizer(provider InputProvider, opts ...Option) *Normalizer {
	n := &Normalizer{
		provider:      provider,
		defaultSystem: models.Imperial,
		log:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetProteinSettingsInput sets the record GenerateValidGoalValues reads.
func (n *Normalizer) SetProteinSettingsInput(record models.SettingsRecord) {
	rec := record.Clone()
	n.input = &rec
}

// ProteinSettingsInput returns the record set with SetProteinSettingsInput,
// or the provider's record if none was set.
func (n *Normalizer) ProteinSettingsInput() models.SettingsRecord {
	if n.input != nil {
		return *n.input
	}
	if n.provider == nil {
		return models.SettingsRecord{}
	}
	return n.provider.ProteinSettingsInput()
}

// GenerateValidGoalValues fills in the derived half of each lbs/kg pair for
// the given activity level. The values of goalDefaults are returned as is
// when the level or the unit system is unknown.
func (n *Normalizer) GenerateValidGoalValues(goalDefaults models.GoalGroup, activityLevel string) models.GoalGroup {
	input := n.ProteinSettingsInput()

	level, ok := input.ActivityLevel[activityLevel]
	if !ok {
		n.log.WithField("activity_level", activityLevel).Debug("no goal group for activity level")
		return goalDefaults
	}
	stored := level.Goal

	switch input.System {
	case models.Imperial:
		return models.GoalGroup{
			MaintainLbs:     stored.MaintainLbs,
			MaintainKg:      deriveValue(stored.MaintainLbs, lbsToKg),
			MaintainHighLbs: stored.MaintainHighLbs,
			MaintainHighKg:  deriveValue(stored.MaintainHighLbs, lbsToKg),
		}
	case models.Metric:
		return models.GoalGroup{
			MaintainLbs:     deriveValue(stored.MaintainKg, kgToLbs),
			MaintainKg:      stored.MaintainKg,
			MaintainHighLbs: deriveValue(stored.MaintainHighKg, kgToLbs),
			MaintainHighKg:  stored.MaintainHighKg,
		}
	default:
		n.log.WithFields(logrus.Fields{
			"activity_level": activityLevel,
			"system":         input.System,
		}).Debug("unknown unit system, keeping goal defaults")
		return goalDefaults
	}
}

// Normalize turns a raw submission into the record to persist. The
// submission becomes the current settings input.
func (n *Normalizer) Normalize(raw map[string]any) models.SettingsRecord {
	var decoded models.SettingsRecord
	if err := decodeRecord(raw, &decoded); err != nil {
		n.log.WithError(err).Debug("partially decoded settings input")
	}

	system := models.UnitSystem(n.GenerateValueString(raw["system"], string(n.defaultSystem)))
	if !system.Valid() {
		system = n.defaultSystem
	}
	decoded.System = system
	n.SetProteinSettingsInput(decoded)

	out := models.SettingsRecord{
		System:        system,
		ActivityLevel: make(map[string]models.ActivityLevel),
	}
	for _, key := range n.levelKeys(decoded) {
		out.ActivityLevel[key] = models.ActivityLevel{
			Goal: n.GenerateValidGoalValues(models.GoalGroup{}, key),
		}
	}
	return out
}

func (n *Normalizer) levelKeys(rec models.SettingsRecord) []string {
	seen := make(map[string]struct{}, len(n.levels)+len(rec.ActivityLevel))
	for _, l := range n.levels {
		seen[l] = struct{}{}
	}
	for l := range rec.ActivityLevel {
		seen[l] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func decodeRecord(raw map[string]any, out *models.SettingsRecord) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
