package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguxez/twwc-protein/models"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		record models.SettingsRecord
		want   string
	}{
		{
			name: "imperial",
			record: models.SettingsRecord{
				System: models.Imperial,
				ActivityLevel: map[string]models.ActivityLevel{
					"very_active": {Goal: models.GoalGroup{MaintainLbs: "0.9", MaintainKg: "1.98"}},
					"sedentary": {Goal: models.GoalGroup{
						MaintainLbs: "0.68", MaintainKg: "1.5",
						MaintainHighLbs: "0.95", MaintainHighKg: "2.09",
					}},
				},
			},
			want: "Protein goals (imperial, grams per lb)\n" +
				"sedentary: maintain 0.68, maintain high 0.95\n" +
				"very_active: maintain 0.9, maintain high -\n",
		},
		{
			name: "metric",
			record: models.SettingsRecord{
				System: models.Metric,
				ActivityLevel: map[string]models.ActivityLevel{
					"sedentary": {Goal: models.GoalGroup{
						MaintainLbs: "0.54", MaintainKg: "1.2",
						MaintainHighLbs: "0.82", MaintainHighKg: "1.8",
					}},
				},
			},
			want: "Protein goals (metric, grams per kg)\n" +
				"sedentary: maintain 1.2, maintain high 1.8\n",
		},
		{
			name:   "no levels",
			record: models.SettingsRecord{System: models.Metric},
			want:   "Protein goals (metric, grams per kg)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summary(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummaryUnknownSystem(t *testing.T) {
	_, err := Summary(models.SettingsRecord{System: "stone"})
	assert.Error(t, err)
}
