// Package render turns a settings record into text for the admin page.
package render

import (
	"fmt"
	"sort"

	"github.com/tmc/langchaingo/prompts"

	"github.com/aguxez/twwc-protein/models"
)

const summaryTemplate = `Protein goals ({{.System}}, grams per {{.Unit}})
{{- range .Levels}}
{{.Name}}: maintain {{.Maintain}}, maintain high {{.MaintainHigh}}
{{- end}}
`

type summaryLine struct {
	Name         string
	Maintain     string
	MaintainHigh string
}

var summaryPrompt = prompts.NewPromptTemplate(summaryTemplate, []string{"System", "Unit", "Levels"})

// Summary lists the goals of every activity level in the record's own
// unit system.
func Summary(record models.SettingsRecord) (string, error) {
	if !record.System.Valid() {
		return "", fmt.Errorf("unknown system %q", record.System)
	}

	names := make([]string, 0, len(record.ActivityLevel))
	for name := range record.ActivityLevel {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]summaryLine, 0, len(names))
	for _, name := range names {
		goal := record.ActivityLevel[name].Goal
		line := summaryLine{Name: name}
		if record.System == models.Imperial {
			line.Maintain, line.MaintainHigh = goal.MaintainLbs, goal.MaintainHighLbs
		} else {
			line.Maintain, line.MaintainHigh = goal.MaintainKg, goal.MaintainHighKg
		}
		line.Maintain, line.MaintainHigh = orDash(line.Maintain), orDash(line.MaintainHigh)
		lines = append(lines, line)
	}

	unit := "lb"
	if record.System == models.Metric {
		unit = "kg"
	}

	out, err := summaryPrompt.Format(map[string]any{
		"System": string(record.System),
		"Unit":   unit,
		"Levels": lines,
	})
	if err != nil {
		return "", fmt.Errorf("formatting summary: %w", err)
	}
	return out, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
