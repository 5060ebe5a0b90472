package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prosono/client/internal/models"
)

func f(v float64) *float64 { return &v }

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "07:30", FormatClock(f(450)))
	assert.Equal(t, "23:00", FormatClock(f(1380)))
	assert.Equal(t, "00:05", FormatClock(f(5)))
	assert.Equal(t, "N/A", FormatClock(nil))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8h 15m", FormatDuration(f(495)))
	assert.Equal(t, "45 m", FormatDuration(f(45)))
	assert.Equal(t, "1h 0m", FormatDuration(f(60)))
	assert.Equal(t, "N/A", FormatDuration(nil))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1.5", FormatCount(f(1.5)))
	assert.Equal(t, "N/A", FormatCount(nil))
}

func TestRender_NoData(t *testing.T) {
	out := Render(&models.User{FirstName: "Ana", LastName: "Silva", Status: models.StatusPreEvaluation})
	assert.Contains(t, out, "Ana Silva")
	assert.Contains(t, out, "No sleep data recorded yet")
}

func TestRender_WithAggregates(t *testing.T) {
	user := &models.User{
		FirstName: "Ana",
		LastName:  "Silva",
		Status:    models.StatusSleepTracking,
		DailySurveys: &models.DailySurveys{
			Target:            30,
			Dates:             []string{"2026-08-25", "2026-08-26"},
			Streak:            2,
			MeanSleepDuration: models.MeanMetrics{Last7Days: f(495)},
			MeanWakeTime:      models.MeanMetrics{Last7Days: f(450)},
		},
		EvaluationSurveys: []models.EvaluationSurvey{{Date: "2026-08-01", Score: 14}},
	}

	out := Render(user)
	assert.Contains(t, out, "Nights logged: 2 of 30 (streak: 2)")
	assert.Contains(t, out, "8h 15m")
	assert.Contains(t, out, "07:30")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "2026-08-01 — score 14.0")
}
