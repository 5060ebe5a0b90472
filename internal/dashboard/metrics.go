package dashboard

import (
	"fmt"
	"math"
	"strings"

	"prosono/client/internal/models"
)

// Rendering of the server-computed nightly aggregates. Wake time and bedtime
// arrive as minutes from midnight, durations as plain minutes; a nil mean
// means the window had no data.

func FormatClock(minutes *float64) string {
	if minutes == nil {
		return "N/A"
	}
	h := int(math.Floor(*minutes / 60))
	m := int(math.Floor(math.Mod(*minutes, 60)))
	return fmt.Sprintf("%02d:%02d", h, m)
}

func FormatDuration(minutes *float64) string {
	if minutes == nil {
		return "N/A"
	}
	total := int(math.Round(*minutes))
	if total < 60 {
		return fmt.Sprintf("%d m", total)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

func FormatCount(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *value)
}

type row struct {
	label  string
	metric models.MeanMetrics
	format func(*float64) string
}

// Render produces the plain-text metrics table shown by the dashboard
// command: one row per metric, columns for the 7/15/30-day means, plus the
// tracking streak and target progress.
func Render(u *models.User) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s — %s\n", u.FirstName, u.LastName, u.Status)

	ds := u.DailySurveys
	if ds == nil {
		b.WriteString("No sleep data recorded yet.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Nights logged: %d of %d (streak: %d)\n\n", len(ds.Dates), ds.Target, ds.Streak)

	rows := []row{
		{"Sleep duration", ds.MeanSleepDuration, FormatDuration},
		{"Wake time", ds.MeanWakeTime, FormatClock},
		{"Bedtime", ds.MeanBedtime, FormatClock},
		{"Time to sleep", ds.MeanTimeToSleep, FormatDuration},
		{"Night awakenings", ds.MeanNightAwakening, FormatCount},
		{"Sleep quality", ds.MeanSleepQuality, FormatCount},
	}

	fmt.Fprintf(&b, "%-18s %10s %10s %10s\n", "", "7 days", "15 days", "30 days")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-18s %10s %10s %10s\n",
			r.label,
			r.format(r.metric.Last7Days),
			r.format(r.metric.Last15Days),
			r.format(r.metric.Last30Days),
		)
	}

	if len(u.EvaluationSurveys) > 0 {
		b.WriteString("\nEvaluations:\n")
		for _, ev := range u.EvaluationSurveys {
			fmt.Fprintf(&b, "  %s — score %.1f\n", ev.Date, ev.Score)
		}
	}

	return b.String()
}
