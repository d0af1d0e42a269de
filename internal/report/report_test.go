package report

import (
	"bytes"
	"strings"
	"testing"

	"healthband-insights/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleSummaries() []models.DailySummary {
	return []models.DailySummary{
		{
			Date: "2024-03-15", Steps: 2276, Calories: 350, StandCount: 9, IntensityMin: 17,
			HRAvg: 82, HRMax: 105, HRResting: 69,
			SleepTotalMin: 412, SleepScore: 81, SleepDeepMin: 95,
			SpO2Avg: 97,
		},
		{
			Date: "2024-03-16", Steps: 5100, Calories: 410, StandCount: 11, IntensityMin: 24,
			HRAvg: 88, HRMax: 112, HRResting: 71,
		},
	}
}

func TestRender_FullReport(t *testing.T) {
	var buf bytes.Buffer

	sessions := []models.SportSession{
		{Date: "2024-03-15 18:00", Calories: 310, DurationSec: 2700, AvgHR: 132, MaxHR: 165, Vitality: 42},
	}
	fitness := models.FitnessSummary{HeartRateRecords: 120, HRAvg: 78.3, HRMin: 52, HRMax: 160, StepsTotalRaw: 7300}

	Render(&buf, sampleSummaries(), sessions, fitness)
	out := buf.String()

	assert.Contains(t, out, "HEALTHBAND - HEALTH INSIGHTS")
	assert.Contains(t, out, "DAILY SUMMARY (aggregated)")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "Days with data:     2")
	assert.Contains(t, out, "Total steps:        7376")
	assert.Contains(t, out, "HEART RATE (daily report)")
	assert.Contains(t, out, "Avg HR (across days): 85 bpm")
	assert.Contains(t, out, "Resting HR range:     69-71 bpm")
	assert.Contains(t, out, "Peak HR (daily max):  112 bpm")
	assert.Contains(t, out, "SLEEP (when recorded)")
	assert.Contains(t, out, "Nights recorded:   1")
	assert.Contains(t, out, "SPO2")
	assert.Contains(t, out, "Avg SpO2: 97%")
	assert.Contains(t, out, "SPORT SESSIONS")
	assert.Contains(t, out, "1. 2024-03-15 18:00  |  310 cal  |  45 min  |  avg HR 132  |  vitality 42")
	assert.Contains(t, out, "RAW FITNESS DATA (time-series)")
	assert.Contains(t, out, "Heart rate readings: 120")
	assert.Contains(t, out, "Steps (from raw):    7300")
}

func TestRender_NoData(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, nil, nil, models.FitnessSummary{})
	out := buf.String()

	assert.Contains(t, out, "No data found. Place CSVs in the data folder.")
	assert.NotContains(t, out, "DAILY SUMMARY")
}

func TestRender_SkipsSectionsWithoutReadings(t *testing.T) {
	var buf bytes.Buffer

	// No HR, sleep, or SpO2 readings at all
	summaries := []models.DailySummary{{Date: "2024-03-15", Steps: 1000, Calories: 100}}
	Render(&buf, summaries, nil, models.FitnessSummary{})
	out := buf.String()

	assert.Contains(t, out, "DAILY SUMMARY (aggregated)")
	assert.NotContains(t, out, "HEART RATE")
	assert.NotContains(t, out, "SLEEP")
	assert.NotContains(t, out, "SPO2")
	assert.Equal(t, 1, strings.Count(out, "2024-03-15"))
}
