package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAggregatedFixture(t *testing.T) string {
	t.Helper()
	// Two days of daily+AF8-report rows plus one non-report row and one bad Time
	content := "Tag,Key,Time,Value,UpdateTime\n" +
		"daily+AF8-report,steps,1710462600,calories+ACIAIg-:101,+ACIAIg-distance+ACIAIg-:1715,+ACIAIg-steps+ACIAIg-:2276,1710470000\n" +
		"daily+AF8-report,calories,1710462600,value+ACIAIg-:350,1710470000\n" +
		"daily+AF8-report,valid+AF8-stand,1710462600,value+ACIAIg-:9,1710470000\n" +
		"daily+AF8-report,intensity,1710462600,value+ACIAIg-:17,1710470000\n" +
		"daily+AF8-report,heart+AF8-rate,1710462600,avg+AF8-hr+ACIAIg-:82,+ACIAIg-min+AF8-hr+ACIAIg-:55,+ACIAIg-max+AF8-hr+ACIAIg-:105,+ACIAIg-avg+AF8-rhr+ACIAIg-:69,1710470000\n" +
		"daily+AF8-report,sleep,1710462600,total+AF8-duration+ACIAIg-:412,+ACIAIg-sleep+AF8-score+ACIAIg-:81,+ACIAIg-sleep+AF8-deep+AF8-duration+ACIAIg-:95,+ACIAIg-sleep+AF8-light+AF8-duration+ACIAIg-:240,1710470000\n" +
		"daily+AF8-report,spo2,1710462600,avg+AF8-spo2+ACIAIg-:97,1710470000\n" +
		"daily+AF8-report,steps,1710549000,calories+ACIAIg-:88,+ACIAIg-steps+AF8-foo,1710550000\n" +
		"other+AF8-tag,steps,1710462600,steps+ACIAIg-:99999,1710470000\n" +
		"daily+AF8-report,steps,not-a-time,steps+ACIAIg-:123,1710470000\n"

	path := filepath.Join(t.TempDir(), "agg.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAggregated(t *testing.T) {
	records, err := LoadAggregated(writeAggregatedFixture(t))
	require.NoError(t, err)

	// bad-Time row dropped, keys normalized, dates derived
	require.Len(t, records, 9)
	assert.Equal(t, "daily+AF8-report", records[0].Tag)
	assert.Equal(t, "steps", records[0].Key)
	assert.Equal(t, "2024-03-15", records[0].Date)
	assert.Equal(t, "heart_rate", records[4].Key)
	assert.Equal(t, "valid_stand", records[2].Key)
}

func TestBuildDailySummary(t *testing.T) {
	records, err := LoadAggregated(writeAggregatedFixture(t))
	require.NoError(t, err)

	summaries := BuildDailySummary(records)
	require.Len(t, summaries, 2)

	day1 := summaries[0]
	assert.Equal(t, "2024-03-15", day1.Date)
	assert.Equal(t, 2276, day1.Steps)
	assert.Equal(t, 1715, day1.DistanceM)
	assert.Equal(t, 101, day1.StepsCal)
	assert.Equal(t, 350, day1.Calories)
	assert.Equal(t, 9, day1.StandCount)
	assert.Equal(t, 17, day1.IntensityMin)
	assert.Equal(t, 82, day1.HRAvg)
	assert.Equal(t, 55, day1.HRMin)
	assert.Equal(t, 105, day1.HRMax)
	assert.Equal(t, 69, day1.HRResting)
	assert.Equal(t, 412, day1.SleepTotalMin)
	assert.Equal(t, 81, day1.SleepScore)
	assert.Equal(t, 95, day1.SleepDeepMin)
	assert.Equal(t, 240, day1.SleepLightMin)
	assert.Equal(t, 97, day1.SpO2Avg)

	// second day: only a partial steps row; everything else defaults to 0
	day2 := summaries[1]
	assert.Equal(t, "2024-03-16", day2.Date)
	assert.Equal(t, 0, day2.Steps)
	assert.Equal(t, 88, day2.StepsCal)
	assert.Equal(t, 0, day2.HRAvg)
	assert.Equal(t, 0, day2.SleepTotalMin)
	assert.Equal(t, 0, day2.SpO2Avg)
}

func TestBuildDailySummary_SleepFallbackToFirstNumber(t *testing.T) {
	records := []AggregatedRecord{
		{Tag: dailyReportTag, Key: "sleep", Time: 1710462600, Value: "duration+ACIAIg-:365", Date: "2024-03-15"},
	}

	summaries := BuildDailySummary(records)
	require.Len(t, summaries, 1)
	assert.Equal(t, 365, summaries[0].SleepTotalMin)
}

func TestBuildDailySummary_Empty(t *testing.T) {
	assert.Empty(t, BuildDailySummary(nil))
}
