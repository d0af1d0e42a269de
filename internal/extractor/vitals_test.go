package extractor

import (
	"math"
	"testing"

	"healthband-insights/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFromRow_DefaultsMissingAndInvalidToZero(t *testing.T) {
	row := map[string]float64{
		FieldHRAvg:   72,
		FieldHRMax:   -5,          // negative means no reading
		FieldSpO2Avg: math.NaN(),  // NaN means no reading
		FieldSteps:   0,           // zero stays zero
		// hr_resting, intensity_min, calories, sleep_total_min absent
	}

	v := FromRow(row)

	assert.Equal(t, 72.0, v.HRAvg)
	assert.Equal(t, 0.0, v.HRMax)
	assert.Equal(t, 0.0, v.HRResting)
	assert.Equal(t, 0.0, v.SpO2Avg)
	assert.Equal(t, 0.0, v.Steps)
	assert.Equal(t, 0.0, v.IntensityMin)
	assert.Equal(t, 0.0, v.Calories)
	assert.Equal(t, 0.0, v.SleepTotalMin)
}

func TestFromRow_EmptyRow(t *testing.T) {
	v := FromRow(map[string]float64{})
	assert.Equal(t, models.DailyVitals{}, v)
}

func TestVitalsText_OnlyPresentFieldsInFixedOrder(t *testing.T) {
	v := models.DailyVitals{
		HRAvg:         65,
		SleepTotalMin: 90,
	}

	assert.Equal(t, "HR average 65 bpm sleep 1h30m", VitalsText(v))
}

func TestVitalsText_AllFields(t *testing.T) {
	v := models.DailyVitals{
		HRAvg:         75,
		HRMax:         95,
		HRResting:     62,
		SpO2Avg:       96,
		Steps:         3500,
		IntensityMin:  12,
		Calories:      180,
		SleepTotalMin: 330,
	}

	expected := "HR average 75 bpm HR max 95 bpm resting HR 62 bpm SpO2 96 percent " +
		"steps 3500 active 12 minutes calories 180 sleep 5h30m"
	assert.Equal(t, expected, VitalsText(v))
}

func TestVitalsText_SleepWholeHours(t *testing.T) {
	v := models.DailyVitals{SleepTotalMin: 420}
	assert.Equal(t, "sleep 7h0m", VitalsText(v))
}

func TestVitalsText_AllZero(t *testing.T) {
	assert.Equal(t, "No vital signs recorded.", VitalsText(models.DailyVitals{}))
}
