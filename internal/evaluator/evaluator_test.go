package evaluator

import (
	"testing"

	"healthband-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestEvaluator() *RiskEvaluator {
	return NewRiskEvaluator(zap.NewNop())
}

func TestEvaluate_NoCardioSignalIsGreen(t *testing.T) {
	e := newTestEvaluator()

	// Steps and sleep alone carry no cardio/respiratory signal
	cases := []models.DailyVitals{
		{},
		{Steps: 12000, SleepTotalMin: 10, Calories: 900},
		{Steps: 8000},
		{SleepTotalMin: 25, Calories: 500},
	}

	for _, v := range cases {
		got := e.Evaluate(v)
		assert.Equal(t, models.RiskGreen, got.Level)
		assert.Equal(t, "Continue normal activity. Stay hydrated.", got.Recommendation)
	}
}

func TestEvaluate_RedScenario(t *testing.T) {
	e := newTestEvaluator()

	got := e.Evaluate(models.DailyVitals{
		HRAvg:         108,
		HRMax:         125,
		SpO2Avg:       87,
		Steps:         8000,
		IntensityMin:  50,
		SleepTotalMin: 0,
	})

	assert.Equal(t, models.RiskRed, got.Level)
	assert.Equal(t, "Heat stress or fatigue risk. Rest and rehydrate. Seek shade. Recommend rest in 10 min.", got.Recommendation)
}

func TestEvaluate_YellowScenario(t *testing.T) {
	e := newTestEvaluator()

	got := e.Evaluate(models.DailyVitals{
		HRAvg:         88,
		HRMax:         105,
		SpO2Avg:       95,
		Steps:         5000,
		IntensityMin:  25,
		SleepTotalMin: 240,
	})

	assert.Equal(t, models.RiskYellow, got.Level)
	assert.Equal(t, "Monitor vital signs. Consider rest and hydration soon.", got.Recommendation)
}

func TestEvaluate_GreenScenario(t *testing.T) {
	e := newTestEvaluator()

	got := e.Evaluate(models.DailyVitals{
		HRAvg:         62,
		HRMax:         80,
		SpO2Avg:       98,
		Steps:         2000,
		SleepTotalMin: 390,
	})

	assert.Equal(t, models.RiskGreen, got.Level)
}

func TestEvaluate_Boundaries(t *testing.T) {
	e := newTestEvaluator()

	tests := []struct {
		name   string
		vitals models.DailyVitals
		want   models.RiskLevel
	}{
		{"hr_avg exactly 100 is not red", models.DailyVitals{HRAvg: 100, SpO2Avg: 98, SleepTotalMin: 400}, models.RiskYellow},
		{"hr_avg just above 100 is red", models.DailyVitals{HRAvg: 100.01, SpO2Avg: 98, SleepTotalMin: 400}, models.RiskRed},
		{"hr_max exactly 120 is yellow", models.DailyVitals{HRMax: 120, SpO2Avg: 98, SleepTotalMin: 400}, models.RiskYellow},
		{"hr_max just above 120 is red", models.DailyVitals{HRMax: 120.1, SpO2Avg: 98, SleepTotalMin: 400}, models.RiskRed},
		{"hr_avg exactly 85 is not yellow", models.DailyVitals{HRAvg: 85, SpO2Avg: 98, SleepTotalMin: 400}, models.RiskGreen},
		{"hr_avg just above 85 is yellow", models.DailyVitals{HRAvg: 85.1, SpO2Avg: 98, SleepTotalMin: 400}, models.RiskYellow},
		{"spo2 exactly 90 is yellow", models.DailyVitals{HRAvg: 62, SpO2Avg: 90, SleepTotalMin: 400}, models.RiskYellow},
		{"spo2 just below 90 is red", models.DailyVitals{HRAvg: 62, SpO2Avg: 89.9, SleepTotalMin: 400}, models.RiskRed},
		{"spo2 exactly 95 is green", models.DailyVitals{HRAvg: 62, SpO2Avg: 95, SleepTotalMin: 400}, models.RiskGreen},
		{"spo2 zero is treated as no reading", models.DailyVitals{HRAvg: 62, IntensityMin: 5, SleepTotalMin: 400}, models.RiskGreen},
		{"intensity 46 with sleep 29 is red", models.DailyVitals{IntensityMin: 46, SleepTotalMin: 29}, models.RiskRed},
		{"intensity 45 with sleep 29 is yellow", models.DailyVitals{IntensityMin: 45, SleepTotalMin: 29}, models.RiskYellow},
		{"intensity 21 with sleep 59 is yellow", models.DailyVitals{IntensityMin: 21, SleepTotalMin: 59}, models.RiskYellow},
		{"intensity 21 with sleep 60 is green", models.DailyVitals{IntensityMin: 21, SleepTotalMin: 60, SpO2Avg: 98}, models.RiskGreen},
		{"active day with short sleep is yellow", models.DailyVitals{Steps: 5001, HRAvg: 80.5, SleepTotalMin: 299, SpO2Avg: 98}, models.RiskYellow},
		{"active day with enough sleep is green", models.DailyVitals{Steps: 5001, HRAvg: 80.5, SleepTotalMin: 300, SpO2Avg: 98}, models.RiskGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(tt.vitals)
			assert.Equal(t, tt.want, got.Level)
			assert.Equal(t, models.RecommendationFor(tt.want), got.Recommendation)
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := newTestEvaluator()
	v := models.DailyVitals{HRAvg: 91, HRMax: 118, SpO2Avg: 94, IntensityMin: 38, SleepTotalMin: 150}

	first := e.Evaluate(v)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Evaluate(v))
	}
}

func TestRecommendationFor_FixedTable(t *testing.T) {
	assert.Equal(t, "Continue normal activity. Stay hydrated.", models.RecommendationFor(models.RiskGreen))
	assert.Equal(t, "Monitor vital signs. Consider rest and hydration soon.", models.RecommendationFor(models.RiskYellow))
	assert.Equal(t, "Heat stress or fatigue risk. Rest and rehydrate. Seek shade. Recommend rest in 10 min.", models.RecommendationFor(models.RiskRed))
}

func TestRiskLevel_Rank(t *testing.T) {
	assert.Less(t, models.RiskGreen.Rank(), models.RiskYellow.Rank())
	assert.Less(t, models.RiskYellow.Rank(), models.RiskRed.Rank())
}
