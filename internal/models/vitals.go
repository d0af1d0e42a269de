package models

// DailyVitals 单日聚合生命体征（一天/一个对象一条）
// 约定：0 或缺失均表示"无读数"，不区分真实生理 0 值与传感器缺数
type DailyVitals struct {
	HRAvg         float64 `json:"hr_avg"`          // 日平均心率（bpm）
	HRMax         float64 `json:"hr_max"`          // 日最大心率（bpm）
	HRResting     float64 `json:"hr_resting"`      // 静息心率（bpm）
	SpO2Avg       float64 `json:"spo2_avg"`        // 日平均血氧（%，[0,100]）
	Steps         float64 `json:"steps"`           // 步数
	IntensityMin  float64 `json:"intensity_min"`   // 中高强度活动分钟数
	Calories      float64 `json:"calories"`        // 日消耗卡路里
	SleepTotalMin float64 `json:"sleep_total_min"` // 睡眠总时长（分钟）
}

// HasCardioSignal 是否存在心肺数据（HR/SpO2/活动强度任一 > 0）
// 仅有步数或睡眠而无心肺信号时按"无数据"处理
func (v DailyVitals) HasCardioSignal() bool {
	return v.HRAvg > 0 || v.HRMax > 0 || v.SpO2Avg > 0 || v.IntensityMin > 0
}

// DailySummary 设备导出 CSV 聚合出的单日汇总（对应 health_daily_summary.csv 一行）
type DailySummary struct {
	Date          string `json:"date"`
	Steps         int    `json:"steps"`
	DistanceM     int    `json:"distance_m"`
	StepsCal      int    `json:"steps_cal"`
	Calories      int    `json:"calories"`
	StandCount    int    `json:"stand_count"`
	IntensityMin  int    `json:"intensity_min"`
	HRAvg         int    `json:"hr_avg"`
	HRMin         int    `json:"hr_min"`
	HRMax         int    `json:"hr_max"`
	HRResting     int    `json:"hr_resting"`
	SleepTotalMin int    `json:"sleep_total_min"`
	SleepScore    int    `json:"sleep_score"`
	SleepDeepMin  int    `json:"sleep_deep_min"`
	SleepLightMin int    `json:"sleep_light_min"`
	SpO2Avg       int    `json:"spo2_avg"`
}

// Vitals 转换为风险评估输入
func (s DailySummary) Vitals() DailyVitals {
	return DailyVitals{
		HRAvg:         float64(s.HRAvg),
		HRMax:         float64(s.HRMax),
		HRResting:     float64(s.HRResting),
		SpO2Avg:       float64(s.SpO2Avg),
		Steps:         float64(s.Steps),
		IntensityMin:  float64(s.IntensityMin),
		Calories:      float64(s.Calories),
		SleepTotalMin: float64(s.SleepTotalMin),
	}
}

// Summary 由上报体征构造单日汇总（仅八个体征字段，其余列为 0）
func (v DailyVitals) Summary(date string) DailySummary {
	return DailySummary{
		Date:          date,
		Steps:         int(v.Steps),
		Calories:      int(v.Calories),
		IntensityMin:  int(v.IntensityMin),
		HRAvg:         int(v.HRAvg),
		HRMax:         int(v.HRMax),
		HRResting:     int(v.HRResting),
		SleepTotalMin: int(v.SleepTotalMin),
		SpO2Avg:       int(v.SpO2Avg),
	}
}

// SportSession 运动记录（如羽毛球场次）
type SportSession struct {
	Date        string `json:"date"` // "YYYY-MM-DD HH:MM"（UTC）
	Calories    int    `json:"calories"`
	DurationSec int    `json:"duration_sec"`
	AvgHR       int    `json:"avg_hr"`
	MaxHR       int    `json:"max_hr"`
	Vitality    int    `json:"vitality"`
}

// FitnessSummary 原始时序数据汇总（心率采样、原始步数）
type FitnessSummary struct {
	HeartRateRecords int     `json:"heart_rate_records"`
	HRAvg            float64 `json:"hr_avg"`
	HRMin            int     `json:"hr_min"`
	HRMax            int     `json:"hr_max"`
	StepsTotalRaw    int     `json:"steps_total_raw"`
}
