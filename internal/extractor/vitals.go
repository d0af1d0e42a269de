package extractor

import (
	"fmt"
	"math"
	"strings"

	"healthband-insights/internal/models"
)

// 输入行的字段名（与日汇总 / analyze 接口一致）
const (
	FieldHRAvg         = "hr_avg"
	FieldHRMax         = "hr_max"
	FieldHRResting     = "hr_resting"
	FieldSpO2Avg       = "spo2_avg"
	FieldSteps         = "steps"
	FieldIntensityMin  = "intensity_min"
	FieldCalories      = "calories"
	FieldSleepTotalMin = "sleep_total_min"
)

// NoVitalsText 当日无任何体征时的固定文案
const NoVitalsText = "No vital signs recorded."

// FromRow 把一行命名数值字段映射为 DailyVitals。
// 对任意残缺输入都是全函数：缺失、NaN、非正数一律归 0（"无读数"）
func FromRow(row map[string]float64) models.DailyVitals {
	return models.DailyVitals{
		HRAvg:         fieldValue(row, FieldHRAvg),
		HRMax:         fieldValue(row, FieldHRMax),
		HRResting:     fieldValue(row, FieldHRResting),
		SpO2Avg:       fieldValue(row, FieldSpO2Avg),
		Steps:         fieldValue(row, FieldSteps),
		IntensityMin:  fieldValue(row, FieldIntensityMin),
		Calories:      fieldValue(row, FieldCalories),
		SleepTotalMin: fieldValue(row, FieldSleepTotalMin),
	}
}

func fieldValue(row map[string]float64, key string) float64 {
	v, ok := row[key]
	if !ok || math.IsNaN(v) || v <= 0 {
		return 0
	}
	return v
}

// VitalsText 把单日体征渲染成短句（仅含有读数的字段，顺序固定）。
// 睡眠时长渲染为 "<H>h<M>m"，全部缺失时返回 NoVitalsText
func VitalsText(v models.DailyVitals) string {
	var parts []string
	if v.HRAvg > 0 {
		parts = append(parts, fmt.Sprintf("HR average %d bpm", int(v.HRAvg)))
	}
	if v.HRMax > 0 {
		parts = append(parts, fmt.Sprintf("HR max %d bpm", int(v.HRMax)))
	}
	if v.HRResting > 0 {
		parts = append(parts, fmt.Sprintf("resting HR %d bpm", int(v.HRResting)))
	}
	if v.SpO2Avg > 0 {
		parts = append(parts, fmt.Sprintf("SpO2 %d percent", int(v.SpO2Avg)))
	}
	if v.Steps > 0 {
		parts = append(parts, fmt.Sprintf("steps %d", int(v.Steps)))
	}
	if v.IntensityMin > 0 {
		parts = append(parts, fmt.Sprintf("active %d minutes", int(v.IntensityMin)))
	}
	if v.Calories > 0 {
		parts = append(parts, fmt.Sprintf("calories %d", int(v.Calories)))
	}
	if v.SleepTotalMin > 0 {
		h := int(v.SleepTotalMin) / 60
		m := int(v.SleepTotalMin) % 60
		parts = append(parts, fmt.Sprintf("sleep %dh%dm", h, m))
	}
	if len(parts) == 0 {
		return NoVitalsText
	}
	return strings.Join(parts, " ")
}
