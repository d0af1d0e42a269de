package evaluator

import "healthband-insights/internal/models"

// 阈值边界严格按原规则：hr_avg == 100 不判 red，100.01 判 red；
// hr_avg == 85 不判 yellow，85.1 判 yellow

// severeStrain 重度负荷（red）：
//   - 平均心率 > 100 或 最大心率 > 120
//   - 有血氧读数且 SpO2 < 90
//   - 高强度活动 > 45 分钟且睡眠 < 30 分钟
func severeStrain(v models.DailyVitals) bool {
	if v.HRAvg > 100 || v.HRMax > 120 {
		return true
	}
	if v.SpO2Avg > 0 && v.SpO2Avg < 90 {
		return true
	}
	if v.IntensityMin > 45 && v.SleepTotalMin < 30 {
		return true
	}
	return false
}

// elevatedStrain 中度负荷（yellow）：
//   - 85 < 平均心率 <= 100 或 100 < 最大心率 <= 120
//   - 有血氧读数且 90 <= SpO2 < 95
//   - 活动 > 20 分钟且睡眠 < 60 分钟
//   - 步数 > 5000 且平均心率 > 80 且睡眠 < 300 分钟
func elevatedStrain(v models.DailyVitals) bool {
	if (v.HRAvg > 85 && v.HRAvg <= 100) || (v.HRMax > 100 && v.HRMax <= 120) {
		return true
	}
	if v.SpO2Avg > 0 && v.SpO2Avg >= 90 && v.SpO2Avg < 95 {
		return true
	}
	if v.IntensityMin > 20 && v.SleepTotalMin < 60 {
		return true
	}
	if v.Steps > 5000 && v.HRAvg > 80 && v.SleepTotalMin < 300 {
		return true
	}
	return false
}
