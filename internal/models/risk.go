package models

// RiskLevel 风险等级（序数：green < yellow < red）
type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskYellow RiskLevel = "yellow"
	RiskRed    RiskLevel = "red"
)

// Rank 序数值，用于比较等级高低（规则只升不降）
func (l RiskLevel) Rank() int {
	switch l {
	case RiskRed:
		return 2
	case RiskYellow:
		return 1
	default:
		return 0
	}
}

// 建议文案：等级的纯函数，固定三条
const (
	recommendationGreen  = "Continue normal activity. Stay hydrated."
	recommendationYellow = "Monitor vital signs. Consider rest and hydration soon."
	recommendationRed    = "Heat stress or fatigue risk. Rest and rehydrate. Seek shade. Recommend rest in 10 min."
)

// RecommendationFor 按等级查建议文案
func RecommendationFor(level RiskLevel) string {
	switch level {
	case RiskRed:
		return recommendationRed
	case RiskYellow:
		return recommendationYellow
	default:
		return recommendationGreen
	}
}

// RiskAssessment 风险评估结果
type RiskAssessment struct {
	Level          RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
}

// RiskSnapshot 设备最新风险快照（写入 Redis 缓存与 Stream）
type RiskSnapshot struct {
	DeviceID       string      `json:"device_id"`
	Date           string      `json:"date"`
	Level          RiskLevel   `json:"risk_level"`
	Recommendation string      `json:"recommendation"`
	Vitals         DailyVitals `json:"vitals"`
	Timestamp      int64       `json:"timestamp"` // Unix 秒
}
