package evaluator

import (
	"healthband-insights/internal/models"

	"go.uber.org/zap"
)

// RiskEvaluator 风险评估器。
// 按固定顺序评估规则（先命中先生效，后续规则不会降低已判定的等级），
// 纯函数：同一输入必得同一结果，无 I/O、无状态
type RiskEvaluator struct {
	logger *zap.Logger
}

// NewRiskEvaluator 创建风险评估器
func NewRiskEvaluator(logger *zap.Logger) *RiskEvaluator {
	return &RiskEvaluator{
		logger: logger,
	}
}

// Evaluate 评估单日体征，返回风险等级与建议。
// 规则顺序：
//  1. 无数据（HR/SpO2/活动强度均无读数）→ green
//  2. 重度负荷指标任一命中 → red
//  3. 中度负荷指标任一命中（未判 red 时）→ yellow
//  4. 以上均未命中 → green
func (e *RiskEvaluator) Evaluate(v models.DailyVitals) models.RiskAssessment {
	level := e.classify(v)

	e.logger.Debug("Risk evaluated",
		zap.String("risk_level", string(level)),
		zap.Float64("hr_avg", v.HRAvg),
		zap.Float64("hr_max", v.HRMax),
		zap.Float64("spo2_avg", v.SpO2Avg),
		zap.Float64("intensity_min", v.IntensityMin),
		zap.Float64("sleep_total_min", v.SleepTotalMin),
	)

	return models.RiskAssessment{
		Level:          level,
		Recommendation: models.RecommendationFor(level),
	}
}

func (e *RiskEvaluator) classify(v models.DailyVitals) models.RiskLevel {
	// 只有步数/睡眠而无心肺信号时按"无数据"处理
	if !v.HasCardioSignal() {
		return models.RiskGreen
	}
	if severeStrain(v) {
		return models.RiskRed
	}
	if elevatedStrain(v) {
		return models.RiskYellow
	}
	return models.RiskGreen
}
