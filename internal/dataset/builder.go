package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"healthband-insights/internal/evaluator"
	"healthband-insights/internal/extractor"
	"healthband-insights/internal/models"

	"go.uber.org/zap"
)

// Example 文本分类数据集的一行
type Example struct {
	Text           string           `json:"text"`
	RiskLevel      models.RiskLevel `json:"risk_level"`
	Recommendation string           `json:"recommendation"`
}

// Builder 文本分类数据集构建器：
// 日汇总 → 体征短句 + 规则风险标签，末尾追加固定的合成样本
type Builder struct {
	evaluator *evaluator.RiskEvaluator
	logger    *zap.Logger
}

// NewBuilder 创建数据集构建器
func NewBuilder(riskEvaluator *evaluator.RiskEvaluator, logger *zap.Logger) *Builder {
	return &Builder{
		evaluator: riskEvaluator,
		logger:    logger,
	}
}

// Build 从日汇总构建数据集（真实样本 + 合成样本）
func (b *Builder) Build(summaries []models.DailySummary) []Example {
	examples := make([]Example, 0, len(summaries)+len(syntheticExamples))
	for _, s := range summaries {
		vitals := s.Vitals()
		assessment := b.evaluator.Evaluate(vitals)
		examples = append(examples, Example{
			Text:           extractor.VitalsText(vitals),
			RiskLevel:      assessment.Level,
			Recommendation: assessment.Recommendation,
		})
	}
	// 合成样本保证 red 与典型 green 在训练集中有覆盖
	examples = append(examples, SyntheticExamples()...)

	counts := CountByLevel(examples)
	b.logger.Info("Dataset built",
		zap.Int("total", len(examples)),
		zap.Int("green", counts[models.RiskGreen]),
		zap.Int("yellow", counts[models.RiskYellow]),
		zap.Int("red", counts[models.RiskRed]),
	)
	return examples
}

// CountByLevel 按等级统计样本数
func CountByLevel(examples []Example) map[models.RiskLevel]int {
	counts := make(map[models.RiskLevel]int, 3)
	for _, ex := range examples {
		counts[ex.RiskLevel]++
	}
	return counts
}

// WriteCSV 写出数据集 CSV（text,risk_level,recommendation）
func WriteCSV(w io.Writer, examples []Example) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"text", "risk_level", "recommendation"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, ex := range examples {
		if err := cw.Write([]string{ex.Text, string(ex.RiskLevel), ex.Recommendation}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
