package httpapi

import (
	"net/http"

	"healthband-insights/internal/evaluator"
	"healthband-insights/internal/extractor"
	"healthband-insights/internal/models"

	"go.uber.org/zap"
)

// AnalyzeHandler 健康分析接口
type AnalyzeHandler struct {
	riskEvaluator *evaluator.RiskEvaluator
	logger        *zap.Logger
}

// NewAnalyzeHandler 创建健康分析接口
func NewAnalyzeHandler(riskEvaluator *evaluator.RiskEvaluator, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		riskEvaluator: riskEvaluator,
		logger:        logger,
	}
}

// AnalyzeResult 分析结果
type AnalyzeResult struct {
	Text           string           `json:"text"`
	RiskLevel      models.RiskLevel `json:"risk_level"`
	Recommendation string           `json:"recommendation"`
}

// Analyze POST /api/v1/health/analyze
// 请求体为八个体征字段的 JSON（字段可缺失；非数值按无读数处理）
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := readBodyJSON(r, 1<<20, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid JSON body"))
		return
	}

	// 非数值字段静默归 0（评估对任意残缺输入都是全函数）
	row := make(map[string]float64, len(body))
	for k, v := range body {
		if f, ok := v.(float64); ok {
			row[k] = f
		}
	}

	vitals := extractor.FromRow(row)
	assessment := h.riskEvaluator.Evaluate(vitals)

	h.logger.Debug("Analyze request handled",
		zap.String("risk_level", string(assessment.Level)),
	)

	writeJSON(w, http.StatusOK, Ok(AnalyzeResult{
		Text:           extractor.VitalsText(vitals),
		RiskLevel:      assessment.Level,
		Recommendation: assessment.Recommendation,
	}))
}

// Live GET /api/v1/health/live
func (h *AnalyzeHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
