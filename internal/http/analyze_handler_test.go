package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthband-insights/internal/evaluator"
	"healthband-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupHealthRouter(t *testing.T) *Router {
	t.Helper()

	logger := zap.NewNop()
	router := NewRouter(logger)
	router.RegisterHealthRoutes(NewAnalyzeHandler(evaluator.NewRiskEvaluator(logger), logger))
	return router
}

func postAnalyze(t *testing.T, router *Router, body string) (*httptest.ResponseRecorder, Result[AnalyzeResult]) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/health/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var result Result[AnalyzeResult]
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	}
	return rec, result
}

func TestAnalyze_RedRiskVitals(t *testing.T) {
	router := setupHealthRouter(t)

	rec, result := postAnalyze(t, router, `{
		"hr_avg": 108, "hr_max": 125, "spo2_avg": 87,
		"steps": 8000, "intensity_min": 50
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ResultSuccess, result.Code)
	assert.Equal(t, models.RiskRed, result.Result.RiskLevel)
	assert.Equal(t, models.RecommendationFor(models.RiskRed), result.Result.Recommendation)
	assert.Contains(t, result.Result.Text, "HR average 108 bpm")
	assert.Contains(t, result.Result.Text, "SpO2 87 percent")
}

func TestAnalyze_GreenWhenNoReadings(t *testing.T) {
	router := setupHealthRouter(t)

	rec, result := postAnalyze(t, router, `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RiskGreen, result.Result.RiskLevel)
	assert.Equal(t, "No vital signs recorded.", result.Result.Text)
}

func TestAnalyze_IgnoresNonNumericFields(t *testing.T) {
	router := setupHealthRouter(t)

	// 字符串字段按无读数处理，不报错
	rec, result := postAnalyze(t, router, `{
		"hr_avg": "fast", "hr_max": 110, "steps": 4100
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RiskYellow, result.Result.RiskLevel)
	assert.NotContains(t, result.Result.Text, "HR average")
	assert.Contains(t, result.Result.Text, "HR max 110 bpm")
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	router := setupHealthRouter(t)

	rec, _ := postAnalyze(t, router, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fail Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fail))
	assert.Equal(t, ResultError, fail.Code)
	assert.Equal(t, "invalid JSON body", fail.Message)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	router := setupHealthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/analyze", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLive(t *testing.T) {
	router := setupHealthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
