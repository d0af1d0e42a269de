package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthband-insights/internal/config"
	"healthband-insights/internal/consumer"
	"healthband-insights/internal/models"
	"healthband-insights/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupDeviceCache(t *testing.T) *consumer.CacheManager {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cfg := &config.Config{}
	cfg.Cache.RiskKeyPrefix = "health-risk:device:"
	cfg.Cache.RiskSuffix = ":latest"
	cfg.Cache.RiskTTL = 300

	return consumer.NewCacheManager(cfg, redisClient, zap.NewNop())
}

func setupDeviceRouter(t *testing.T, cache *consumer.CacheManager, assessments *repository.AssessmentsRepository) *Router {
	t.Helper()

	logger := zap.NewNop()
	router := NewRouter(logger)
	router.RegisterDeviceRoutes(NewDeviceHandler(cache, assessments, logger))
	return router
}

func getDevice(t *testing.T, router *Router, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLatestRisk_Success(t *testing.T) {
	cache := setupDeviceCache(t)
	router := setupDeviceRouter(t, cache, nil)

	snapshot := &models.RiskSnapshot{
		DeviceID:       "band-001",
		Date:           "2024-03-15",
		Level:          models.RiskRed,
		Recommendation: models.RecommendationFor(models.RiskRed),
		Vitals:         models.DailyVitals{HRAvg: 108, HRMax: 125},
		Timestamp:      time.Now().Unix(),
	}
	require.NoError(t, cache.SetLatestRisk(context.Background(), "band-001", snapshot))

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/latest")
	assert.Equal(t, http.StatusOK, rec.Code)

	var result Result[struct {
		Snapshot models.RiskSnapshot `json:"snapshot"`
	}]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, ResultSuccess, result.Code)
	assert.Equal(t, "band-001", result.Result.Snapshot.DeviceID)
	assert.Equal(t, models.RiskRed, result.Result.Snapshot.Level)
	assert.Equal(t, 108.0, result.Result.Snapshot.Vitals.HRAvg)
}

func TestLatestRisk_NotFound(t *testing.T) {
	router := setupDeviceRouter(t, setupDeviceCache(t), nil)

	rec := getDevice(t, router, "/api/v1/health/devices/band-unknown/latest")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var fail Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fail))
	assert.Equal(t, "No risk snapshot for device band-unknown", fail.Message)
}

func TestLatestRisk_CacheNotEnabled(t *testing.T) {
	router := setupDeviceRouter(t, nil, nil)

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/latest")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListAssessments_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewAssessmentsRepository(db, zap.NewNop())
	router := setupDeviceRouter(t, nil, repo)

	assessmentID := uuid.New().String()
	rows := sqlmock.NewRows([]string{
		"assessment_id", "device_id", "date", "risk_level", "recommendation", "vitals", "created_at",
	}).AddRow(
		assessmentID, "band-001", "2024-03-15", "yellow",
		models.RecommendationFor(models.RiskYellow),
		[]byte(`{"hr_avg":92,"hr_max":110,"hr_resting":0,"spo2_avg":0,"steps":4100,"intensity_min":0,"calories":0,"sleep_total_min":0}`),
		time.Now(),
	)
	mock.ExpectQuery(`SELECT assessment_id`).
		WithArgs("band-001", 10).
		WillReturnRows(rows)

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/assessments?limit=10")
	assert.Equal(t, http.StatusOK, rec.Code)

	var result Result[struct {
		Assessments []repository.RiskAssessmentRecord `json:"assessments"`
	}]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Result.Assessments, 1)
	assert.Equal(t, assessmentID, result.Result.Assessments[0].AssessmentID)
	assert.Equal(t, models.RiskYellow, result.Result.Assessments[0].Level)
	assert.Equal(t, 92.0, result.Result.Assessments[0].Vitals.HRAvg)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssessments_EmptyAndDefaultLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewAssessmentsRepository(db, zap.NewNop())
	router := setupDeviceRouter(t, nil, repo)

	mock.ExpectQuery(`SELECT assessment_id`).
		WithArgs("band-001", 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"assessment_id", "device_id", "date", "risk_level", "recommendation", "vitals", "created_at",
		}))

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/assessments")
	assert.Equal(t, http.StatusOK, rec.Code)

	var result Result[struct {
		Assessments []repository.RiskAssessmentRecord `json:"assessments"`
	}]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Empty(t, result.Result.Assessments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssessments_InvalidLimit(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewAssessmentsRepository(db, zap.NewNop())
	router := setupDeviceRouter(t, nil, repo)

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/assessments?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAssessments_StoreNotEnabled(t *testing.T) {
	router := setupDeviceRouter(t, nil, nil)

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/assessments")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDeviceRoutes_UnknownSubresource(t *testing.T) {
	router := setupDeviceRouter(t, setupDeviceCache(t), nil)

	rec := getDevice(t, router, "/api/v1/health/devices/band-001/history")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
