package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"healthband-insights/internal/consumer"
	"healthband-insights/internal/repository"

	"go.uber.org/zap"
)

// DeviceHandler 设备维度查询接口（最新风险快照、历史评估记录）
// cache/assessments 任一未启用时对应接口返回 503
type DeviceHandler struct {
	cache       *consumer.CacheManager
	assessments *repository.AssessmentsRepository
	logger      *zap.Logger
}

// NewDeviceHandler 创建设备查询接口
func NewDeviceHandler(
	cache *consumer.CacheManager,
	assessments *repository.AssessmentsRepository,
	logger *zap.Logger,
) *DeviceHandler {
	return &DeviceHandler{
		cache:       cache,
		assessments: assessments,
		logger:      logger,
	}
}

// LatestRisk GET /api/v1/health/devices/{device_id}/latest
func (h *DeviceHandler) LatestRisk(w http.ResponseWriter, r *http.Request, deviceID string) {
	if h.cache == nil {
		writeJSON(w, http.StatusServiceUnavailable, Fail("risk cache not enabled"))
		return
	}

	snapshot, err := h.cache.GetLatestRisk(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, consumer.ErrSnapshotNotFound) {
			writeJSON(w, http.StatusNotFound, Fail(fmt.Sprintf("No risk snapshot for device %s", deviceID)))
			return
		}
		h.logger.Error("Failed to read risk snapshot",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to read risk snapshot"))
		return
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{"snapshot": snapshot}))
}

// ListAssessments GET /api/v1/health/devices/{device_id}/assessments?limit=
func (h *DeviceHandler) ListAssessments(w http.ResponseWriter, r *http.Request, deviceID string) {
	if h.assessments == nil {
		writeJSON(w, http.StatusServiceUnavailable, Fail("assessment store not enabled"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid limit"))
			return
		}
		limit = n
	}

	records, err := h.assessments.ListAssessmentsByDevice(r.Context(), deviceID, limit)
	if err != nil {
		h.logger.Error("Failed to list assessments",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail("failed to list assessments"))
		return
	}
	if records == nil {
		records = []repository.RiskAssessmentRecord{}
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{"assessments": records}))
}
