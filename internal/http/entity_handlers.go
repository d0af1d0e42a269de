package httpapi

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"healthband-insights/internal/models"
	"healthband-insights/internal/repository"

	"go.uber.org/zap"
)

// EntityHandler 世界实体存储接口（内存存储，进程级）
type EntityHandler struct {
	repo   *repository.MemoryEntitiesRepo
	nodeID string
	logger *zap.Logger
}

// NewEntityHandler 创建实体存储接口
func NewEntityHandler(repo *repository.MemoryEntitiesRepo, nodeID string, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{
		repo:   repo,
		nodeID: nodeID,
		logger: logger,
	}
}

// ListEntities GET /api/v1/world/entities?id=&label=
func (h *EntityHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	filter := repository.EntityFilter{
		ID:    r.URL.Query().Get("id"),
		Label: r.URL.Query().Get("label"),
	}
	entities := h.repo.List(filter)

	h.logger.Debug("ListEntities",
		zap.Int("count", len(entities)),
	)
	writeJSON(w, http.StatusOK, Ok(map[string]any{"entities": entities}))
}

// GetEntity GET /api/v1/world/entities/{id}
func (h *EntityHandler) GetEntity(w http.ResponseWriter, r *http.Request, id string) {
	entity, ok := h.repo.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, Fail(fmt.Sprintf("Entity %s not found", id)))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"entity": entity}))
}

// PushRequest 实体变更请求（批量 upsert）
type PushRequest struct {
	Changes []models.Entity `json:"changes"`
}

// PushResponse 实体变更响应
type PushResponse struct {
	Accepted bool   `json:"accepted"`
	Debug    string `json:"debug"`
}

// PushEntities POST /api/v1/world/entities
func (h *EntityHandler) PushEntities(w http.ResponseWriter, r *http.Request) {
	var req PushRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid JSON body"))
		return
	}

	accepted := h.repo.Push(req.Changes)
	h.logger.Info("Entities pushed",
		zap.Int("accepted", len(accepted)),
	)

	writeJSON(w, http.StatusOK, Ok(PushResponse{
		Accepted: true,
		Debug:    fmt.Sprintf("Updated %d entities: %v", len(accepted), accepted),
	}))
}

// ExpireEntity DELETE /api/v1/world/entities/{id}
func (h *EntityHandler) ExpireEntity(w http.ResponseWriter, r *http.Request, id string) {
	if !h.repo.Expire(id) {
		writeJSON(w, http.StatusNotFound, Fail(fmt.Sprintf("Entity %s not found", id)))
		return
	}
	h.logger.Info("Entity expired",
		zap.String("entity_id", id),
	)
	writeJSON(w, http.StatusOK, Ok(map[string]any{"expired": id}))
}

// GetLocalNode GET /api/v1/world/local-node
func (h *EntityHandler) GetLocalNode(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()
	entity := models.Entity{
		ID:    h.nodeID,
		Label: "Healthband Server Node",
		Device: &models.DeviceComponent{
			UniqueHardwareID: fmt.Sprintf("%s:%s:%s", runtime.GOOS, runtime.GOARCH, hostname),
			Labels: map[string]string{
				"node": "server",
				"role": "health-insights",
			},
			Node: &models.NodeDevice{
				Hostname: hostname,
				OS:       runtime.GOOS,
				Arch:     runtime.GOARCH,
				NumCPU:   runtime.NumCPU(),
			},
		},
		Priority: models.PriorityRoutine,
	}

	writeJSON(w, http.StatusOK, Ok(map[string]any{
		"entity":  entity,
		"node_id": h.nodeID,
	}))
}

// RunTaskResponse 任务下发响应
type RunTaskResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
}

// RunTask POST /api/v1/world/entities/{id}/run-task
// 仅排队并返回执行ID，不跟踪任务生命周期
func (h *EntityHandler) RunTask(w http.ResponseWriter, r *http.Request, entityID string) {
	taskID := fmt.Sprintf("task-%d-%s", time.Now().Unix(), entityID)
	h.logger.Info("Task queued",
		zap.String("task_id", taskID),
		zap.String("entity_id", entityID),
	)

	writeJSON(w, http.StatusOK, Ok(RunTaskResponse{
		ExecutionID: taskID,
		Status:      models.TaskStatusRunning,
	}))
}

// entityIDFromPath 从路径中截取实体ID（去掉前缀与可选的子资源段）
func entityIDFromPath(path, prefix string) (id string, sub string) {
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i], rest[i+1:]
	}
	return rest, ""
}
