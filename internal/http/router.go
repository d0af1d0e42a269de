package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterHealthRoutes 注册健康分析路由
func (r *Router) RegisterHealthRoutes(h *AnalyzeHandler) {
	r.Handle("/api/v1/health/analyze", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Analyze(w, req)
	})

	r.Handle("/api/v1/health/live", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Live(w, req)
	})
}

// RegisterDeviceRoutes 注册设备查询路由
func (r *Router) RegisterDeviceRoutes(h *DeviceHandler) {
	// devices/{device_id}/latest 与 devices/{device_id}/assessments
	r.Handle("/api/v1/health/devices/", func(w http.ResponseWriter, req *http.Request) {
		id, sub := entityIDFromPath(req.URL.Path, "/api/v1/health/devices/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case sub == "latest" && req.Method == http.MethodGet:
			h.LatestRisk(w, req, id)
		case sub == "assessments" && req.Method == http.MethodGet:
			h.ListAssessments(w, req, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// RegisterEntityRoutes 注册实体存储路由
func (r *Router) RegisterEntityRoutes(e *EntityHandler) {
	r.Handle("/api/v1/world/entities", func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			e.ListEntities(w, req)
		case http.MethodPost:
			e.PushEntities(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// entities/{id} 与 entities/{id}/run-task
	r.Handle("/api/v1/world/entities/", func(w http.ResponseWriter, req *http.Request) {
		id, sub := entityIDFromPath(req.URL.Path, "/api/v1/world/entities/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch {
		case sub == "" && req.Method == http.MethodGet:
			e.GetEntity(w, req, id)
		case sub == "" && req.Method == http.MethodDelete:
			e.ExpireEntity(w, req, id)
		case sub == "run-task" && req.Method == http.MethodPost:
			e.RunTask(w, req, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	r.Handle("/api/v1/world/local-node", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		e.GetLocalNode(w, req)
	})
}
