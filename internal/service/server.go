package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"healthband-insights/internal/config"
	"healthband-insights/internal/consumer"
	"healthband-insights/internal/evaluator"
	httpapi "healthband-insights/internal/http"
	"healthband-insights/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"healthband-insights/internal/common/database"
	mqttcommon "healthband-insights/internal/common/mqtt"
	rediscommon "healthband-insights/internal/common/redis"
)

// ServerService 健康分析服务：
// HTTP 分析接口 + 实体存储接口，按配置挂接 MQTT 摄入、Redis 缓存与 PostgreSQL 持久化
type ServerService struct {
	config        *config.Config
	logger        *zap.Logger
	db            *sql.DB
	redisClient   *redis.Client
	mqttClient    *mqttcommon.Client
	riskEvaluator *evaluator.RiskEvaluator
	entitiesRepo  *repository.MemoryEntitiesRepo
	mqttConsumer  *consumer.MQTTConsumer
	httpServer    *http.Server
}

// NewServerService 创建健康分析服务
func NewServerService(cfg *config.Config, logger *zap.Logger) (*ServerService, error) {
	s := &ServerService{
		config:        cfg,
		logger:        logger,
		riskEvaluator: evaluator.NewRiskEvaluator(logger),
		entitiesRepo:  repository.NewMemoryEntitiesRepo(),
	}

	// 可选：PostgreSQL 持久化
	var assessmentsRepo *repository.AssessmentsRepository
	if cfg.Server.DBEnabled {
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = db
		assessmentsRepo = repository.NewAssessmentsRepository(db, logger)
		logger.Info("DB enabled for healthband-server")
	}

	// 可选：MQTT 摄入（依赖 Redis 缓存与 Stream）
	var cacheManager *consumer.CacheManager
	if cfg.Ingest.Enabled {
		redisClient := rediscommon.NewRedisClient(&cfg.Redis)
		if err := rediscommon.Ping(context.Background(), redisClient); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.redisClient = redisClient

		mqttClient, err := mqttcommon.NewClient(&cfg.MQTT, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mqtt broker: %w", err)
		}
		s.mqttClient = mqttClient

		cacheManager = consumer.NewCacheManager(cfg, redisClient, logger)
		s.mqttConsumer = consumer.NewMQTTConsumer(
			cfg,
			mqttClient,
			redisClient,
			cacheManager,
			s.riskEvaluator,
			assessmentsRepo,
			logger,
		)
	}

	// HTTP 路由
	analyzeHandler := httpapi.NewAnalyzeHandler(s.riskEvaluator, logger)
	deviceHandler := httpapi.NewDeviceHandler(cacheManager, assessmentsRepo, logger)
	entityHandler := httpapi.NewEntityHandler(s.entitiesRepo, cfg.Server.NodeID, logger)

	router := httpapi.NewRouter(logger)
	router.RegisterHealthRoutes(analyzeHandler)
	router.RegisterDeviceRoutes(deviceHandler)
	router.RegisterEntityRoutes(entityHandler)

	s.httpServer = &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	return s, nil
}

// Start 启动服务（阻塞直到上下文取消或出错）
func (s *ServerService) Start(ctx context.Context) error {
	errChan := make(chan error, 2)

	if s.mqttConsumer != nil {
		go func() {
			if err := s.mqttConsumer.Start(ctx); err != nil {
				errChan <- fmt.Errorf("mqtt consumer: %w", err)
			}
		}()
	}

	go func() {
		s.logger.Info("HTTP server listening",
			zap.String("addr", s.config.HTTP.Addr),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

// Stop 停止服务并释放资源
func (s *ServerService) Stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	if s.mqttConsumer != nil {
		_ = s.mqttConsumer.Stop(shutdownCtx)
	}
	if s.mqttClient != nil {
		s.mqttClient.Disconnect()
	}
	if s.redisClient != nil {
		_ = rediscommon.Close(s.redisClient)
	}
	if s.db != nil {
		_ = database.Close(s.db)
	}

	s.logger.Info("Server service stopped")
}
