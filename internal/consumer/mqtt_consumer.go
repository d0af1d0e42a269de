package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"healthband-insights/internal/config"
	"healthband-insights/internal/evaluator"
	"healthband-insights/internal/models"
	"healthband-insights/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	mqttcommon "healthband-insights/internal/common/mqtt"
	rediscommon "healthband-insights/internal/common/redis"
)

// DailyVitalsMessage 设备上报的单日体征消息
type DailyVitalsMessage struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	models.DailyVitals
}

// MQTTConsumer MQTT消息消费者：
// 订阅设备日报主题，评估风险后写入缓存、发布到 Stream、可选持久化
type MQTTConsumer struct {
	config          *config.Config
	mqttClient      *mqttcommon.Client
	redisClient     *redis.Client
	cacheManager    *CacheManager
	riskEvaluator   *evaluator.RiskEvaluator
	assessmentsRepo *repository.AssessmentsRepository // 可为 nil（DB 未启用）
	logger          *zap.Logger
}

// NewMQTTConsumer 创建MQTT消费者
func NewMQTTConsumer(
	cfg *config.Config,
	mqttClient *mqttcommon.Client,
	redisClient *redis.Client,
	cacheManager *CacheManager,
	riskEvaluator *evaluator.RiskEvaluator,
	assessmentsRepo *repository.AssessmentsRepository,
	logger *zap.Logger,
) *MQTTConsumer {
	return &MQTTConsumer{
		config:          cfg,
		mqttClient:      mqttClient,
		redisClient:     redisClient,
		cacheManager:    cacheManager,
		riskEvaluator:   riskEvaluator,
		assessmentsRepo: assessmentsRepo,
		logger:          logger,
	}
}

// Start 启动消费者
func (c *MQTTConsumer) Start(ctx context.Context) error {
	handler := func(topic string, payload []byte) error {
		return c.handleMessage(ctx, topic, payload)
	}
	if err := c.mqttClient.Subscribe(c.config.Ingest.Topic, c.config.MQTT.QoS, handler); err != nil {
		return fmt.Errorf("failed to subscribe to ingest topic: %w", err)
	}

	c.logger.Info("MQTT consumer started",
		zap.String("topic", c.config.Ingest.Topic),
	)

	<-ctx.Done()
	return nil
}

// Stop 停止消费者
func (c *MQTTConsumer) Stop(ctx context.Context) error {
	if err := c.mqttClient.Unsubscribe(c.config.Ingest.Topic); err != nil {
		c.logger.Error("Failed to unsubscribe", zap.Error(err))
	}

	c.logger.Info("MQTT consumer stopped")
	return nil
}

// handleMessage 处理MQTT消息
// 主题格式: healthband/{device_id}/daily
func (c *MQTTConsumer) handleMessage(ctx context.Context, topic string, payload []byte) error {
	c.logger.Debug("Received MQTT message",
		zap.String("topic", topic),
		zap.Int("payload_size", len(payload)),
	)

	deviceID, err := deviceIDFromTopic(topic)
	if err != nil {
		return err
	}

	var msg DailyVitalsMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal daily vitals: %w", err)
	}
	if msg.Date == "" {
		msg.Date = time.Now().UTC().Format("2006-01-02")
	}

	assessment := c.riskEvaluator.Evaluate(msg.DailyVitals)

	snapshot := &models.RiskSnapshot{
		DeviceID:       deviceID,
		Date:           msg.Date,
		Level:          assessment.Level,
		Recommendation: assessment.Recommendation,
		Vitals:         msg.DailyVitals,
		Timestamp:      time.Now().Unix(),
	}

	// 1. 更新设备最新快照缓存；等级较上一快照升高时告警
	if prev, err := c.cacheManager.GetLatestRisk(ctx, deviceID); err == nil {
		if assessment.Level.Rank() > prev.Level.Rank() {
			c.logger.Warn("Risk level escalated",
				zap.String("device_id", deviceID),
				zap.String("previous_level", string(prev.Level)),
				zap.String("risk_level", string(assessment.Level)),
			)
		}
	}
	if err := c.cacheManager.SetLatestRisk(ctx, deviceID, snapshot); err != nil {
		c.logger.Error("Failed to update risk cache",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
	}

	// 2. 发布评估结果到 Stream（下游消费）
	if _, err := rediscommon.PublishJSONToStream(ctx, c.redisClient, c.config.Cache.AssessmentStream, snapshot); err != nil {
		c.logger.Error("Failed to publish assessment to stream",
			zap.String("device_id", deviceID),
			zap.String("stream", c.config.Cache.AssessmentStream),
			zap.Error(err),
		)
	}

	// 3. 可选持久化：日汇总 upsert + 评估记录（失败不中断摄入）
	if c.assessmentsRepo != nil {
		if err := c.assessmentsRepo.UpsertDailySummary(ctx, deviceID, msg.DailyVitals.Summary(msg.Date)); err != nil {
			c.logger.Error("Failed to upsert daily summary",
				zap.String("device_id", deviceID),
				zap.Error(err),
			)
		}

		rec := &repository.RiskAssessmentRecord{
			AssessmentID:   uuid.NewString(),
			DeviceID:       deviceID,
			Date:           msg.Date,
			Level:          assessment.Level,
			Recommendation: assessment.Recommendation,
			Vitals:         msg.DailyVitals,
		}
		if err := c.assessmentsRepo.CreateAssessment(ctx, rec); err != nil {
			c.logger.Error("Failed to persist assessment",
				zap.String("device_id", deviceID),
				zap.Error(err),
			)
		}
	}

	c.logger.Info("Daily vitals assessed",
		zap.String("device_id", deviceID),
		zap.String("date", msg.Date),
		zap.String("risk_level", string(assessment.Level)),
	)
	return nil
}

func deviceIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[1] == "" {
		return "", fmt.Errorf("unexpected topic format: %s", topic)
	}
	return parts[1], nil
}
