package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"healthband-insights/internal/config"
	"healthband-insights/internal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrSnapshotNotFound 设备无缓存快照
var ErrSnapshotNotFound = errors.New("risk snapshot not found")

// CacheManager Redis 缓存管理器（设备最新风险快照）
type CacheManager struct {
	config      *config.Config
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewCacheManager 创建缓存管理器
func NewCacheManager(
	cfg *config.Config,
	redisClient *redis.Client,
	logger *zap.Logger,
) *CacheManager {
	return &CacheManager{
		config:      cfg,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (c *CacheManager) riskKey(deviceID string) string {
	return fmt.Sprintf("%s%s%s",
		c.config.Cache.RiskKeyPrefix,
		deviceID,
		c.config.Cache.RiskSuffix,
	)
}

// SetLatestRisk 写入设备最新风险快照（带 TTL）
func (c *CacheManager) SetLatestRisk(ctx context.Context, deviceID string, snapshot *models.RiskSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal risk snapshot: %w", err)
	}

	key := c.riskKey(deviceID)
	err = c.redisClient.Set(
		ctx,
		key,
		jsonData,
		time.Duration(c.config.Cache.RiskTTL)*time.Second,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to set risk cache: %w", err)
	}

	c.logger.Debug("Updated risk cache",
		zap.String("device_id", deviceID),
		zap.String("key", key),
		zap.String("risk_level", string(snapshot.Level)),
	)
	return nil
}

// GetLatestRisk 读取设备最新风险快照
func (c *CacheManager) GetLatestRisk(ctx context.Context, deviceID string) (*models.RiskSnapshot, error) {
	key := c.riskKey(deviceID)

	val, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w for device: %s", ErrSnapshotNotFound, deviceID)
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var snapshot models.RiskSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk snapshot: %w", err)
	}
	return &snapshot, nil
}
