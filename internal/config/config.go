package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MQTTConfig MQTT配置
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// Config 服务配置
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	MQTT     MQTTConfig

	HTTP struct {
		Addr string // 监听地址，如 ":8080"
	}

	// CSV 离线处理配置
	Insights struct {
		DataDir       string // 设备导出 CSV 目录
		AggregatedCSV string // 聚合日报文件名
		SportCSV      string // 运动记录文件名
		FitnessCSV    string // 原始时序文件名
		SummaryCSV    string // 日汇总输出文件名
		DatasetCSV    string // 风险数据集输出文件名
	}

	// 设备实时接入配置
	Ingest struct {
		Enabled bool
		Topic   string // 订阅主题，如 "healthband/+/daily"
	}

	// Redis 缓存配置
	Cache struct {
		RiskKeyPrefix    string // 风险快照键前缀，如 "health-risk:device:"
		RiskSuffix       string // 风险快照键后缀，如 ":latest"
		RiskTTL          int    // 快照 TTL（秒）
		AssessmentStream string // 评估结果 Stream 名称
	}

	Server struct {
		DBEnabled bool   // 是否持久化到 PostgreSQL
		NodeID    string // 本地节点ID（local-node 接口返回）
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置（环境变量 + 默认值）
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "healthband")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 10)
	cfg.Database.MaxIdle = getEnvInt("DB_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "healthband-server")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.QoS = 1

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Insights.DataDir = getEnv("DATA_DIR", "data")
	cfg.Insights.AggregatedCSV = "hlth_center_aggregated_fitness_data.csv"
	cfg.Insights.SportCSV = "hlth_center_sport_record.csv"
	cfg.Insights.FitnessCSV = "hlth_center_fitness_data.csv"
	cfg.Insights.SummaryCSV = getEnv("SUMMARY_CSV", "health_daily_summary.csv")
	cfg.Insights.DatasetCSV = getEnv("DATASET_CSV", "health_risk_dataset.csv")

	cfg.Ingest.Enabled = getEnv("INGEST_ENABLED", "false") == "true"
	cfg.Ingest.Topic = getEnv("INGEST_TOPIC", "healthband/+/daily")

	cfg.Cache.RiskKeyPrefix = getEnv("CACHE_RISK_PREFIX", "health-risk:device:")
	cfg.Cache.RiskSuffix = ":latest"
	cfg.Cache.RiskTTL = getEnvInt("CACHE_RISK_TTL", 300)
	cfg.Cache.AssessmentStream = getEnv("ASSESSMENT_STREAM", "health:assessments")

	cfg.Server.DBEnabled = getEnv("DB_ENABLED", "false") == "true"
	cfg.Server.NodeID = getEnv("NODE_ID", "healthband-server-local")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
