package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"healthband-insights/internal/config"
	"healthband-insights/internal/models"
	"healthband-insights/internal/parser"
	"healthband-insights/internal/report"

	"go.uber.org/zap"
)

// InsightsService 离线分析流水线：
// 设备导出 CSV → 日汇总 + 运动场次 + 原始时序汇总 → 文本报告 + 日汇总 CSV
type InsightsService struct {
	config *config.Config
	logger *zap.Logger
}

// NewInsightsService 创建离线分析服务
func NewInsightsService(cfg *config.Config, logger *zap.Logger) *InsightsService {
	return &InsightsService{
		config: cfg,
		logger: logger,
	}
}

// Run 执行流水线，报告写入 out；有日汇总时同时写出日汇总 CSV
func (s *InsightsService) Run(out io.Writer) error {
	dataDir := s.config.Insights.DataDir
	if _, err := os.Stat(dataDir); err != nil {
		return fmt.Errorf("data folder not found: %s", dataDir)
	}

	// 各数据源文件允许缺失，缺失时对应部分为空
	summaries := s.loadSummaries(filepath.Join(dataDir, s.config.Insights.AggregatedCSV))
	sessions := s.loadSportSessions(filepath.Join(dataDir, s.config.Insights.SportCSV))
	fitness := s.loadFitnessSummary(filepath.Join(dataDir, s.config.Insights.FitnessCSV))

	report.Render(out, summaries, sessions, fitness)

	if len(summaries) > 0 {
		outPath := filepath.Join(dataDir, s.config.Insights.SummaryCSV)
		if err := s.writeSummaryCSV(outPath, summaries); err != nil {
			return err
		}
		s.logger.Info("Daily summary saved",
			zap.String("path", outPath),
			zap.Int("days", len(summaries)),
		)
	}
	return nil
}

func (s *InsightsService) loadSummaries(path string) []models.DailySummary {
	records, err := parser.LoadAggregated(path)
	if err != nil {
		s.logger.Warn("Failed to load aggregated data",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return parser.BuildDailySummary(records)
}

func (s *InsightsService) loadSportSessions(path string) []models.SportSession {
	rows, err := parser.LoadSportRecord(path)
	if err != nil {
		s.logger.Warn("Failed to load sport record",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return parser.ParseSportSessions(rows)
}

func (s *InsightsService) loadFitnessSummary(path string) models.FitnessSummary {
	records, err := parser.LoadFitness(path)
	if err != nil {
		s.logger.Warn("Failed to load fitness data",
			zap.String("path", path),
			zap.Error(err),
		)
		return models.FitnessSummary{}
	}
	return parser.SummarizeFitness(records)
}

func (s *InsightsService) writeSummaryCSV(path string, summaries []models.DailySummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary csv: %w", err)
	}
	defer f.Close()

	if err := parser.WriteDailySummaryCSV(f, summaries); err != nil {
		return fmt.Errorf("failed to write summary csv: %w", err)
	}
	return nil
}
