package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"healthband-insights/internal/config"
	"healthband-insights/internal/dataset"
	"healthband-insights/internal/evaluator"
	"healthband-insights/internal/parser"

	"go.uber.org/zap"

	"healthband-insights/internal/common/logger"
)

func main() {
	dataDir := flag.String("data", "", "directory holding the daily summary CSV (overrides DATA_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *dataDir != "" {
		cfg.Insights.DataDir = *dataDir
	}

	log, err := logger.NewLogger(cfg.Log.Level, "console", "healthband-dataset")
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	summaryPath := filepath.Join(cfg.Insights.DataDir, cfg.Insights.SummaryCSV)
	summaries, err := parser.LoadDailySummaryCSV(summaryPath)
	if err != nil {
		log.Fatal("No daily summary found, run healthband-insights first",
			zap.String("path", summaryPath),
			zap.Error(err),
		)
	}

	builder := dataset.NewBuilder(evaluator.NewRiskEvaluator(log), log)
	examples := builder.Build(summaries)

	outPath := filepath.Join(cfg.Insights.DataDir, cfg.Insights.DatasetCSV)
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal("Failed to create dataset file",
			zap.String("path", outPath),
			zap.Error(err),
		)
	}
	defer f.Close()

	if err := dataset.WriteCSV(f, examples); err != nil {
		log.Fatal("Failed to write dataset",
			zap.String("path", outPath),
			zap.Error(err),
		)
	}

	log.Info("Risk dataset written",
		zap.String("path", outPath),
		zap.Int("examples", len(examples)),
	)
}
