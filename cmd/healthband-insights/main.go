package main

import (
	"flag"
	"fmt"
	"os"

	"healthband-insights/internal/config"
	"healthband-insights/internal/service"

	"go.uber.org/zap"

	"healthband-insights/internal/common/logger"
)

func main() {
	dataDir := flag.String("data", "", "device export CSV directory (overrides DATA_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *dataDir != "" {
		cfg.Insights.DataDir = *dataDir
	}

	log, err := logger.NewLogger(cfg.Log.Level, "console", "healthband-insights")
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	insights := service.NewInsightsService(cfg, log)
	if err := insights.Run(os.Stdout); err != nil {
		log.Fatal("Failed to build health report",
			zap.Error(err),
		)
	}
}
