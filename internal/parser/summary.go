package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"healthband-insights/internal/models"
)

// 日汇总 CSV 列顺序（health_daily_summary.csv）
var summaryHeader = []string{
	"Date", "Steps", "Distance_m", "Steps_cal", "Calories",
	"Stand_count", "Intensity_min",
	"HR_avg", "HR_min", "HR_max", "HR_resting",
	"Sleep_total_min", "Sleep_score", "Sleep_deep_min", "Sleep_light_min",
	"SpO2_avg",
}

// WriteDailySummaryCSV 写出日汇总 CSV
func WriteDailySummaryCSV(w io.Writer, summaries []models.DailySummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range summaries {
		record := []string{
			s.Date,
			strconv.Itoa(s.Steps),
			strconv.Itoa(s.DistanceM),
			strconv.Itoa(s.StepsCal),
			strconv.Itoa(s.Calories),
			strconv.Itoa(s.StandCount),
			strconv.Itoa(s.IntensityMin),
			strconv.Itoa(s.HRAvg),
			strconv.Itoa(s.HRMin),
			strconv.Itoa(s.HRMax),
			strconv.Itoa(s.HRResting),
			strconv.Itoa(s.SleepTotalMin),
			strconv.Itoa(s.SleepScore),
			strconv.Itoa(s.SleepDeepMin),
			strconv.Itoa(s.SleepLightMin),
			strconv.Itoa(s.SpO2Avg),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadDailySummaryCSV 读取日汇总 CSV，缺列或非数字按 0 处理
func LoadDailySummaryCSV(path string) ([]models.DailySummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[name] = i
	}

	field := func(row []string, name string) int {
		i, ok := colIdx[name]
		if !ok || i >= len(row) {
			return 0
		}
		n, err := strconv.Atoi(row[i])
		if err != nil {
			return 0
		}
		return n
	}

	summaries := make([]models.DailySummary, 0, len(rows)-1)
	for _, row := range rows[1:] {
		dateIdx, ok := colIdx["Date"]
		if !ok || dateIdx >= len(row) || row[dateIdx] == "" {
			continue
		}
		summaries = append(summaries, models.DailySummary{
			Date:          row[dateIdx],
			Steps:         field(row, "Steps"),
			DistanceM:     field(row, "Distance_m"),
			StepsCal:      field(row, "Steps_cal"),
			Calories:      field(row, "Calories"),
			StandCount:    field(row, "Stand_count"),
			IntensityMin:  field(row, "Intensity_min"),
			HRAvg:         field(row, "HR_avg"),
			HRMin:         field(row, "HR_min"),
			HRMax:         field(row, "HR_max"),
			HRResting:     field(row, "HR_resting"),
			SleepTotalMin: field(row, "Sleep_total_min"),
			SleepScore:    field(row, "Sleep_score"),
			SleepDeepMin:  field(row, "Sleep_deep_min"),
			SleepLightMin: field(row, "Sleep_light_min"),
			SpO2Avg:       field(row, "SpO2_avg"),
		})
	}
	return summaries, nil
}
