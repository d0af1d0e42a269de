package parser

import (
	"encoding/csv"
	"fmt"
	"os"

	"healthband-insights/internal/models"
)

// 原始时序 Value 字段的提取正则
var (
	fitnessBpmRe   = EncodedKeyPattern("bpm")
	fitnessStepsRe = EncodedKeyPattern("steps")
)

// FitnessRecord 原始时序 CSV 的一行
type FitnessRecord struct {
	Key   string // 已还原下划线
	Value string
}

// LoadFitness 读取原始时序 CSV（标准逗号分隔，坏行跳过）
func LoadFitness(path string) ([]FitnessRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	keyIdx, valueIdx := -1, -1
	for i, name := range header {
		switch name {
		case "Key":
			keyIdx = i
		case "Value":
			valueIdx = i
		}
	}
	if keyIdx < 0 || valueIdx < 0 {
		return nil, fmt.Errorf("unexpected fitness csv header: %v", header)
	}

	var records []FitnessRecord
	for _, row := range rows[1:] {
		if len(row) <= keyIdx || len(row) <= valueIdx {
			continue
		}
		records = append(records, FitnessRecord{
			Key:   NormalizeKey(row[keyIdx]),
			Value: row[valueIdx],
		})
	}
	return records, nil
}

// SummarizeFitness 汇总原始时序数据：心率采样统计与原始步数合计
func SummarizeFitness(records []FitnessRecord) models.FitnessSummary {
	var summary models.FitnessSummary

	var bpms []int
	for _, rec := range records {
		switch rec.Key {
		case "heart_rate":
			summary.HeartRateRecords++
			if bpm := MatchInt(fitnessBpmRe, rec.Value); bpm > 0 {
				bpms = append(bpms, bpm)
			}
		case "steps":
			summary.StepsTotalRaw += MatchInt(fitnessStepsRe, rec.Value)
		}
	}

	if len(bpms) > 0 {
		sum := 0
		summary.HRMin = bpms[0]
		summary.HRMax = bpms[0]
		for _, bpm := range bpms {
			sum += bpm
			if bpm < summary.HRMin {
				summary.HRMin = bpm
			}
			if bpm > summary.HRMax {
				summary.HRMax = bpm
			}
		}
		summary.HRAvg = float64(sum) / float64(len(bpms))
	}

	return summary
}
