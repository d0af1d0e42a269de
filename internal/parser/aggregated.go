package parser

import (
	"sort"
	"strconv"

	"healthband-insights/internal/models"
)

// AggregatedRecord 聚合日报 CSV 的一行（Tag,Key,Time,Value,UpdateTime）
type AggregatedRecord struct {
	Tag   string
	Key   string // 已还原下划线
	Time  int64
	Value string
	Date  string // UTC 日期，由 Time 推出
}

const dailyReportTag = "daily+AF8-report"

// 聚合日报 Value 字段的提取正则
var (
	stepsCaloriesRe = EncodedKeyPattern("calories")
	stepsDistanceRe = EncodedKeyPattern("distance")
	stepsCountRe    = EncodedKeyPattern("steps")
	hrAvgRe         = EncodedKeyPattern("avg+AF8-hr")
	hrMinRe         = EncodedKeyPattern("min+AF8-hr")
	hrMaxRe         = EncodedKeyPattern("max+AF8-hr")
	hrRestingRe     = EncodedKeyPattern("avg+AF8-rhr")
	sleepTotalRe    = EncodedKeyPattern("total+AF8-duration")
	sleepScoreRe    = EncodedKeyPattern("sleep+AF8-score")
	sleepDeepRe     = EncodedKeyPattern("sleep+AF8-deep+AF8-duration")
	sleepLightRe    = EncodedKeyPattern("sleep+AF8-light+AF8-duration")
	spo2AvgRe       = EncodedKeyPattern("avg+AF8-spo2")
)

// LoadAggregated 读取聚合日报 CSV（Tag,Key,Time,Value...,UpdateTime），
// Time 非数字的行丢弃
func LoadAggregated(path string) ([]AggregatedRecord, error) {
	rows, err := ReadValueInMiddleCSV(path, 3, 1)
	if err != nil {
		return nil, err
	}

	var records []AggregatedRecord
	for _, row := range rows {
		ts, err := strconv.ParseInt(row["Time"], 10, 64)
		if err != nil {
			continue
		}
		records = append(records, AggregatedRecord{
			Tag:   row["Tag"],
			Key:   NormalizeKey(row["Key"]),
			Time:  ts,
			Value: row["Value"],
			Date:  DayFromUnix(ts),
		})
	}
	return records, nil
}

// BuildDailySummary 从聚合日报记录构建按日汇总，缺失的指标一律为 0
func BuildDailySummary(records []AggregatedRecord) []models.DailySummary {
	// 仅保留日报行，按日期分组（每个指标取当日首条）
	byDay := make(map[string]map[string]string)
	for _, rec := range records {
		if rec.Tag != dailyReportTag {
			continue
		}
		day, ok := byDay[rec.Date]
		if !ok {
			day = make(map[string]string)
			byDay[rec.Date] = day
		}
		if _, seen := day[rec.Key]; !seen {
			day[rec.Key] = rec.Value
		}
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	summaries := make([]models.DailySummary, 0, len(days))
	for _, day := range days {
		values := byDay[day]
		s := models.DailySummary{Date: day}

		if v, ok := values["steps"]; ok {
			s.Steps = MatchInt(stepsCountRe, v)
			s.DistanceM = MatchInt(stepsDistanceRe, v)
			s.StepsCal = MatchInt(stepsCaloriesRe, v)
		}
		if v, ok := values["calories"]; ok {
			s.Calories = ExtractFirstNumber(v)
		}
		if v, ok := values["valid_stand"]; ok {
			s.StandCount = ExtractFirstNumber(v)
		}
		if v, ok := values["intensity"]; ok {
			s.IntensityMin = ExtractFirstNumber(v)
		}
		if v, ok := values["heart_rate"]; ok {
			s.HRAvg = MatchInt(hrAvgRe, v)
			s.HRMin = MatchInt(hrMinRe, v)
			s.HRMax = MatchInt(hrMaxRe, v)
			s.HRResting = MatchInt(hrRestingRe, v)
		}
		if v, ok := values["sleep"]; ok {
			if m := sleepTotalRe.FindStringSubmatch(v); m != nil {
				s.SleepTotalMin, _ = strconv.Atoi(m[1])
			} else {
				// 旧格式无 total_duration 键，退回取首个数字
				s.SleepTotalMin = ExtractFirstNumber(v)
			}
			s.SleepScore = MatchInt(sleepScoreRe, v)
			s.SleepDeepMin = MatchInt(sleepDeepRe, v)
			s.SleepLightMin = MatchInt(sleepLightRe, v)
		}
		if v, ok := values["spo2"]; ok {
			s.SpO2Avg = MatchInt(spo2AvgRe, v)
		}

		summaries = append(summaries, s)
	}
	return summaries
}
