package parser

import (
	"strconv"

	"healthband-insights/internal/models"
)

// 运动记录 Value 字段的提取正则
var (
	sportCaloriesRe = EncodedKeyPattern("calories")
	sportTotalCalRe = EncodedKeyPattern("total+AF8-cal")
	sportDurationRe = EncodedKeyPattern("duration")
	sportAvgHRRe    = EncodedKeyPattern("avg+AF8-hrm")
	sportMaxHRRe    = EncodedKeyPattern("max+AF8-hrm")
	sportVitalityRe = EncodedKeyPattern("vitality")
)

// LoadSportRecord 读取运动记录 CSV（Key,Time,Category,Value...,UpdateTime）
func LoadSportRecord(path string) ([]map[string]string, error) {
	return ReadValueInMiddleCSV(path, 3, 1)
}

// ParseSportSessions 解析运动记录为场次列表
func ParseSportSessions(rows []map[string]string) []models.SportSession {
	var sessions []models.SportSession
	for _, row := range rows {
		v := row["Value"]

		var dateStr string
		if ts, err := strconv.ParseInt(row["Time"], 10, 64); err == nil {
			dateStr = MinuteFromUnix(ts)
		}

		calories := MatchInt(sportCaloriesRe, v)
		if calories == 0 {
			calories = MatchInt(sportTotalCalRe, v)
		}

		sessions = append(sessions, models.SportSession{
			Date:        dateStr,
			Calories:    calories,
			DurationSec: MatchInt(sportDurationRe, v),
			AvgHR:       MatchInt(sportAvgHRRe, v),
			MaxHR:       MatchInt(sportMaxHRRe, v),
			Vitality:    MatchInt(sportVitalityRe, v),
		})
	}
	return sessions
}
