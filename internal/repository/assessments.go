package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"healthband-insights/internal/models"

	"go.uber.org/zap"
)

// AssessmentsRepository 评估结果仓库（daily_vitals_summary / risk_assessments 表）
type AssessmentsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAssessmentsRepository 创建评估结果仓库
func NewAssessmentsRepository(db *sql.DB, logger *zap.Logger) *AssessmentsRepository {
	return &AssessmentsRepository{
		db:     db,
		logger: logger,
	}
}

// RiskAssessmentRecord 风险评估记录（对应 risk_assessments 表）
type RiskAssessmentRecord struct {
	AssessmentID   string             `json:"assessment_id" db:"assessment_id"`
	DeviceID       string             `json:"device_id" db:"device_id"`
	Date           string             `json:"date" db:"date"`
	Level          models.RiskLevel   `json:"risk_level" db:"risk_level"`
	Recommendation string             `json:"recommendation" db:"recommendation"`
	Vitals         models.DailyVitals `json:"vitals" db:"vitals"` // JSONB
	CreatedAt      time.Time          `json:"created_at" db:"created_at"`
}

// UpsertDailySummary 写入/更新单日汇总（按 device_id + date 去重）
func (r *AssessmentsRepository) UpsertDailySummary(ctx context.Context, deviceID string, s models.DailySummary) error {
	if deviceID == "" {
		return fmt.Errorf("device_id is required")
	}

	query := `
		INSERT INTO daily_vitals_summary (
			device_id, date, steps, distance_m, calories, stand_count, intensity_min,
			hr_avg, hr_min, hr_max, hr_resting,
			sleep_total_min, sleep_score, spo2_avg, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (device_id, date)
		DO UPDATE SET
			steps = EXCLUDED.steps,
			distance_m = EXCLUDED.distance_m,
			calories = EXCLUDED.calories,
			stand_count = EXCLUDED.stand_count,
			intensity_min = EXCLUDED.intensity_min,
			hr_avg = EXCLUDED.hr_avg,
			hr_min = EXCLUDED.hr_min,
			hr_max = EXCLUDED.hr_max,
			hr_resting = EXCLUDED.hr_resting,
			sleep_total_min = EXCLUDED.sleep_total_min,
			sleep_score = EXCLUDED.sleep_score,
			spo2_avg = EXCLUDED.spo2_avg,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		deviceID, s.Date, s.Steps, s.DistanceM, s.Calories, s.StandCount, s.IntensityMin,
		s.HRAvg, s.HRMin, s.HRMax, s.HRResting,
		s.SleepTotalMin, s.SleepScore, s.SpO2Avg,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily summary: %w", err)
	}
	return nil
}

// CreateAssessment 写入一条风险评估记录
func (r *AssessmentsRepository) CreateAssessment(ctx context.Context, rec *RiskAssessmentRecord) error {
	if rec.AssessmentID == "" {
		return fmt.Errorf("assessment_id is required")
	}
	if rec.DeviceID == "" {
		return fmt.Errorf("device_id is required")
	}

	vitalsJSON, err := json.Marshal(rec.Vitals)
	if err != nil {
		return fmt.Errorf("failed to marshal vitals: %w", err)
	}

	query := `
		INSERT INTO risk_assessments (
			assessment_id, device_id, date, risk_level, recommendation, vitals, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err = r.db.ExecContext(ctx, query,
		rec.AssessmentID, rec.DeviceID, rec.Date,
		string(rec.Level), rec.Recommendation, vitalsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create risk assessment: %w", err)
	}

	r.logger.Debug("Risk assessment created",
		zap.String("assessment_id", rec.AssessmentID),
		zap.String("device_id", rec.DeviceID),
		zap.String("risk_level", string(rec.Level)),
	)
	return nil
}

// ListAssessmentsByDevice 查询某设备最近的评估记录（按创建时间倒序）
func (r *AssessmentsRepository) ListAssessmentsByDevice(ctx context.Context, deviceID string, limit int) ([]RiskAssessmentRecord, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("device_id is required")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT assessment_id, device_id, date, risk_level, recommendation, vitals, created_at
		FROM risk_assessments
		WHERE device_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}
	defer rows.Close()

	var records []RiskAssessmentRecord
	for rows.Next() {
		var rec RiskAssessmentRecord
		var level string
		var vitalsJSON []byte
		if err := rows.Scan(
			&rec.AssessmentID, &rec.DeviceID, &rec.Date,
			&level, &rec.Recommendation, &vitalsJSON, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan risk assessment: %w", err)
		}
		rec.Level = models.RiskLevel(level)
		if len(vitalsJSON) > 0 {
			if err := json.Unmarshal(vitalsJSON, &rec.Vitals); err != nil {
				return nil, fmt.Errorf("failed to unmarshal vitals: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate risk assessments: %w", err)
	}
	return records, nil
}
