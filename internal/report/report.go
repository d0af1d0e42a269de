package report

import (
	"fmt"
	"io"
	"strings"

	"healthband-insights/internal/models"
)

const lineWidth = 70

// Render 输出整合健康报告（日汇总表、累计/均值、心率、睡眠、血氧、运动场次、原始时序）
func Render(w io.Writer, summaries []models.DailySummary, sessions []models.SportSession, fitness models.FitnessSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
	fmt.Fprintln(w, "  HEALTHBAND - HEALTH INSIGHTS")
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))

	empty := fitness.HeartRateRecords == 0 && fitness.StepsTotalRaw == 0
	if len(summaries) == 0 && len(sessions) == 0 && empty {
		fmt.Fprintln(w, "No data found. Place CSVs in the data folder.")
		return
	}

	if len(summaries) > 0 {
		renderDailyTable(w, summaries)
		renderTotals(w, summaries)
		renderHeartRate(w, summaries)
		renderSleep(w, summaries)
		renderSpO2(w, summaries)
	}

	if len(sessions) > 0 {
		renderSportSessions(w, sessions)
	}

	if !empty {
		renderFitness(w, fitness)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))
}

func renderDailyTable(w io.Writer, summaries []models.DailySummary) {
	section(w, "DAILY SUMMARY (aggregated)")
	fmt.Fprintf(w, "%-12s %8s %10s %7s %13s\n", "Date", "Steps", "Cal (day)", "Stands", "Active (min)")
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12s %8d %10d %7d %13d\n", s.Date, s.Steps, s.Calories, s.StandCount, s.IntensityMin)
	}
}

func renderTotals(w io.Writer, summaries []models.DailySummary) {
	section(w, "TOTALS & AVERAGES")
	n := len(summaries)
	var steps, calories, stands, intensity int
	for _, s := range summaries {
		steps += s.Steps
		calories += s.Calories
		stands += s.StandCount
		intensity += s.IntensityMin
	}
	fmt.Fprintf(w, "   Days with data:     %d\n", n)
	fmt.Fprintf(w, "   Total steps:        %d\n", steps)
	fmt.Fprintf(w, "   Total calories:     %d kcal\n", calories)
	fmt.Fprintf(w, "   Avg steps/day:      %.0f\n", float64(steps)/float64(n))
	fmt.Fprintf(w, "   Avg calories/day:   %.0f\n", float64(calories)/float64(n))
	fmt.Fprintf(w, "   Total stand breaks: %d\n", stands)
	fmt.Fprintf(w, "   Total active min:   %d\n", intensity)
}

func renderHeartRate(w io.Writer, summaries []models.DailySummary) {
	// 仅统计有心率读数的天
	var days []models.DailySummary
	for _, s := range summaries {
		if s.HRAvg > 0 {
			days = append(days, s)
		}
	}
	if len(days) == 0 {
		return
	}

	sum := 0
	restingMin, restingMax := days[0].HRResting, days[0].HRResting
	peak := 0
	for _, s := range days {
		sum += s.HRAvg
		if s.HRResting < restingMin {
			restingMin = s.HRResting
		}
		if s.HRResting > restingMax {
			restingMax = s.HRResting
		}
		if s.HRMax > peak {
			peak = s.HRMax
		}
	}

	section(w, "HEART RATE (daily report)")
	fmt.Fprintf(w, "   Avg HR (across days): %.0f bpm\n", float64(sum)/float64(len(days)))
	fmt.Fprintf(w, "   Resting HR range:     %d-%d bpm\n", restingMin, restingMax)
	fmt.Fprintf(w, "   Peak HR (daily max):  %d bpm\n", peak)
}

func renderSleep(w io.Writer, summaries []models.DailySummary) {
	var days []models.DailySummary
	for _, s := range summaries {
		if s.SleepTotalMin > 0 {
			days = append(days, s)
		}
	}
	if len(days) == 0 {
		return
	}

	var totalMin, totalScore, totalDeep int
	hasDeep := false
	for _, s := range days {
		totalMin += s.SleepTotalMin
		totalScore += s.SleepScore
		totalDeep += s.SleepDeepMin
		if s.SleepDeepMin > 0 {
			hasDeep = true
		}
	}
	avgMin := float64(totalMin) / float64(len(days))

	section(w, "SLEEP (when recorded)")
	fmt.Fprintf(w, "   Nights recorded:   %d\n", len(days))
	fmt.Fprintf(w, "   Avg sleep:         %.0f min (%.1f h)\n", avgMin, avgMin/60)
	fmt.Fprintf(w, "   Avg score:         %.0f/100\n", float64(totalScore)/float64(len(days)))
	if hasDeep {
		fmt.Fprintf(w, "   Avg deep sleep:    %.0f min\n", float64(totalDeep)/float64(len(days)))
	}
}

func renderSpO2(w io.Writer, summaries []models.DailySummary) {
	sum, n := 0, 0
	for _, s := range summaries {
		if s.SpO2Avg > 0 {
			sum += s.SpO2Avg
			n++
		}
	}
	if n == 0 {
		return
	}

	section(w, "SPO2")
	fmt.Fprintf(w, "   Avg SpO2: %.0f%%\n", float64(sum)/float64(n))
}

func renderSportSessions(w io.Writer, sessions []models.SportSession) {
	section(w, "SPORT SESSIONS")
	var totalCal, totalSec int
	for i, s := range sessions {
		fmt.Fprintf(w, "   %d. %s  |  %d cal  |  %.0f min  |  avg HR %d  |  vitality %d\n",
			i+1, s.Date, s.Calories, float64(s.DurationSec)/60, s.AvgHR, s.Vitality)
		totalCal += s.Calories
		totalSec += s.DurationSec
	}
	fmt.Fprintf(w, "   Total: %d sessions, %d cal, %.0f min\n",
		len(sessions), totalCal, float64(totalSec)/60)
}

func renderFitness(w io.Writer, fitness models.FitnessSummary) {
	section(w, "RAW FITNESS DATA (time-series)")
	fmt.Fprintf(w, "   Heart rate readings: %d\n", fitness.HeartRateRecords)
	if fitness.HRAvg > 0 {
		fmt.Fprintf(w, "   HR avg/min/max:      %.0f / %d / %d bpm\n", fitness.HRAvg, fitness.HRMin, fitness.HRMax)
	}
	if fitness.StepsTotalRaw > 0 {
		fmt.Fprintf(w, "   Steps (from raw):    %d\n", fitness.StepsTotalRaw)
	}
}
