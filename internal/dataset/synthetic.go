package dataset

import "healthband-insights/internal/models"

func green(text string) Example {
	return Example{Text: text, RiskLevel: models.RiskGreen, Recommendation: models.RecommendationFor(models.RiskGreen)}
}

func yellow(text string) Example {
	return Example{Text: text, RiskLevel: models.RiskYellow, Recommendation: models.RecommendationFor(models.RiskYellow)}
}

func red(text string) Example {
	return Example{Text: text, RiskLevel: models.RiskRed, Recommendation: models.RecommendationFor(models.RiskRed)}
}

// syntheticExamples 合成训练样本：覆盖热应激、脱水、疲劳、徒步行军与休息场景
var syntheticExamples = []Example{
	// green：休息、轻度活动、恢复良好
	green("HR average 58 bpm HR max 75 resting HR 52 SpO2 99 percent steps 1200 active 3 minutes sleep 7h"),
	green("HR average 62 bpm HR max 80 SpO2 98 percent steps 2000 sleep 6h30m"),
	green("HR average 65 bpm HR max 82 resting HR 55 SpO2 98 percent steps 1500 active 5 minutes sleep 7h"),
	green("HR average 68 bpm HR max 88 resting HR 60 SpO2 97 percent steps 2500 active 8 minutes sleep 6h"),
	green("HR average 70 bpm HR max 90 SpO2 97 percent steps 3000 sleep 6h"),
	green("HR average 72 bpm HR max 92 resting HR 64 steps 1800 active 10 minutes sleep 8h"),
	green("HR average 75 bpm HR max 95 SpO2 96 percent steps 3500 active 12 minutes calories 180 sleep 5h30m"),
	green("HR average 78 bpm HR max 98 resting HR 66 steps 4000 active 15 minutes sleep 5h"),
	green("SpO2 98 percent steps 2200 sleep 7h calories 150"),
	green("HR average 64 bpm HR max 78 SpO2 99 percent active 2 minutes sleep 8h"),
	// yellow：持续负荷，需要观察
	yellow("HR average 84 bpm HR max 102 SpO2 96 percent steps 5500 active 22 minutes sleep 4h"),
	yellow("HR average 86 bpm HR max 108 resting HR 72 steps 6000 active 25 minutes sleep 3h30m"),
	yellow("HR average 88 bpm HR max 105 SpO2 95 percent steps 5000 active 25 minutes sleep 4h"),
	yellow("HR average 90 bpm HR max 112 resting HR 78 steps 6500 active 28 minutes calories 420 sleep 3h"),
	yellow("HR average 92 bpm HR max 115 SpO2 94 percent steps 7000 active 30 minutes sleep 2h"),
	yellow("HR average 82 bpm HR max 105 resting HR 69 steps 2276 active 17 minutes calories 175"),
	yellow("HR average 85 bpm HR max 100 SpO2 93 percent steps 4500 active 35 minutes sleep 1h"),
	yellow("HR average 87 bpm HR max 110 resting HR 74 steps 5800 active 20 minutes sleep 4h"),
	yellow("HR average 91 bpm HR max 118 SpO2 94 percent active 38 minutes sleep 2h30m"),
	yellow("HR average 83 bpm HR max 98 steps 5200 active 24 minutes sleep 5h"),
	yellow("HR average 89 bpm HR max 106 SpO2 95 percent steps 6200 active 26 minutes calories 380"),
	yellow("HR average 94 bpm HR max 116 resting HR 80 steps 7500 active 32 minutes sleep 1h30m"),
	// red：热应激、力竭、低血氧
	red("HR average 108 bpm HR max 125 SpO2 87 percent steps 8000 active 50 minutes sleep 0h"),
	red("HR average 105 bpm HR max 122 SpO2 88 percent active 45 minutes"),
	red("HR average 102 bpm HR max 118 SpO2 89 percent steps 7000 sleep 0h30m"),
	red("HR average 112 bpm HR max 128 SpO2 86 percent steps 9000 active 55 minutes sleep 0h"),
	red("HR average 110 bpm HR max 130 resting HR 95 SpO2 85 percent steps 8500 active 52 minutes"),
	red("HR average 106 bpm HR max 124 SpO2 88 percent active 48 minutes sleep 0h20m"),
	red("HR average 115 bpm HR max 132 SpO2 84 percent steps 10000 active 60 minutes calories 650"),
	red("HR average 104 bpm HR max 120 SpO2 87 percent steps 7200 active 46 minutes sleep 0h"),
	red("HR average 118 bpm HR max 135 SpO2 83 percent active 58 minutes sleep 0h15m"),
	red("HR average 100 bpm HR max 121 SpO2 86 percent steps 6800 active 50 minutes sleep 0h25m"),
	red("SpO2 85 percent HR average 109 bpm HR max 126 steps 7800 active 54 minutes"),
	red("HR average 113 bpm HR max 129 SpO2 86 percent resting HR 92 active 56 minutes sleep 0h"),
	// 边界样本（状态转换中）
	yellow("HR average 98 bpm HR max 119 SpO2 91 percent steps 6000 active 42 minutes sleep 0h45m"),
	yellow("HR average 97 bpm HR max 118 SpO2 92 percent active 40 minutes sleep 1h"),
	green("HR average 80 bpm HR max 96 resting HR 68 steps 4200 active 18 minutes sleep 5h"),
	red("HR average 99 bpm HR max 120 SpO2 90 percent steps 6500 active 44 minutes sleep 0h30m"),
	green("HR average 81 bpm HR max 99 steps 3800 active 16 minutes sleep 5h30m"),
}

// SyntheticExamples 返回合成样本副本（调用方可安全追加/修改）
func SyntheticExamples() []Example {
	out := make([]Example, len(syntheticExamples))
	copy(out, syntheticExamples)
	return out
}
