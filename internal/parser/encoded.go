package parser

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// 设备导出 CSV 的 Value 字段使用 UTF-7 风格转义：
//   +AF8-    下划线 "_"
//   +ACIAIg- 引号对（键名与数值之间的分隔残留）
// 数值统一以 `<key>+ACIAIg-:<N>` 形式内嵌在 Value 字符串中

var firstNumberRe = regexp.MustCompile(`:(\d+)`)

// ExtractFirstNumber 取 Value 字符串中冒号后的第一个数字，无匹配返回 0
func ExtractFirstNumber(s string) int {
	m := firstNumberRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// EncodedKeyPattern 编译 `<key>+ACIAIg-:<N>` 的提取正则，key 传编码形式（如 "avg+AF8-hr"）
func EncodedKeyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(key) + `\+ACIAIg-:(\d+)`)
}

// MatchInt 按给定正则提取整数，无匹配返回 0
func MatchInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// NormalizeKey 把 Key 字段中的 +AF8- 还原为下划线
func NormalizeKey(s string) string {
	return strings.ReplaceAll(s, "+AF8-", "_")
}

// DayFromUnix Unix 秒转 UTC 日期字符串
func DayFromUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// MinuteFromUnix Unix 秒转 UTC 分钟级时间字符串
func MinuteFromUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

// ReadValueInMiddleCSV 读取 Value 字段含逗号的 CSV。
// Value 位于固定的前 numFixedStart 列与固定的后 numFixedEnd 列之间，
// 行内多余的逗号全部归入 Value。返回以表头为键的行映射（Value 键固定为 "Value"）。
func ReadValueInMiddleCSV(path string, numFixedStart, numFixedEnd int) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(lines) == 0 {
		return nil, nil
	}

	header := strings.Split(lines[0], ",")
	var rows []map[string]string
	for _, line := range lines[1:] {
		parts := strings.Split(line, ",")
		if len(parts) < numFixedStart+numFixedEnd {
			continue
		}
		startVals := parts[:numFixedStart]
		endVals := parts[len(parts)-numFixedEnd:]
		valueStr := strings.Join(parts[numFixedStart:len(parts)-numFixedEnd], ",")

		row := make(map[string]string, len(header))
		for i := 0; i < numFixedStart && i < len(header); i++ {
			row[header[i]] = startVals[i]
		}
		row["Value"] = valueStr
		if len(header) > 0 {
			row[header[len(header)-1]] = endVals[len(endVals)-1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
