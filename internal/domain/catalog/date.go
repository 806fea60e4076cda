package catalog

import (
	"strings"
	"time"
)

// updatedLayouts は updated として受け付ける日付形式です
// スクレイパーは "2006-01-02" 形式で出力します
var updatedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseUpdated は updated 文字列を時刻に変換します
// 空文字や解析できない値はゼロ値（最も古い日時）になります
func ParseUpdated(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range updatedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
