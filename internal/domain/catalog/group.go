package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"jo3qma.com/zona_apk/internal/domain/model"
)

// GroupByCategory は genreId ごとにアプリ数を集計し、表示名の辞書順で返します
// genreId と genre の両方を持つアプリだけが対象です。
// キーは小文字化した genreId で、表示名は最初に出現した genre を使います。
// 表示名が同じ場合は最初に出現したカテゴリが先になります。
func GroupByCategory(listings []*model.Listing, tag language.Tag) []model.CategorySummary {
	index := make(map[string]int)
	summaries := make([]model.CategorySummary, 0)

	for _, l := range listings {
		if l == nil || l.GenreID == "" || l.Genre == "" {
			continue
		}
		id := strings.ToLower(l.GenreID)
		if i, ok := index[id]; ok {
			summaries[i].Count++
			continue
		}
		index[id] = len(summaries)
		summaries = append(summaries, model.CategorySummary{ID: id, Name: l.Genre, Count: 1})
	}

	// Collator はゴルーチン間で共有できないため呼び出しごとに作成する
	c := collate.New(tag)
	slices.SortStableFunc(summaries, func(a, b model.CategorySummary) int {
		return c.CompareString(a.Name, b.Name)
	})
	return summaries
}
