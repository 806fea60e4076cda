// Package catalog はメモリ上のカタログに対する絞り込み・並び替え・ページングを提供します。
// I/O を一切行わない純粋な関数だけで構成されています。
package catalog

import (
	"slices"
	"strings"
	"time"

	"jo3qma.com/zona_apk/internal/domain/model"
)

// Query は表示条件に従って listings を絞り込み、更新日の新しい順に並べ替えて
// 1ページ分を返します。2つ目の戻り値はスライス前の一致件数です。
// listings 自体は変更しません。
func Query(listings []*model.Listing, params model.ViewParams) ([]*model.Listing, int) {
	matched := Filter(listings, params)
	SortByUpdated(matched)

	total := len(matched)
	start, end := pageBounds(params.Offset, params.PageSize, total)
	return matched[start:end], total
}

// QueryPage は Query の結果を ListingPage にまとめます
func QueryPage(listings []*model.Listing, params model.ViewParams) *model.ListingPage {
	items, total := Query(listings, params)

	offset := max(params.Offset, 0)
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}

	next := model.Cursor{Offset: offset, PageSize: pageSize}.Advance()
	return &model.ListingPage{
		Items:      items,
		TotalCount: total,
		HasNext:    pageSize < total-offset,
		NextOffset: next.Offset,
	}
}

// Filter は表示条件に一致するアプリを元の順序のまま新しいスライスで返します
// カテゴリ指定がある場合は検索語を無視します
func Filter(listings []*model.Listing, params model.ViewParams) []*model.Listing {
	if category := strings.TrimSpace(params.CategoryID); category != "" {
		return filterBy(listings, func(l *model.Listing) bool {
			return inCategory(l, category)
		})
	}

	if q := strings.TrimSpace(params.Query); q != "" {
		q = strings.ToLower(q)
		return filterBy(listings, func(l *model.Listing) bool {
			return matchesQuery(l, q)
		})
	}

	return filterBy(listings, func(*model.Listing) bool { return true })
}

// SortByUpdated は更新日の降順に安定ソートします
// 日付が解析できないものは最も古いものとして末尾に並びます
func SortByUpdated(listings []*model.Listing) {
	updated := make(map[*model.Listing]time.Time, len(listings))
	for _, l := range listings {
		if l != nil {
			updated[l] = ParseUpdated(l.Updated)
		}
	}
	slices.SortStableFunc(listings, func(a, b *model.Listing) int {
		return updated[b].Compare(updated[a])
	})
}

func filterBy(listings []*model.Listing, keep func(*model.Listing) bool) []*model.Listing {
	out := make([]*model.Listing, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// inCategory は genreId が大文字小文字を区別せずに一致するかを判定します
func inCategory(l *model.Listing, category string) bool {
	if l.GenreID == "" {
		return false
	}
	return strings.EqualFold(l.GenreID, category)
}

// matchesQuery は名前・開発者・説明のいずれかに q が含まれるかを判定します
// q は小文字化済みであること
func matchesQuery(l *model.Listing, q string) bool {
	if strings.Contains(strings.ToLower(l.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Developer), q) {
		return true
	}
	return l.Description != "" && strings.Contains(strings.ToLower(l.Description), q)
}

func pageBounds(offset, pageSize, total int) (int, int) {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	start := min(max(offset, 0), total)
	end := start + min(pageSize, total-start)
	return start, end
}
