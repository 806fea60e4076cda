package model

import "math"

// DefaultPageSize は1回の読み込みで表示するアプリ数の既定値です
const DefaultPageSize = 12

// Cursor は「もっと見る」のページ位置です
// 状態は表示側が保持し、エンジンには値として渡します
type Cursor struct {
	Offset   int
	PageSize int
}

// NewCursor は先頭位置のカーソルを作成します
func NewCursor(pageSize int) Cursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Cursor{PageSize: pageSize}
}

// Reset は検索語やカテゴリが変わったときに先頭へ戻したカーソルを返します
func (c Cursor) Reset() Cursor {
	return NewCursor(c.PageSize)
}

// Advance は次のページへ進めたカーソルを返します
// 位置は math.MaxInt で頭打ちになります
func (c Cursor) Advance() Cursor {
	next := NewCursor(c.PageSize)
	offset := max(c.Offset, 0)
	if offset > math.MaxInt-next.PageSize {
		next.Offset = math.MaxInt
		return next
	}
	next.Offset = offset + next.PageSize
	return next
}

// HasMore は total 件に対して、まだ表示していない結果があるかを返します
func (c Cursor) HasMore(total int) bool {
	return c.Offset < total
}

// Params はカーソル位置を表示条件に反映します
func (c Cursor) Params(query, categoryID string) ViewParams {
	return ViewParams{
		Query:      query,
		CategoryID: categoryID,
		Offset:     c.Offset,
		PageSize:   c.PageSize,
	}
}
