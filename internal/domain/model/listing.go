package model

// Listing はカタログに掲載される1件のアプリ（APK）のドメインモデルです
// スナップショットとして一度だけ読み込まれ、以降は読み取り専用として扱います
type Listing struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Developer   string   `json:"developer"`
	Description string   `json:"description,omitempty"` // 空文字は「説明なし」
	GenreID     string   `json:"genreId,omitempty"`     // カテゴリキー（大文字小文字を区別しない）
	Genre       string   `json:"genre,omitempty"`       // カテゴリの表示名
	Score       *float64 `json:"score,omitempty"`       // 0.0〜5.0。ない場合は nil
	Updated     string   `json:"updated,omitempty"`     // 日付文字列。並び替えにのみ使用
	Image       string   `json:"image,omitempty"`

	// 以下は詳細ページ用の付随情報で、絞り込み・並び替えには使いません
	Version            string   `json:"version,omitempty"`
	Size               string   `json:"size,omitempty"`
	URL                string   `json:"url,omitempty"`
	SourceURL          string   `json:"source_url,omitempty"`
	Ratings            int64    `json:"ratings,omitempty"`
	Reviews            int64    `json:"reviews,omitempty"`
	Installs           string   `json:"installs,omitempty"`
	AndroidVersionText string   `json:"androidVersionText,omitempty"`
	Screenshots        []string `json:"screenshots,omitempty"`
	ReleaseNotes       string   `json:"releaseNotes,omitempty"`
}

// HasScore はスコアが表示対象かどうかを返します
// 元データでは 0 は「スコアなし」と同じ扱いです
func (l *Listing) HasScore() bool {
	return l.Score != nil && *l.Score != 0
}

// ViewParams は1回の描画リクエストで指定される表示条件です
type ViewParams struct {
	Query      string // 空文字は検索なし
	CategoryID string // 空文字はカテゴリ指定なし
	Offset     int    // 0 以上
	PageSize   int    // 0 以下の場合はデフォルト値を使用
}

// ListingPage は絞り込み・並び替え後の1ページ分の結果です
type ListingPage struct {
	Items      []*Listing
	TotalCount int  // スライス前の一致件数
	HasNext    bool // offset + pageSize < TotalCount
	NextOffset int
}
