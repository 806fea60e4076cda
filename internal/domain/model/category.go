package model

// CategorySummary はカテゴリ一覧画面で表示するカテゴリの集計結果です
// リクエストごとに再計算され、永続化されません
type CategorySummary struct {
	ID    string `json:"id"`    // 小文字化した genreId
	Name  string `json:"name"`  // 最初に出現した genre の表示名
	Count int    `json:"count"` // このカテゴリに属するアプリ数
}

// BrowseMode はカテゴリ画面の表示モードです
type BrowseMode string

const (
	BrowseModeListings   BrowseMode = "listings"   // 指定カテゴリのアプリ一覧
	BrowseModeCategories BrowseMode = "categories" // カテゴリのグリッド
)

// BrowseResult はカテゴリ画面の結果です
// Mode に応じて Page か Categories のどちらか一方が設定されます
type BrowseResult struct {
	Mode       BrowseMode
	Title      string
	Page       *CardPage
	Categories []CategorySummary
}
