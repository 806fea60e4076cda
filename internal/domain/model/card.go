package model

// Card は一覧に並べる1枚のカードの表示用データです
type Card struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"` // 元の名前（title 属性用）
	DisplayName      string   `json:"display_name"`
	DisplayDeveloper string   `json:"display_developer"`
	Image            string   `json:"image,omitempty"`
	Score            *float64 `json:"score,omitempty"`
	ScoreLabel       string   `json:"score_label,omitempty"` // 小数1桁。スコアなしの場合は空
	DetailRef        string   `json:"detail_ref"`            // slug-id
	DetailPath       string   `json:"detail_path"`           // /apks/{slug-id}.html
}

// CardPage はカードに変換済みの1ページ分の結果です
type CardPage struct {
	Cards      []Card
	TotalCount int
	HasNext    bool
	NextOffset int
}
