package datafile

import (
	"encoding/json"
	"math"

	"jo3qma.com/zona_apk/internal/domain/model"
)

// rawListing は data.js に書き出された1件分のJSON構造体です
// スクレイパーの出力をそのまま受け取り、toModel でドメインモデルに変換します
type rawListing struct {
	ID                 text            `json:"id"`
	Name               text            `json:"name"`
	Version            text            `json:"version"`
	Developer          text            `json:"developer"`
	Image              text            `json:"image"`
	Size               text            `json:"size"`
	Description        text            `json:"description"`
	URL                text            `json:"url"`
	SourceURL          text            `json:"source_url"`
	Genre              text            `json:"genre"`
	GenreID            text            `json:"genreId"`
	Score              json.RawMessage `json:"score"`
	Ratings            json.RawMessage `json:"ratings"`
	Reviews            json.RawMessage `json:"reviews"`
	Updated            text            `json:"updated"`
	Installs           text            `json:"installs"`
	AndroidVersionText text            `json:"androidVersionText"`
	Screenshots        []text          `json:"screenshots"`
	ReleaseNotes       text            `json:"releaseNotes"`
}

// toModel は rawListing をドメインモデルに変換します
// 任意項目の不正な値はエラーにせず「値なし」にします
func (r *rawListing) toModel() *model.Listing {
	l := &model.Listing{
		ID:                 string(r.ID),
		Name:               string(r.Name),
		Developer:          string(r.Developer),
		Description:        htmlToText(optional(string(r.Description))),
		GenreID:            optional(string(r.GenreID)),
		Genre:              optional(string(r.Genre)),
		Updated:            optional(string(r.Updated)),
		Image:              optional(string(r.Image)),
		Version:            optional(string(r.Version)),
		Size:               optional(string(r.Size)),
		URL:                optional(string(r.URL)),
		SourceURL:          optional(string(r.SourceURL)),
		Installs:           optional(string(r.Installs)),
		AndroidVersionText: optional(string(r.AndroidVersionText)),
		ReleaseNotes:       htmlToText(optional(string(r.ReleaseNotes))),
	}

	// スコアは 0.0〜5.0 の範囲外なら捨てる
	if score, ok := number(r.Score); ok && score >= 0 && score <= 5 && !math.IsNaN(score) {
		l.Score = &score
	}
	l.Ratings = count(r.Ratings)
	l.Reviews = count(r.Reviews)

	for _, s := range r.Screenshots {
		if v := optional(string(s)); v != "" {
			l.Screenshots = append(l.Screenshots, v)
		}
	}

	return l
}

// count は件数を返します。正の値でないもの、NaN、int64 に収まらない値は 0 として扱います
func count(raw json.RawMessage) int64 {
	n, ok := number(raw)
	if !ok || !(n > 0 && n < math.MaxInt64) {
		return 0
	}
	return int64(n)
}
