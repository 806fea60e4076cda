package display

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"jo3qma.com/zona_apk/internal/domain/model"
)

// NewCard は一覧に表示するカードを組み立てます
func NewCard(l *model.Listing) model.Card {
	card := model.Card{
		ID:               l.ID,
		Name:             l.Name,
		DisplayName:      NormalizeName(l.Name),
		DisplayDeveloper: NormalizeDeveloper(l.Developer),
		Image:            l.Image,
		DetailRef:        DetailRef(l),
		DetailPath:       DetailPath(l),
	}

	// スコア 0 は未評価として表示しない
	if l.HasScore() {
		score := *l.Score
		card.Score = &score
		card.ScoreLabel = strconv.FormatFloat(score, 'f', 1, 64)
	}

	return card
}

// NewCards は listings を順にカードへ変換します
func NewCards(listings []*model.Listing) []model.Card {
	cards := make([]model.Card, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, NewCard(l))
	}
	return cards
}

// CategoryTitle はカテゴリ画面の見出しを返します
// 先頭の1文字だけを大文字にし、残りはそのままです（social → Social）
func CategoryTitle(categoryID string) string {
	r, size := utf8.DecodeRuneInString(categoryID)
	if r == utf8.RuneError {
		return categoryID
	}
	return string(unicode.ToUpper(r)) + categoryID[size:]
}
