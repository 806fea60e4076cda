package datafile

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// placeholders はスクレイパーが値を取得できなかったときに書き込む文字列です
// これらは「値なし」として扱います
var placeholders = map[string]struct{}{
	"N/A":                             {},
	"#":                               {},
	"/images/placeholder.png":         {},
	"Versión desconocida":             {},
	"Tamaño no disponible":            {},
	"Descripción no disponible":       {},
	"No hay descripción disponible.":  {},
	"Categoría no disponible":         {},
	"ID de categoría no disponible":   {},
	"Fecha no disponible":             {},
	"Instalaciones no disponibles":    {},
	"Versión Android no disponible":   {},
	"Notas de versión no disponible":  {},
	"Notas de versión no disponibles": {},
}

// optional はプレースホルダーや空白のみの値を空文字にします
func optional(s string) string {
	s = strings.TrimSpace(s)
	if _, ok := placeholders[s]; ok {
		return ""
	}
	return s
}

// text はJSONの文字列以外の値も受け付ける文字列です
// 数値や真偽値はそのリテラル表記、null は空文字として読み込みます
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	*t = text(data)
	return nil
}

// number はJSONの数値、または数値として読める文字列を取り出します
func number(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// htmlToText は説明文にHTMLが含まれている場合にテキストだけを取り出します
func htmlToText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	// <br> や <p> の区切りで単語がつながらないよう、テキストノードの間に空白を入れる
	var parts []string
	doc.Find("body").Contents().Each(func(i int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})
	return collapseSpace(strings.Join(parts, " "))
}

// collapseSpace は連続する空白を1つにまとめ、前後の空白を取り除きます
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
