package display

import (
	"strings"
	"unicode"

	"jo3qma.com/zona_apk/internal/domain/model"
)

// unknownSlug は名前からも ID からも slug が作れない場合の値です
const unknownSlug = "unknown-apk"

// Slugify は text を URL に使える小文字・ハイフン区切りの文字列に変換します
// 残すのは ASCII の英数字、"_"、"-" とスペイン語の á é í ó ú ü ñ だけです
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	// 直前に書いた文字がハイフンかどうか。先頭のハイフンも書かない
	hyphen := true
	space := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			space = false
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
		switch {
		case r == '-':
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		case isSlugRune(r):
			b.WriteRune(r)
			hyphen = false
		}
	}

	return strings.TrimRight(b.String(), "-")
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		return true
	case r == 'á', r == 'é', r == 'í', r == 'ó', r == 'ú', r == 'ü', r == 'ñ':
		return true
	}
	return false
}

// DetailRef は詳細ページを指す "slug-id" を返します
// ID がない場合は slug のみ、slug も ID もない場合は "unknown-apk" です
// 名前から slug が作れない場合は生成されるページ名に合わせて "-id" になります
func DetailRef(l *model.Listing) string {
	slug := Slugify(l.Name)
	switch {
	case l.ID == "" && slug == "":
		return unknownSlug
	case l.ID == "":
		return slug
	}
	return slug + "-" + l.ID
}

// DetailPath は詳細ページのパスを返します
func DetailPath(l *model.Listing) string {
	return "/apks/" + DetailRef(l) + ".html"
}
