// Package display はカード表示用の名前の短縮と、詳細ページ用の slug を扱います。
package display

import (
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength      = 25
	maxDeveloperLength = 20
	ellipsis           = "..."
)

// rule は表示名を固定値に置き換える規則です
// lower は小文字化した元の文字列、length は元の文字数（rune 単位）です
type rule struct {
	name    string
	matches func(lower string, length int) bool
	display string
}

// nameRules は上から順に評価され、最初に一致したものが使われます
var nameRules = []rule{
	{
		name:    "x-previously-twitter",
		matches: containsAll("x (previously twitter)"),
		display: "X",
	},
	{
		name: "pinterest-with-version",
		matches: func(lower string, length int) bool {
			return strings.Contains(lower, "pinterest") && length > 10
		},
		display: "Pinterest",
	},
	{
		name:    "discord-dmca",
		matches: containsAll("name removed to comply with dmca", "discord"),
		display: "Discord",
	},
}

// developerRules は開発者名用の規則です
// "discord inc." は DMCA の注記付きの名前も含みます
var developerRules = []rule{
	{
		name:    "discord-inc",
		matches: containsAll("discord inc."),
		display: "Discord Inc.",
	},
}

// NormalizeName はカードに表示するアプリ名を返します
func NormalizeName(name string) string {
	return normalize(name, nameRules, maxNameLength)
}

// NormalizeDeveloper はカードに表示する開発者名を返します
func NormalizeDeveloper(developer string) string {
	return normalize(developer, developerRules, maxDeveloperLength)
}

func normalize(s string, rules []rule, maxLength int) string {
	lower := strings.ToLower(s)
	length := utf8.RuneCountInString(s)

	for _, r := range rules {
		if r.matches(lower, length) {
			return r.display
		}
	}
	return truncate(s, maxLength)
}

// truncate は max 文字を超える場合に先頭 max 文字と省略記号を返します
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + ellipsis
}

func containsAll(substrs ...string) func(string, int) bool {
	return func(lower string, _ int) bool {
		for _, sub := range substrs {
			if !strings.Contains(lower, sub) {
				return false
			}
		}
		return true
	}
}
