//go:build unicode

package casefold

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unicode は Unicode ポリシーでビルドされているかどうかです。
const Unicode = true

// ToLower は Unicode の完全なケースマッピングで小文字に変換します。
func ToLower(s string) string {
	// cases.Caser は状態を持つため呼び出しごとに生成します。
	return cases.Lower(language.Und).String(s)
}

// ToUpper は Unicode の完全なケースマッピングで大文字に変換します。
// "ß" のように複数文字へ展開される変換も含みます（"ß" -> "SS"）。
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// EqualFold は Unicode のケースフォールディング結果同士を比較します。
func EqualFold(a, b string) bool {
	if a == b {
		return true
	}

	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
