// Package casefold はビルド時に選択される大文字小文字の変換・比較ポリシーを提供します。
//
// 既定は ASCII のみを対象とするポリシーです。`-tags unicode` を指定してビルドすると
// golang.org/x/text/cases による Unicode の完全なケースマッピングに切り替わります。
// ポリシーは呼び出しごとに分岐せず、ビルドタグで一度だけ決まります。
package casefold

// Name は現在のポリシー名を返します。
func Name() string {
	if Unicode {
		return "unicode"
	}

	return "ascii"
}
