// Package envcase は環境変数をキーの大文字小文字を意識せずに参照する機能を提供します。
//
// 3 つの表現を用意しています。
//
//   - UncasedVars / UncasedVar: キーを大文字小文字を無視して比較する
//   - LowerVars / LowerVar: キーを小文字に変換して扱う
//   - UpperVars / UpperVar: キーを大文字に変換して扱う
//
// 既定では ASCII 英字のみを変換・比較します。`-tags unicode` を付けてビルドすると
// Unicode の完全なケースマッピングを使います（"ß" の大文字は "SS"）。
//
// 各関数は呼び出し時点の環境変数を毎回読み直し、結果をキャッシュしません。
// 環境変数を書き換えることもありません。
package envcase

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scottlz0310/envcase/internal/casefold"
)

// ErrNotFound は指定したキーに一致する環境変数がないことを表します。
var ErrNotFound = errors.New("環境変数が見つかりません")

// environ は環境変数一覧の取得元です。テストでのみ差し替えます。
var environ = os.Environ

// Pair は環境変数のキーと値の組です。
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Unicode は Unicode のケースマッピングでビルドされているかどうかを返します。
func Unicode() bool {
	return casefold.Unicode
}

// ToLower は現在のポリシーでキーを小文字に変換します。LowerVar に渡すキーの準備に使えます。
func ToLower(s string) string {
	return casefold.ToLower(s)
}

// ToUpper は現在のポリシーでキーを大文字に変換します。UpperVar に渡すキーの準備に使えます。
func ToUpper(s string) string {
	return casefold.ToUpper(s)
}

// EqualFold は現在のポリシーで a と b を大文字小文字を無視して比較します。
func EqualFold(a, b string) bool {
	return casefold.EqualFold(a, b)
}

// splitEntry は "KEY=VALUE" 形式のエントリを分割します。
// Windows には "=C:=C:\work" のように '=' で始まるキーがあるため、2 バイト目以降から区切りを探します。
func splitEntry(entry string) (key, value string, ok bool) {
	if entry == "" {
		return "", "", false
	}

	idx := strings.IndexByte(entry[1:], '=')
	if idx == -1 {
		return "", "", false
	}

	idx++

	return entry[:idx], entry[idx+1:], true
}

func notFound(key string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, key)
}
