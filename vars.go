package envcase

import (
	"iter"

	"github.com/scottlz0310/envcase/internal/casefold"
)

// Key は大文字小文字を無視した等価比較だけを提供する環境変数のキーです。
// == による比較や map のキーには使えません。
type Key struct {
	_    [0]func()
	text string
}

// Equal は other と大文字小文字を無視して一致するかを返します。
func (k Key) Equal(other string) bool {
	return casefold.EqualFold(k.text, other)
}

// String は変換前のキーを返します。
func (k Key) String() string {
	return k.text
}

// UncasedVars は大文字小文字を無視して比較できるキーで環境変数を列挙します。
// 列挙対象は呼び出し時点の環境変数で、キーの文字列自体は変換しません。
func UncasedVars() iter.Seq2[Key, string] {
	entries := environ()

	return func(yield func(Key, string) bool) {
		for _, entry := range entries {
			key, value, ok := splitEntry(entry)
			if !ok {
				continue
			}

			if !yield(Key{text: key}, value) {
				return
			}
		}
	}
}

// UncasedVar は大文字小文字を問わず key に一致する最初の環境変数の値を返します。
func UncasedVar[K ~string](key K) (string, error) {
	target := string(key)

	for k, v := range UncasedVars() {
		if k.Equal(target) {
			return v, nil
		}
	}

	return "", notFound(target)
}

// LowerVars はキーを小文字に変換して環境変数を列挙します。
func LowerVars() iter.Seq2[string, string] {
	return mappedVars(casefold.ToLower)
}

// LowerVar は小文字に変換済みのキーと完全一致する最初の環境変数の値を返します。
// key 自体は変換しないため、呼び出し側で ToLower 済みのキーを渡してください。
func LowerVar[K ~string](key K) (string, error) {
	return lookup(LowerVars(), string(key))
}

// UpperVars はキーを大文字に変換して環境変数を列挙します。
func UpperVars() iter.Seq2[string, string] {
	return mappedVars(casefold.ToUpper)
}

// UpperVar は大文字に変換済みのキーと完全一致する最初の環境変数の値を返します。
// key 自体は変換しないため、呼び出し側で ToUpper 済みのキーを渡してください。
func UpperVar[K ~string](key K) (string, error) {
	return lookup(UpperVars(), string(key))
}

// Collect は列挙結果を順序どおりに Pair のスライスへまとめます。重複は除去しません。
func Collect[K Key | string](seq iter.Seq2[K, string]) []Pair {
	pairs := make([]Pair, 0)
	for k, v := range seq {
		pairs = append(pairs, Pair{Key: keyText(k), Value: v})
	}

	return pairs
}

func keyText[K Key | string](k K) string {
	switch key := any(k).(type) {
	case Key:
		return key.text
	case string:
		return key
	}

	return ""
}

func mappedVars(mapKey func(string) string) iter.Seq2[string, string] {
	entries := environ()

	return func(yield func(string, string) bool) {
		for _, entry := range entries {
			key, value, ok := splitEntry(entry)
			if !ok {
				continue
			}

			if !yield(mapKey(key), value) {
				return
			}
		}
	}
}

func lookup(seq iter.Seq2[string, string], key string) (string, error) {
	for k, v := range seq {
		if k == key {
			return v, nil
		}
	}

	return "", notFound(key)
}
