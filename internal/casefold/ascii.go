//go:build !unicode

package casefold

// Unicode は Unicode ポリシーでビルドされているかどうかです。
const Unicode = false

// ToLower は ASCII の A-Z のみを小文字に変換します。
func ToLower(s string) string {
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

// ToUpper は ASCII の a-z のみを大文字に変換します。
func ToUpper(s string) string {
	return mapASCII(s, 'a', 'z', -('a' - 'A'))
}

// EqualFold は ASCII の大文字小文字を無視してバイト単位で比較します。
// ASCII 以外のバイトは完全一致が必要です。
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}

	return true
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

func mapASCII(s string, lo, hi byte, delta int) string {
	start := -1
	for i := 0; i < len(s); i++ {
		if lo <= s[i] && s[i] <= hi {
			start = i
			break
		}
	}

	// 変換対象がなければ元の文字列をそのまま返します。
	if start == -1 {
		return s
	}

	buf := []byte(s)
	for i := start; i < len(buf); i++ {
		if lo <= buf[i] && buf[i] <= hi {
			buf[i] = byte(int(buf[i]) + delta)
		}
	}

	return string(buf)
}
