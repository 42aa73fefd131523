package testutil

import (
	"os"
	"strings"
	"testing"
)

// IsolateEnv はテスト中だけ環境変数をすべて未設定にします。
// t.Setenv を経由するため、テスト終了時に元の値へ戻ります。
func IsolateEnv(t *testing.T) {
	t.Helper()

	for _, entry := range os.Environ() {
		key, _, _ := strings.Cut(entry, "=")
		// Windows の "=C:" のような隠しエントリは変更できないため残します。
		if key == "" {
			continue
		}

		t.Setenv(key, "")

		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("os.Unsetenv(%q) unexpected error: %v", key, err)
		}
	}
}

// SetEnvPairs は "KEY=VALUE" 形式で渡された組をテスト中だけ環境変数へ設定します。
func SetEnvPairs(t *testing.T, pairs ...string) {
	t.Helper()

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			t.Fatalf("invalid env pair: %q", pair)
		}

		t.Setenv(key, value)
	}
}
