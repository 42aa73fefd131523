package main

import (
	"testing"

	"github.com/scottlz0310/envcase"
	"github.com/scottlz0310/envcase/internal/config"
	"github.com/scottlz0310/envcase/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectPairs(t *testing.T) {
	testutil.IsolateEnv(t)
	testutil.SetEnvPairs(t, "Envcase_List=1")

	testCases := []struct {
		name    string
		mode    config.Mode
		want    []envcase.Pair
		wantErr error
	}{
		{name: "uncasedはキーをそのまま返す", mode: config.ModeUncased, want: []envcase.Pair{{Key: "Envcase_List", Value: "1"}}},
		{name: "lowerは小文字キー", mode: config.ModeLower, want: []envcase.Pair{{Key: "envcase_list", Value: "1"}}},
		{name: "upperは大文字キー", mode: config.ModeUpper, want: []envcase.Pair{{Key: "ENVCASE_LIST", Value: "1"}}},
		{name: "不正なモードはエラー", mode: config.Mode("title"), wantErr: config.ErrInvalidMode},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := collectPairs(tc.mode)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "環境変数一覧", listTitle(config.ModeUncased))
	assert.Contains(t, listTitle(config.ModeLower), "小文字")
	assert.Contains(t, listTitle(config.ModeUpper), "大文字")
}
