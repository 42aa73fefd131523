package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/scottlz0310/envcase"
	"github.com/scottlz0310/envcase/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

var samplePairs = []envcase.Pair{
	{Key: "home", Value: "/home/dev"},
	{Key: "path", Value: "/usr/bin"},
	{Key: "path", Value: "/bin"},
	{Key: "opts", Value: "a=b"},
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		format   config.Format
		terminal bool
		want     config.Format
	}{
		{name: "端末ならtable", format: config.FormatAuto, terminal: true, want: config.FormatTable},
		{name: "パイプならenv", format: config.FormatAuto, terminal: false, want: config.FormatEnv},
		{name: "明示指定はそのまま", format: config.FormatJSON, terminal: true, want: config.FormatJSON},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ResolveFormat(tc.format, tc.terminal))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestWriteEnv(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePairs, config.FormatEnv, ""))

	assert.Equal(t, "home=/home/dev\npath=/usr/bin\npath=/bin\nopts=a=b\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePairs, config.FormatTable, "環境変数一覧"))

	output := buf.String()
	assert.Contains(t, output, "環境変数一覧 (4件)")
	assert.Contains(t, output, "キー")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 2+2+len(samplePairs))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "opts"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "a=b"))
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePairs, config.FormatJSON, ""))

	var got []envcase.Pair
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, samplePairs, got)
	assert.Contains(t, buf.String(), `"key": "home"`)
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePairs, config.FormatYAML, ""))

	var got []envcase.Pair
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, samplePairs, got)
	assert.True(t, strings.HasPrefix(buf.String(), "- key: home\n"))
}

func TestWriteRejectsAuto(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, samplePairs, config.FormatAuto, "")
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []envcase.Pair{}, config.FormatJSON, ""))
	assert.Equal(t, "[]\n", buf.String())
}
