// Package render は環境変数の一覧を各出力形式で書き出します。
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/scottlz0310/envcase"
	"github.com/scottlz0310/envcase/internal/config"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// IsTerminal は w が端末に接続されているかを返します。
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// ResolveFormat は auto を実際の出力形式に解決します。
func ResolveFormat(format config.Format, terminal bool) config.Format {
	if format != config.FormatAuto {
		return format
	}

	if terminal {
		return config.FormatTable
	}

	return config.FormatEnv
}

// Write は pairs を format で w に書き出します。format に auto は指定できません。
func Write(w io.Writer, pairs []envcase.Pair, format config.Format, title string) error {
	switch format {
	case config.FormatTable:
		return writeTable(w, pairs, title)
	case config.FormatEnv:
		return writeEnv(w, pairs)
	case config.FormatJSON:
		return writeJSON(w, pairs)
	case config.FormatYAML:
		return writeYAML(w, pairs)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

func writeTable(w io.Writer, pairs []envcase.Pair, title string) error {
	if _, err := color.New(color.FgCyan, color.Bold).Fprintf(w, "📦 %s (%d件)\n\n", title, len(pairs)); err != nil {
		return err
	}

	writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(writer, "キー\t値"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(writer, "----\t--"); err != nil {
		return err
	}

	for _, pair := range pairs {
		if _, err := fmt.Fprintf(writer, "%s\t%s\n", pair.Key, pair.Value); err != nil {
			return err
		}
	}

	return writer.Flush()
}

func writeEnv(w io.Writer, pairs []envcase.Pair) error {
	for _, pair := range pairs {
		if _, err := fmt.Fprintf(w, "%s=%s\n", pair.Key, pair.Value); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, pairs []envcase.Pair) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(pairs); err != nil {
		return fmt.Errorf("JSON の出力に失敗: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, pairs []envcase.Pair) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(pairs); err != nil {
		return fmt.Errorf("YAML の出力に失敗: %w", err)
	}

	return encoder.Close()
}
