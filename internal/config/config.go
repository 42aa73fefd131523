// Package config は envcase CLI の設定を扱います。
//
// 設定はコマンドラインフラグと ENVCASE_ で始まる環境変数から読み込みます。
// 設定ファイルは読みません。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix は設定を読み込む環境変数の接頭辞です。
const EnvPrefix = "ENVCASE"

// 設定キー名です。同名のフラグと ENVCASE_<KEY> の環境変数に対応します。
const (
	KeyMode    = "mode"
	KeyFormat  = "format"
	KeyNoColor = "no-color"
)

// Mode はキーの表現方法です。
type Mode string

const (
	// ModeUncased はキーを変換せず、大文字小文字を無視して比較します。
	ModeUncased Mode = "uncased"
	// ModeLower はキーを小文字に変換します。
	ModeLower Mode = "lower"
	// ModeUpper はキーを大文字に変換します。
	ModeUpper Mode = "upper"
)

// Format は一覧の出力形式です。
type Format string

const (
	// FormatAuto は端末なら table、それ以外なら env を使います。
	FormatAuto  Format = "auto"
	FormatTable Format = "table"
	FormatEnv   Format = "env"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var (
	// ErrInvalidMode は未対応のモードが指定されたことを表します。
	ErrInvalidMode = errors.New("不正なモードです")
	// ErrInvalidFormat は未対応の出力形式が指定されたことを表します。
	ErrInvalidFormat = errors.New("不正な出力形式です")
)

// Config は CLI 全体の設定です。
type Config struct {
	Mode    Mode
	Format  Format
	NoColor bool
}

// Modes は指定可能なモードの一覧です。
func Modes() []Mode {
	return []Mode{ModeUncased, ModeLower, ModeUpper}
}

// Formats は指定可能な出力形式の一覧です。
func Formats() []Format {
	return []Format{FormatAuto, FormatTable, FormatEnv, FormatJSON, FormatYAML}
}

// Default はデフォルト設定を返します。
func Default() *Config {
	return &Config{
		Mode:    ModeUncased,
		Format:  FormatAuto,
		NoColor: false,
	}
}

// New は環境変数を参照するよう構成した viper インスタンスを返します。
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault(KeyMode, string(defaults.Mode))
	v.SetDefault(KeyFormat, string(defaults.Format))
	v.SetDefault(KeyNoColor, defaults.NoColor)

	return v
}

// Load はフラグと環境変数から設定を読み込みます。
// flags が nil の場合は環境変数とデフォルト値のみを使います。
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := New()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("フラグの読み込みに失敗: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper は viper の値から設定を組み立てて検証します。
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Mode:    Mode(normalize(v.GetString(KeyMode))),
		Format:  Format(normalize(v.GetString(KeyFormat))),
		NoColor: v.GetBool(KeyNoColor),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate は設定値が有効かを検証します。
func (c *Config) Validate() error {
	if !containsValue(Modes(), c.Mode) {
		return fmt.Errorf("%w: %q (指定可能: %s)", ErrInvalidMode, c.Mode, joinValues(Modes()))
	}

	if !containsValue(Formats(), c.Format) {
		return fmt.Errorf("%w: %q (指定可能: %s)", ErrInvalidFormat, c.Format, joinValues(Formats()))
	}

	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func containsValue[T ~string](values []T, needle T) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}

	return false
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, string(value))
	}

	return strings.Join(parts, ", ")
}
