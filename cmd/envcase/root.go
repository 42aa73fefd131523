package main

import (
	"github.com/fatih/color"
	"github.com/scottlz0310/envcase/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "envcase",
	Short: "大文字小文字を意識せずに環境変数を参照します",
	Long: `envcase は環境変数のキーを大文字小文字を無視して比較したり、
小文字・大文字に揃えて一覧表示したりするツールです。

設定は ENVCASE_MODE / ENVCASE_FORMAT / ENVCASE_NO_COLOR でも指定できます。`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaults := config.Default()

	rootCmd.PersistentFlags().String(config.KeyMode, string(defaults.Mode), "キーの扱い（uncased / lower / upper）")
	rootCmd.PersistentFlags().String(config.KeyFormat, string(defaults.Format), "一覧の出力形式（auto / table / env / json / yaml）")
	rootCmd.PersistentFlags().Bool(config.KeyNoColor, defaults.NoColor, "色付き出力を無効化")
}

// loadConfig はフラグと環境変数から設定を読み込み、色設定を反映します。
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}
