package main

import (
	"fmt"

	"github.com/scottlz0310/envcase"
	"github.com/scottlz0310/envcase/internal/config"
	"github.com/scottlz0310/envcase/internal/render"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "環境変数の一覧を表示します",
	Long: `現在の環境変数をモードに応じたキーで一覧表示します。
並び順は OS が返す順序のままで、重複したキーもそのまま表示します。`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pairs, err := collectPairs(cfg.Mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := render.ResolveFormat(cfg.Format, render.IsTerminal(out))

	if err := render.Write(out, pairs, format, listTitle(cfg.Mode)); err != nil {
		return fmt.Errorf("一覧表示に失敗: %w", err)
	}

	return nil
}

func collectPairs(mode config.Mode) ([]envcase.Pair, error) {
	switch mode {
	case config.ModeUncased:
		return envcase.Collect(envcase.UncasedVars()), nil
	case config.ModeLower:
		return envcase.Collect(envcase.LowerVars()), nil
	case config.ModeUpper:
		return envcase.Collect(envcase.UpperVars()), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidMode, mode)
	}
}

func listTitle(mode config.Mode) string {
	switch mode {
	case config.ModeLower:
		return "環境変数一覧（小文字キー）"
	case config.ModeUpper:
		return "環境変数一覧（大文字キー）"
	default:
		return "環境変数一覧"
	}
}
