package main

import (
	"fmt"

	"github.com/scottlz0310/envcase"
	"github.com/scottlz0310/envcase/internal/config"
	"github.com/spf13/cobra"
)

var getNormalize bool

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "環境変数の値を表示します",
	Long: `KEY に一致する最初の環境変数の値を表示します。

uncased モードでは大文字小文字を無視して比較します。
lower / upper モードではキーを変換済みのものとして完全一致で比較します。
--normalize を指定すると KEY を先に小文字・大文字へ変換します。`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().BoolVar(&getNormalize, "normalize", false, "lower / upper モードで KEY を変換してから検索")
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	value, err := lookupValue(cfg.Mode, args[0], getNormalize)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

	return err
}

func lookupValue(mode config.Mode, key string, normalize bool) (string, error) {
	switch mode {
	case config.ModeUncased:
		return envcase.UncasedVar(key)
	case config.ModeLower:
		if normalize {
			key = envcase.ToLower(key)
		}

		return envcase.LowerVar(key)
	case config.ModeUpper:
		if normalize {
			key = envcase.ToUpper(key)
		}

		return envcase.UpperVar(key)
	default:
		return "", fmt.Errorf("%w: %q", config.ErrInvalidMode, mode)
	}
}
