package main

import (
	"fmt"

	"github.com/scottlz0310/envcase/internal/casefold"
	"github.com/spf13/cobra"
)

// version はビルド時に -ldflags "-X main.version=..." で上書きします。
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "バージョンとケース変換ポリシーを表示します",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "envcase %s (case folding: %s)\n", version, casefold.Name())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
