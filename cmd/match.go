package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-material-kit/internal/config"
	"github.com/shouni/go-material-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// matchCmd は、クエリと最も良く一致する素材1件を探すのだ。
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "クエリに最も一致する素材を1件探すのだ。",
	Long: `クエリ（JSONまたは自由記述テキスト）をカタログの候補プールと照合し、
しきい値を超えた中で最高スコアの素材を1件返すのだ。該当なしも正常終了なのだよ。`,
	RunE: matchCommand,
}

func matchCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. クエリ入力の必須チェック
	if opts.QueryFile == "" && opts.QueryText == "" {
		return fmt.Errorf("クエリ（--query-file または --text）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("単一最良モードで照合を開始するのだ！",
		"category", opts.CategoryType,
		"catalog", opts.CatalogFile,
		"output", opts.OutputFile)

	// 3. 実行
	if err := pipeline.ExecuteMatch(ctx, cfg, true); err != nil {
		return fmt.Errorf("照合中にエラーが発生したのだ: %w", err)
	}

	slog.Info("照合が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
