package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-material-kit/internal/config"
	"github.com/shouni/go-material-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// queryCmd は、原稿からAIでクエリを生成してそのまま照合するのだ。
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "原稿からAIでクエリを生成し、そのまま照合するのだ。",
	Long: `ソースとなる文章を解析してキャラクター/シーンの記述（二言語プロンプト付き）を
Geminiに生成させ、その結果をクエリとしてカタログと照合するのだ。`,
	RunE: queryCommand,
}

func queryCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 入力ソースの必須チェック
	if opts.ScriptURL == "" && opts.ScriptFile == "" {
		return fmt.Errorf("ソース（--script-url または --script-file）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("クエリ生成パイプラインを起動するのだ！",
		"mode", opts.Mode,
		"text_model", cfg.GeminiModel,
		"output", opts.OutputFile)

	// 3. 生成と照合を一気通貫で実行するのだ
	if err := pipeline.ExecuteQueryMatch(ctx, cfg, false); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("クエリ生成と照合が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
