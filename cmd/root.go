package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-material-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

var opts config.MatchOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- クエリ入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.QueryFile, "query-file", "q", "", "照合クエリ（JSON）のパスなのだ（ローカル or gs://...）。")
	rootCmd.PersistentFlags().StringVarP(&opts.QueryText, "text", "t", "", "自由記述テキストをそのままクエリにするのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ScriptURL, "script-url", "u", "", "クエリ生成の元になるWebページのURLなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ScriptFile, "script-file", "f", "", "クエリ生成の元になる原稿ファイルのパスなのだ。")

	// --- カタログ・出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.CatalogFile, "catalog-file", "c", config.DefaultCatalogFile, "素材カタログ（JSON）のパスなのだ（ローカル or gs://...）。")
	rootCmd.PersistentFlags().StringVar(&opts.CategoryType, "category", config.DefaultCategoryType, "照合対象の大分類（character / scene）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", config.DefaultLocalFile, "照合結果の保存パス（ローカル or gs://...）なのだ。")

	// --- 照合・AIモデル設定 ---
	rootCmd.PersistentFlags().IntVarP(&opts.Limit, "limit", "k", 0, "候補リストモードの件数なのだ（0で既定値）。")
	rootCmd.PersistentFlags().StringVarP(&opts.Mode, "mode", "m", "character", "クエリ生成モード（character / scene）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "クエリ生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
// Gemini APIを使うのはクエリ生成だけなので、ローカル照合はAPIキー無しで動くのだよ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "query" && os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。クエリ生成には必須なのだ")
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-material-go",
		addAppFlags,
		preRunAppE,
		matchCmd,
		rankCmd,
		queryCmd,
		featuresCmd,
	)
}
