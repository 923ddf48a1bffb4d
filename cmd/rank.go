package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-material-kit/internal/config"
	"github.com/shouni/go-material-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// rankCmd は、クエリに一致する素材の上位リストを出すのだ。
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "クエリに一致する素材の上位Kリストを出すのだ。",
	Long: `クエリをカタログの候補プールと照合し、しきい値を超えた素材を
スコア降順で最大K件（--limit）返すのだ。`,
	RunE: rankCommand,
}

func rankCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.QueryFile == "" && opts.QueryText == "" {
		return fmt.Errorf("クエリ（--query-file または --text）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("候補リストモードで照合を開始するのだ！",
		"category", opts.CategoryType,
		"limit", opts.Limit,
		"output", opts.OutputFile)

	if err := pipeline.ExecuteMatch(ctx, cfg, false); err != nil {
		return fmt.Errorf("照合中にエラーが発生したのだ: %w", err)
	}

	slog.Info("照合が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
