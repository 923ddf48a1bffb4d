package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shouni/go-material-kit/pkg/lexicon"
	"github.com/shouni/go-material-kit/pkg/match"

	"github.com/spf13/cobra"
)

// featuresCmd は、テキストから抽出される特徴を確認するデバッグ用コマンドなのだ。
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "テキストから抽出される特徴プロファイルを表示するのだ。",
	Long: `--text で渡したテキストに対する特徴抽出（カテゴリ別の正規化語・性別・時代区分）の
結果をJSONで標準出力に表示するのだ。辞書やアンカーの調整に使うのだよ。`,
	RunE: featuresCommand,
}

func featuresCommand(cmd *cobra.Command, args []string) error {
	if opts.QueryText == "" {
		return fmt.Errorf("テキスト（--text）を指定してほしいのだ")
	}

	scorer := match.NewScorer(lexicon.NewCatalog(), match.DefaultWeights())
	profile := scorer.ProfileOf(opts.QueryText)

	// FeatureSet は集合なので、表示用にソート済みスライスへ変換するのだ
	features := make(map[string][]string, len(profile.Features))
	for cat, fs := range profile.Features {
		if !fs.Empty() {
			features[string(cat)] = fs.Terms()
		}
	}

	view := struct {
		Features map[string][]string `json:"features"`
		Gender   string              `json:"gender"`
		Era      string              `json:"era"`
		Tokens   []string            `json:"tokens"`
	}{
		Features: features,
		Gender:   profile.Gender.String(),
		Era:      profile.Era.String(),
		Tokens:   profile.Tokens,
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("プロファイルのエンコードに失敗したのだ: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
