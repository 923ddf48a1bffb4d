package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shouni/go-material-kit/internal/config"
	"github.com/shouni/go-material-kit/pkg/domain"
	"github.com/shouni/go-material-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-web-exact/v2/extract"
	"golang.org/x/time/rate"
)

// QueryRunner は、原稿からAIで照合用クエリを生成するインターフェースなのだ。
type QueryRunner interface {
	// Run はクエリ生成パイプラインを実行し、構造化されたクエリを返すのだ。
	Run(ctx context.Context) (domain.Query, error)
}

// GenQueryRunner は、原稿テキストから照合用クエリ（二言語プロンプト付き）を生成する構造体なのだ。
type GenQueryRunner struct {
	cfg           config.Config          // 実行時のコマンドライン引数や設定
	extractor     *extract.Extractor     // Webサイトから本文を抽出するエクストラクター
	promptBuilder prompts.PromptBuilder  // AIに渡すプロンプトを構築するビルダー
	aiClient      gemini.GenerativeModel // Gemini APIと通信するクライアント
	reader        remoteio.InputReader   // ローカルやGCSのファイルを読み込むリーダー
	limiter       *rate.Limiter          // API呼び出しのレートリミッター
}

// NewGenQueryRunner は、GenQueryRunnerの新しいインスタンスを生成して返すのだ。
func NewGenQueryRunner(
	cfg config.Config,
	ext *extract.Extractor,
	pb prompts.PromptBuilder,
	ai gemini.GenerativeModel,
	r remoteio.InputReader,
	limiter *rate.Limiter,
) *GenQueryRunner {
	return &GenQueryRunner{
		cfg:           cfg,
		extractor:     ext,
		promptBuilder: pb,
		aiClient:      ai,
		reader:        r,
		limiter:       limiter,
	}
}

// Run は、入力ソースの読み込み、プロンプト構築、AIによる生成、結果のパースを一気に行うのだ。
func (qr *GenQueryRunner) Run(ctx context.Context) (domain.Query, error) {
	// 1. 入力ソース（URL または ファイル）からテキストを読み込むのだ
	input, err := qr.readInputContent(ctx)
	if err != nil {
		return domain.Query{}, err
	}

	// 2. 読み取ったテキストをテンプレートに埋め込んでプロンプトを作るのだ
	mode, err := prompts.ParseMode(qr.cfg.Options.Mode)
	if err != nil {
		return domain.Query{}, err
	}
	promptContent, err := qr.promptBuilder.Build(mode, prompts.TemplateData{SourceText: string(input)})
	if err != nil {
		return domain.Query{}, err
	}

	// 3. レートリミッターを挟んでから、Geminiにクエリ（JSON形式を期待）を生成させるのだ
	if err := qr.limiter.Wait(ctx); err != nil {
		return domain.Query{}, fmt.Errorf("レート制限の待機中に中断されたのだ: %w", err)
	}
	resp, err := qr.aiClient.GenerateContent(ctx, promptContent, qr.cfg.GeminiModel)
	if err != nil {
		return domain.Query{}, fmt.Errorf("クエリの生成に失敗したのだ: %w", err)
	}

	// 4. AIが返したテキストからJSON部分を抽出し、構造体に変換するのだ
	query, err := qr.parseResponse(resp.Text)
	if err != nil {
		return domain.Query{}, err
	}

	return query, nil
}

// readInputContent は、URLまたはパスの設定に基づいて適切な方法でソースデータを取得するのだ。
func (qr *GenQueryRunner) readInputContent(ctx context.Context) ([]byte, error) {
	// URLが指定されている場合は、Webスクレイピングを実行するのだ
	if qr.cfg.Options.ScriptURL != "" {
		text, _, err := qr.extractor.FetchAndExtractText(ctx, qr.cfg.Options.ScriptURL)
		return []byte(text), err
	}
	// ファイルパスが指定されている場合は、リーダーを使って開くのだ（GCS等も対応！）
	rc, err := qr.reader.Open(ctx, qr.cfg.Options.ScriptFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseResponse は、AIが返したテキストからMarkdownのコードブロック等を除去してJSONとしてパースするのだ。
func (qr *GenQueryRunner) parseResponse(raw string) (domain.Query, error) {
	// 余計な空白や、AIが付けがちなMarkdownタグ (```json ... ```) を取り除く処理なのだ
	rawJSON := strings.TrimSpace(raw)
	rawJSON = strings.TrimPrefix(rawJSON, "```json")
	rawJSON = strings.TrimSuffix(rawJSON, "```")
	rawJSON = strings.TrimSpace(rawJSON)

	var query domain.Query
	if err := json.Unmarshal([]byte(rawJSON), &query); err != nil {
		return domain.Query{}, fmt.Errorf("JSONのパースに失敗したのだ: %w", err)
	}
	return query, nil
}
