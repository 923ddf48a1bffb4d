package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-material-kit/internal/config"
	"github.com/shouni/go-material-kit/internal/runner"
	"github.com/shouni/go-material-kit/pkg/catalog"
	"github.com/shouni/go-material-kit/pkg/domain"
	"github.com/shouni/go-material-kit/pkg/match"
	"github.com/shouni/go-material-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-web-exact/v2/extract"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const resultMimeType = "application/json"

// MatchResult は保存用の照合結果（クエリと候補リスト）なのだ。
type MatchResult struct {
	Query   domain.Query            `json:"query"`
	Best    *domain.Material        `json:"best,omitempty"`
	Ranking []domain.ScoredMaterial `json:"ranking,omitempty"`
}

// ExecuteMatch は、既存のクエリ（JSONまたは自由記述テキスト）を候補プールと照合するのだ。
// bestOnly が true の場合は単一最良モード、false の場合は候補リストモードで動くのだ。
func ExecuteMatch(ctx context.Context, cfg *config.Config, bestOnly bool) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	query, err := loadQuery(ctx, cfg, appCtx.Reader)
	if err != nil {
		return err
	}

	return runMatch(ctx, cfg, appCtx, query, bestOnly)
}

// ExecuteQueryMatch は、原稿からAIでクエリを生成し、そのまま照合まで行うのだ。
func ExecuteQueryMatch(ctx context.Context, cfg *config.Config, bestOnly bool) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	queryRunner, err := buildQueryRunner(ctx, cfg, appCtx)
	if err != nil {
		return err
	}

	query, err := queryRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("クエリ生成中にエラーが発生したのだ: %w", err)
	}
	slog.InfoContext(ctx, "照合用クエリを生成したのだ", "name", query.Name, "tags", query.Tags)

	return runMatch(ctx, cfg, appCtx, query, bestOnly)
}

// runMatch は照合の実行と結果の保存を行うのだ。
func runMatch(ctx context.Context, cfg *config.Config, appCtx *appContext, query domain.Query, bestOnly bool) error {
	source := buildSource(cfg, appCtx.Reader)
	engine := match.NewDefaultEngine()
	matchRunner := runner.NewMaterialMatchRunner(source, engine, cfg.Options.CategoryType, cfg.Options.Limit)

	result := MatchResult{Query: query}
	if bestOnly {
		best, err := matchRunner.RunBest(ctx, query)
		if err != nil {
			return err
		}
		result.Best = best
	} else {
		ranking, err := matchRunner.Run(ctx, query)
		if err != nil {
			return err
		}
		result.Ranking = ranking
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("照合結果のエンコードに失敗したのだ: %w", err)
	}

	outputPath := cfg.Options.OutputFile
	if err := appCtx.Writer.Write(ctx, outputPath, bytes.NewReader(data), resultMimeType); err != nil {
		return fmt.Errorf("照合結果の保存に失敗したのだ: %w", err)
	}

	slog.InfoContext(ctx, "照合結果を保存したのだ", "path", outputPath)
	return nil
}

// appContext は、パイプライン実行に必要な共有コンポーネントを保持するのだ。
type appContext struct {
	Reader     remoteio.InputReader
	Writer     remoteio.OutputWriter
	HTTPClient httpkit.HTTPClient
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*appContext, error) {
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	return &appContext{
		Reader:     reader,
		Writer:     writer,
		HTTPClient: httpkit.New(cfg.Options.HTTPTimeout),
	}, nil
}

// loadQuery は --text または --query-file からクエリを組み立てるのだ。
// 自由記述テキストは「特徴抽出だけに頼るクエリ」として Description に入れるのだ。
func loadQuery(ctx context.Context, cfg *config.Config, reader remoteio.InputReader) (domain.Query, error) {
	if cfg.Options.QueryText != "" {
		return domain.Query{Description: cfg.Options.QueryText}, nil
	}

	rc, err := reader.Open(ctx, cfg.Options.QueryFile)
	if err != nil {
		return domain.Query{}, fmt.Errorf("クエリファイルのオープンに失敗したのだ (%s): %w", cfg.Options.QueryFile, err)
	}
	defer rc.Close()

	var query domain.Query
	if err := json.NewDecoder(rc).Decode(&query); err != nil {
		return domain.Query{}, fmt.Errorf("クエリJSONのデコードに失敗したのだ: %w", err)
	}
	return query, nil
}

// buildSource はカタログの接続先設定に応じた Source を構築するのだ。
// どちらの実装もTTLキャッシュで包んでおくのだよ（正しさには影響しない性能最適化なのだ）。
func buildSource(cfg *config.Config, reader remoteio.InputReader) catalog.Source {
	var source catalog.Source
	if cfg.CatalogBaseURL != "" {
		source = catalog.NewHTTPSource(httpkit.New(cfg.Options.HTTPTimeout), cfg.CatalogBaseURL)
	} else {
		source = catalog.NewJSONSource(reader, cfg.Options.CatalogFile)
	}
	return catalog.NewCachedSource(source, config.DefaultCatalogTTL)
}

// buildQueryRunner はクエリ生成に必要なAIクライアント一式を組み立てるのだ。
func buildQueryRunner(ctx context.Context, cfg *config.Config, appCtx *appContext) (runner.QueryRunner, error) {
	aiClient, err := initializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	extractor, err := extract.NewExtractor(appCtx.HTTPClient)
	if err != nil {
		return nil, fmt.Errorf("エクストラクターの初期化に失敗したのだ: %w", err)
	}

	promptBuilder, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("TextPromptBuilder の新規作成に失敗しました: %w", err)
	}

	limiter := rate.NewLimiter(rate.Every(config.DefaultRateLimit), 2)
	return runner.NewGenQueryRunner(*cfg, extractor, promptBuilder, aiClient, appCtx.Reader, limiter), nil
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}
