package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-material-kit/pkg/catalog"
	"github.com/shouni/go-material-kit/pkg/domain"
	"github.com/shouni/go-material-kit/pkg/match"
)

// MatchRunner は、クエリと候補プールの照合を実行するインターフェースなのだ。
type MatchRunner interface {
	// Run は候補リストモードで照合を実行し、スコア付きの素材一覧を返すのだ。
	Run(ctx context.Context, query domain.Query) ([]domain.ScoredMaterial, error)
	// RunBest は単一最良モードで照合を実行するのだ。該当なしの場合は nil を返すのだ。
	RunBest(ctx context.Context, query domain.Query) (*domain.Material, error)
}

// MaterialMatchRunner は、カタログからの取得と照合エンジンの実行を束ねる構造体なのだ。
type MaterialMatchRunner struct {
	source       catalog.Source // 候補プールを供給する外部コラボレーター
	engine       *match.Engine  // 照合エンジン本体
	categoryType string         // 照合対象の大分類
	limit        int            // 候補リストモードの件数
}

// NewMaterialMatchRunner は、MaterialMatchRunnerの新しいインスタンスを生成して返すのだ。
func NewMaterialMatchRunner(source catalog.Source, engine *match.Engine, categoryType string, limit int) *MaterialMatchRunner {
	return &MaterialMatchRunner{
		source:       source,
		engine:       engine,
		categoryType: categoryType,
		limit:        limit,
	}
}

// Run は、候補プールの取得と照合を一気に行うのだ。
func (mr *MaterialMatchRunner) Run(ctx context.Context, query domain.Query) ([]domain.ScoredMaterial, error) {
	pool, err := mr.fetchPool(ctx)
	if err != nil {
		return nil, err
	}

	results := mr.engine.FindTopMatches(query, pool, mr.limit)
	slog.InfoContext(ctx, "照合が完了したのだ",
		"pool_size", len(pool),
		"matched", len(results),
	)
	return results, nil
}

// RunBest は、単一最良モードでの照合を行うのだ。
func (mr *MaterialMatchRunner) RunBest(ctx context.Context, query domain.Query) (*domain.Material, error) {
	pool, err := mr.fetchPool(ctx)
	if err != nil {
		return nil, err
	}

	best := mr.engine.FindBestMatch(query, pool)
	if best == nil {
		// 「該当なし」はエラーではなく空の結果なのだ。ユーザーへの提示は呼び出し側の責務なのだよ。
		slog.InfoContext(ctx, "しきい値を超える素材が見つからなかったのだ", "pool_size", len(pool))
	}
	return best, nil
}

func (mr *MaterialMatchRunner) fetchPool(ctx context.Context) (domain.Materials, error) {
	pool, err := mr.source.Fetch(ctx, mr.categoryType)
	if err != nil {
		return nil, fmt.Errorf("候補プールの取得に失敗したのだ: %w", err)
	}
	if len(pool) == 0 {
		slog.WarnContext(ctx, "候補プールが空なのだ", "category_type", mr.categoryType)
	}
	return pool, nil
}
