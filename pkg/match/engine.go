package match

import (
	"sort"

	"github.com/shouni/go-material-kit/pkg/domain"
	"github.com/shouni/go-material-kit/pkg/lexicon"
	"golang.org/x/sync/errgroup"
)

// Engine はスコアリングとランキングを束ねた照合エンジンの本体です。
// 共有する状態は読み取り専用の辞書だけなので、1つのインスタンスを
// 複数リクエストから同時に使って構いません。
type Engine struct {
	scorer  *Scorer
	weights Weights
}

// NewEngine は指定された辞書と重みテーブルからエンジンを生成します。
func NewEngine(catalog *lexicon.Catalog, weights Weights) *Engine {
	return &Engine{
		scorer:  NewScorer(catalog, weights),
		weights: weights,
	}
}

// NewDefaultEngine は組み込み辞書と既定の重みでエンジンを生成するのだ。
func NewDefaultEngine() *Engine {
	return NewEngine(lexicon.NewCatalog(), DefaultWeights())
}

// FindTopMatches は候補プール全件を採点し、しきい値を超えたものを
// スコア降順（同点は先着順を維持）で最大 limit 件返します。
// プールが空、または全候補がしきい値以下なら空スライスを返し、エラーにはなりません。
func (e *Engine) FindTopMatches(query domain.Query, pool domain.Materials, limit int) []domain.ScoredMaterial {
	if len(pool) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultTopK
	}

	queryProfile := e.scorer.ProfileOf(query.Document())

	// 候補ごとの採点は互いに独立した純粋計算なので、候補単位で並列化する
	scores := make([]float64, len(pool))
	var eg errgroup.Group
	for i := range pool {
		i := i
		eg.Go(func() error {
			candidateProfile := e.scorer.ProfileOf(pool[i].Document())
			scores[i] = e.scorer.Score(queryProfile, candidateProfile)
			return nil
		})
	}
	_ = eg.Wait() // 採点はエラーを返さない

	// しきい値での足切り。プール順を保ったまま詰める
	ranked := make([]domain.ScoredMaterial, 0, len(pool))
	for i, m := range pool {
		if scores[i] > e.weights.MinScore {
			ranked = append(ranked, domain.ScoredMaterial{Material: m, Score: scores[i]})
		}
	}

	// 安定ソートなので同点はプールの先着順のまま
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// FindBestMatch は最良の1件を返します。しきい値を超える候補が無ければ nil です。
func (e *Engine) FindBestMatch(query domain.Query, pool domain.Materials) *domain.Material {
	top := e.FindTopMatches(query, pool, 1)
	if len(top) == 0 {
		return nil
	}
	best := top[0].Material
	return &best
}
