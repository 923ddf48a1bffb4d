package match

import (
	"strings"

	"github.com/shouni/go-material-kit/pkg/lexicon"
)

// Profile は1つのテキスト文書から導出された照合用の特徴一式です。
// リクエスト内で生成・消費されるだけで、呼び出しをまたいで保持されることはありません。
type Profile struct {
	Features map[lexicon.Category]FeatureSet
	Surfaces []string // カテゴリ特徴の抽出に寄与した表層形
	Gender   Gender
	Era      Era
	Tokens   []string
}

// Scorer は (クエリ, 候補) ペアに対して符号付きスコアを計算します。
// 内部コンポーネントはすべて読み取り専用で、並行呼び出しに対して安全です。
type Scorer struct {
	extractor *Extractor
	gender    *GenderClassifier
	era       *EraClassifier
	sim       *Similarity
	weights   Weights
}

// NewScorer は新しい Scorer を生成します。
func NewScorer(catalog *lexicon.Catalog, weights Weights) *Scorer {
	return &Scorer{
		extractor: NewExtractor(catalog),
		gender:    NewGenderClassifier(),
		era:       NewEraClassifier(),
		sim:       NewSimilarity(catalog),
		weights:   weights,
	}
}

// ProfileOf は文書テキストから照合用プロファイルを構築します。
// 空文字列でも問題なく、特徴なし・性別不明のプロファイルが返るだけです。
func (s *Scorer) ProfileOf(doc string) *Profile {
	p := &Profile{
		Features: make(map[lexicon.Category]FeatureSet, len(lexicon.AllCategories())),
		Gender:   s.gender.Classify(doc),
		Era:      s.era.Classify(doc),
		Tokens:   Tokenize(doc),
	}
	for _, cat := range lexicon.AllCategories() {
		fs, surfaces := s.extractor.ExtractWithSurfaces(doc, cat)
		p.Features[cat] = fs
		p.Surfaces = append(p.Surfaces, surfaces...)
	}
	return p
}

// Score は独立した重み付き項の総和としてスコアを計算します。
// どの項もシグナルが無ければ0を寄与するだけで、エラーにはなりません。
func (s *Scorer) Score(query, candidate *Profile) float64 {
	w := s.weights
	score := 0.0

	// 性別：両者で判定できた場合のみ加減点
	if query.Gender != GenderUnknown && candidate.Gender != GenderUnknown {
		if query.Gender == candidate.Gender {
			score += w.GenderMatch
		} else {
			score += w.GenderConflict
		}
	}

	// カテゴリ特徴：一致は語数ぶん加点、双方非空で共通ゼロなら減点
	score += s.categoryScore(query, candidate, lexicon.HairColor, w.HairColorMatch, w.HairColorConflict)
	score += s.categoryScore(query, candidate, lexicon.HairStyle, w.HairStyleMatch, 0)
	score += s.categoryScore(query, candidate, lexicon.EyeColor, w.EyeColorMatch, w.EyeColorConflict)
	score += s.categoryScore(query, candidate, lexicon.ClothColor, w.ClothColorMatch, w.ClothColorConflict)
	score += s.categoryScore(query, candidate, lexicon.ClothType, w.ClothTypeMatch, 0)

	// 時代区分：両者で判定でき、かつ一致した場合のみ小さなボーナス
	if query.Era != EraUnclassified && query.Era == candidate.Era {
		score += w.EraBonus
	}

	// 汎用キーワード：カテゴリ特徴で説明済みのトークンを除き、
	// 候補側トークンとの最良類似スコアを弱めの係数で足し込む
	for _, token := range query.Tokens {
		if explainedByFeatures(token, query.Surfaces) {
			continue
		}
		best := 0.0
		for _, ct := range candidate.Tokens {
			if v := s.sim.Score(token, ct); v > best {
				best = v
			}
		}
		score += best * w.KeywordFactor
	}

	return score
}

func (s *Scorer) categoryScore(query, candidate *Profile, cat lexicon.Category, matchWeight, conflictWeight float64) float64 {
	qf, cf := query.Features[cat], candidate.Features[cat]
	overlap := qf.Overlap(cf)
	if overlap > 0 {
		return float64(overlap) * matchWeight
	}
	if conflictWeight != 0 && !qf.Empty() && !cf.Empty() {
		return conflictWeight
	}
	return 0
}

// explainedByFeatures は、トークンがカテゴリ特徴の表層形を含むかを判定します。
// 含むトークンはカテゴリ項で既に評価済みなので、キーワード項では数えません。
func explainedByFeatures(token string, surfaces []string) bool {
	for _, surface := range surfaces {
		if strings.Contains(token, surface) {
			return true
		}
	}
	return false
}
