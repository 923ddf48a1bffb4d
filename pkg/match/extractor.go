package match

import (
	"strings"

	"github.com/shouni/go-material-kit/pkg/lexicon"
)

// アンカー語の定義。髪と衣装は色語を取り合うため、句単位で文脈を限定します。
var (
	hairAnchors  = []string{"发", "髪", "hair"}
	clothAnchors = []string{"衣", "服", "裙", "袍", "套", "衫", "甲", "恤", "披风", "斗篷", "dress", "clothes", "outfit", "robe", "coat", "uniform", "suit", "shirt", "cloak"}
)

// maskedRune はヒット済み表層形を塗りつぶすための置換文字です。
// 長い表層形を先に照合してから塗りつぶすことで、部分文字列の二重ヒットを防ぎます。
const maskedRune = "\x01"

// Extractor は生テキストからカテゴリ別の正規化語集合を取り出します。
// 読み取り専用の Catalog を参照するだけなので、複数ゴルーチンから共有できます。
type Extractor struct {
	catalog *lexicon.Catalog
	spans   *ClauseSpanFinder
}

// NewExtractor は新しい Extractor を生成します。
func NewExtractor(catalog *lexicon.Catalog) *Extractor {
	return &Extractor{
		catalog: catalog,
		spans:   NewClauseSpanFinder(),
	}
}

// Extract は指定カテゴリの正規化語集合を返します。集合は空のことがあります。
func (e *Extractor) Extract(text string, cat lexicon.Category) FeatureSet {
	fs, _ := e.ExtractWithSurfaces(text, cat)
	return fs
}

// ExtractWithSurfaces は正規化語集合に加えて、抽出に寄与した表層形も返します。
// 表層形は汎用キーワード照合の二重計上を避けるために使われるのだ。
func (e *Extractor) ExtractWithSurfaces(text string, cat lexicon.Category) (FeatureSet, []string) {
	scoped := e.scopeText(NormalizeText(text), cat)
	return e.matchSynonyms(scoped, cat)
}

// scopeText はカテゴリに応じて照合対象のテキストを限定します。
//
// 髪色と衣装色は互いに汚染しやすいため、
//  1. まず自カテゴリのアンカー語を含む句だけに限定する
//  2. アンカー句が1つもなければ、競合カテゴリのアンカー句を除いた全文に落とす
//
// それ以外のカテゴリは全文をそのまま照合します。
func (e *Extractor) scopeText(text string, cat lexicon.Category) string {
	var own, conflicting []string
	switch cat {
	case lexicon.HairColor:
		own, conflicting = hairAnchors, clothAnchors
	case lexicon.ClothColor:
		own, conflicting = clothAnchors, hairAnchors
	default:
		return text
	}

	if anchored := e.spans.FindAnchoredSpans(text, own); len(anchored) > 0 {
		return strings.Join(anchored, "，")
	}
	return e.spans.SubtractAnchoredSpans(text, conflicting)
}

// matchSynonyms は限定済みテキストに対してシノニム照合を行います。
// バイト長の長い表層形から順に照合し、ヒットした箇所は塗りつぶしてから次に進みます。
func (e *Extractor) matchSynonyms(scoped string, cat lexicon.Category) (FeatureSet, []string) {
	features := make(FeatureSet)
	var surfaces []string
	if scoped == "" {
		return features, surfaces
	}

	for _, entry := range e.catalog.Entries(cat) {
		if !strings.Contains(scoped, entry.Surface) {
			continue
		}
		features.Add(entry.Canonical)
		surfaces = append(surfaces, entry.Surface)
		scoped = strings.ReplaceAll(scoped, entry.Surface, maskedRune)
	}
	return features, surfaces
}
