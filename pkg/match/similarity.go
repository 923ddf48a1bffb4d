package match

import (
	"strings"

	"github.com/shouni/go-material-kit/pkg/lexicon"
)

// 語彙的な近さの段階別スコア。値が大きいほど近いとみなします。
const (
	simExact     = 10.0 // 完全一致
	simSubstring = 8.0  // 片方がもう片方を包含
	simSynonym   = 7.0  // 同一の同義クラスに所属
	simPrefixCap = 5.0  // 先頭一致文字数スコアの上限
)

// Similarity は2つの短い文字列の語彙的な近さを採点します。
// カテゴリ特徴の照合には使わず、汎用キーワードの重なり採点専用なのだ。
type Similarity struct {
	catalog *lexicon.Catalog
}

// NewSimilarity は新しい Similarity を生成します。
func NewSimilarity(catalog *lexicon.Catalog) *Similarity {
	return &Similarity{catalog: catalog}
}

// Score は a と b の近さを 0〜10 で返します。
func (s *Similarity) Score(a, b string) float64 {
	a = canonicalizeToken(a)
	b = canonicalizeToken(b)
	if a == "" || b == "" {
		return 0
	}

	if a == b {
		return simExact
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return simSubstring
	}
	if s.catalog.SharesClass(a, b) {
		return simSynonym
	}

	// 先頭一致：両者が2文字以上で、先頭から2文字以上揃う場合のみ加点
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	if n < 2 {
		return 0
	}
	if float64(n) > simPrefixCap {
		return simPrefixCap
	}
	return float64(n)
}

// canonicalizeToken は大文字小文字と空白の揺れを吸収します。
func canonicalizeToken(s string) string {
	return strings.Join(strings.Fields(NormalizeText(s)), " ")
}
