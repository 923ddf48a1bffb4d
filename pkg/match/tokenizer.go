package match

import (
	"strings"

	"golang.org/x/text/width"
)

// clauseSeparators は文節区切りとみなす約物の集合です。
// 素材のタグやプロンプトは読点・カンマ区切りの短い句の連なりであることが多いため、
// この粒度をアンカースパンとキーワードトークンの基本単位にしています。
// コロンは「发色：乌黑」のようなラベル付け（アンカー語と値の隣接）を壊すため区切りに含めません。
const clauseSeparators = "，。、；！？,.;!?\n\r\t|/·~～…()（）[]【】「」『』\"'“”"

// NormalizeText は照合前のテキスト正規化を行います。
// 全角英数は半角へ、半角カナは全角へ正規形に畳み込み、小文字化した上で前後の空白を落とすのだ。
// Narrow ではなく Fold を使うのは、カタカナの辞書表層形（ショートヘア等）が全角だからです。
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}

// SplitClauses は正規化済みテキストを約物で句に分割します。空の句は含まれません。
func SplitClauses(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(clauseSeparators, r)
	})
	clauses := make([]string, 0, len(raw))
	for _, c := range raw {
		if s := strings.TrimSpace(c); s != "" {
			clauses = append(clauses, s)
		}
	}
	return clauses
}

// Tokenize は汎用キーワード照合用のトークン列を返します。
// 句単位に割った後、さらに空白で分割します。CJKの連続句はそのまま1トークンになります。
func Tokenize(text string) []string {
	var tokens []string
	for _, clause := range SplitClauses(NormalizeText(text)) {
		for _, t := range strings.Fields(clause) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
