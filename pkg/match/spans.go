package match

import "strings"

// SpanFinder はアンカー語に基づいてカテゴリ関連のサブスパンを切り出す契約です。
// 文脈分離ロジックをシノニム照合から切り離してテストできるようにするための抽象なのだ。
type SpanFinder interface {
	FindAnchoredSpans(text string, anchors []string) []string
}

// ClauseSpanFinder は句（読点・カンマ区切り）を最小単位とする SpanFinder の実装です。
// アンカー語を含む句だけをスパンとして返します。
type ClauseSpanFinder struct{}

// NewClauseSpanFinder は新しい ClauseSpanFinder を生成します。
func NewClauseSpanFinder() *ClauseSpanFinder {
	return &ClauseSpanFinder{}
}

// FindAnchoredSpans はアンカー語のいずれかを含む句を入力順のまま返します。
// 見つからない場合は空スライスを返します。
func (f *ClauseSpanFinder) FindAnchoredSpans(text string, anchors []string) []string {
	var spans []string
	for _, clause := range SplitClauses(text) {
		if containsAny(clause, anchors) {
			spans = append(spans, clause)
		}
	}
	return spans
}

// SubtractAnchoredSpans はアンカー語を含む句を取り除いた残りを連結して返します。
// 競合カテゴリのスパンを先に除去するフォールバック照合で使うのだ。
func (f *ClauseSpanFinder) SubtractAnchoredSpans(text string, anchors []string) string {
	var rest []string
	for _, clause := range SplitClauses(text) {
		if !containsAny(clause, anchors) {
			rest = append(rest, clause)
		}
	}
	return strings.Join(rest, "，")
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
