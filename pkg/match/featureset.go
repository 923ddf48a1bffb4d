package match

import "sort"

// FeatureSet はあるカテゴリについて抽出された正規化語の集合です。
// 1つのテキストが同一カテゴリで複数の語を表現することがあるため、単一値ではなく集合です。
type FeatureSet map[string]struct{}

// Add は正規化語を集合に加えます。
func (fs FeatureSet) Add(term string) {
	fs[term] = struct{}{}
}

// Has は正規化語が集合に含まれるかを返します。
func (fs FeatureSet) Has(term string) bool {
	_, ok := fs[term]
	return ok
}

// Empty は集合が空かどうかを返します。
func (fs FeatureSet) Empty() bool {
	return len(fs) == 0
}

// Overlap は他方の集合と共通する語の数を返します。
func (fs FeatureSet) Overlap(other FeatureSet) int {
	n := 0
	for term := range fs {
		if other.Has(term) {
			n++
		}
	}
	return n
}

// Terms は集合の内容をソート済みスライスで返します。ログとテストの決定性のためなのだ。
func (fs FeatureSet) Terms() []string {
	terms := make([]string, 0, len(fs))
	for term := range fs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
