package match

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	// 全角英数の畳み込みと小文字化
	if got := NormalizeText("Ｂｌｕｅ Dress"); got != "blue dress" {
		t.Errorf("期待値 'blue dress', 実際の値 '%s'", got)
	}
	if got := NormalizeText("  黑发  "); got != "黑发" {
		t.Errorf("期待値 '黑发', 実際の値 '%s'", got)
	}

	// 全角カタカナは辞書表層形と同じ形のまま保たれること
	if got := NormalizeText("ショートヘア"); got != "ショートヘア" {
		t.Errorf("期待値 'ショートヘア', 実際の値 '%s'", got)
	}
	// 半角カナは全角の正規形へ畳み込まれること
	if got := NormalizeText("ｼｮｰﾄﾍｱ"); got != "ショートヘア" {
		t.Errorf("期待値 'ショートヘア', 実際の値 '%s'", got)
	}
}

func TestSplitClauses(t *testing.T) {
	got := SplitClauses("黑发，蓝色衣服。女性角色")
	want := []string{"黑发", "蓝色衣服", "女性角色"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期待値 %v, 実際の値 %v", want, got)
	}

	// コロンは区切りではなく、ラベルと値が同じ句に残ること
	got = SplitClauses("发色：乌黑秀发，衣服：红色")
	want = []string{"发色：乌黑秀发", "衣服：红色"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期待値 %v, 実際の値 %v", want, got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("black hair, blue dress")
	want := []string{"black", "hair", "blue", "dress"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("期待値 %v, 実際の値 %v", want, got)
	}

	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("空文字列のトークンは空のはずです: %v", tokens)
	}
}

func TestClauseSpanFinder(t *testing.T) {
	f := NewClauseSpanFinder()

	t.Run("アンカー語を含む句だけが返ること", func(t *testing.T) {
		spans := f.FindAnchoredSpans("黑发，蓝色衣服，女性角色", []string{"发"})
		if !reflect.DeepEqual(spans, []string{"黑发"}) {
			t.Errorf("期待値 ['黑发'], 実際の値 %v", spans)
		}
	})

	t.Run("アンカー語が無ければ空が返ること", func(t *testing.T) {
		if spans := f.FindAnchoredSpans("女性角色", []string{"发"}); len(spans) != 0 {
			t.Errorf("期待値 空, 実際の値 %v", spans)
		}
	})

	t.Run("アンカー句を除いた残りが得られること", func(t *testing.T) {
		rest := f.SubtractAnchoredSpans("黑发，蓝色衣服，女性角色", []string{"衣", "服"})
		if rest != "黑发，女性角色" {
			t.Errorf("期待値 '黑发，女性角色', 実際の値 '%s'", rest)
		}
	})
}
