package match

import (
	"math"
	"testing"

	"github.com/shouni/go-material-kit/pkg/lexicon"
)

func newTestScorer() *Scorer {
	return NewScorer(lexicon.NewCatalog(), DefaultWeights())
}

// scoreTexts は2つの生テキストをプロファイル化して採点するテスト用ヘルパーです。
func scoreTexts(s *Scorer, query, candidate string) float64 {
	return s.Score(s.ProfileOf(query), s.ProfileOf(candidate))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()

	// 確信的な不一致のペナルティは対応する一致ボーナスを上回ること
	if w.GenderConflict >= 0 || -w.GenderConflict <= w.GenderMatch {
		t.Errorf("性別不一致ペナルティが一致ボーナスを支配していません: %v / %v", w.GenderConflict, w.GenderMatch)
	}
	if w.HairColorConflict >= 0 || -w.HairColorConflict <= w.HairColorMatch {
		t.Errorf("髪色不一致ペナルティが一致ボーナスを支配していません: %v / %v", w.HairColorConflict, w.HairColorMatch)
	}
	if w.MinScore <= 0 {
		t.Errorf("足切りしきい値は正であるべきです: %v", w.MinScore)
	}
	if w.KeywordFactor >= 1 {
		t.Errorf("キーワード係数はカテゴリ項より弱くあるべきです: %v", w.KeywordFactor)
	}
}

func TestScorer_ProfileOf(t *testing.T) {
	s := newTestScorer()

	p := s.ProfileOf("黑发，蓝色衣服，女性角色")
	if !p.Features[lexicon.HairColor].Has("black hair") {
		t.Errorf("髪色特徴の期待値 {black hair}, 実際の値 %v", p.Features[lexicon.HairColor].Terms())
	}
	if !p.Features[lexicon.ClothColor].Has("blue") {
		t.Errorf("衣装色特徴の期待値 {blue}, 実際の値 %v", p.Features[lexicon.ClothColor].Terms())
	}
	if p.Gender != GenderFemale {
		t.Errorf("性別の期待値 female, 実際の値 %v", p.Gender)
	}
	if len(p.Tokens) != 3 {
		t.Errorf("トークン数の期待値 3, 実際の値 %v", p.Tokens)
	}

	// 空文書は特徴なし・不明プロファイルになるだけでエラーにはならない
	empty := s.ProfileOf("")
	if empty.Gender != GenderUnknown || len(empty.Tokens) != 0 {
		t.Errorf("空文書のプロファイルが中立ではありません: %+v", empty)
	}
}

func TestScorer_GenderTerms(t *testing.T) {
	s := newTestScorer()
	w := DefaultWeights()

	t.Run("性別の相違は単独で大きな減点になること", func(t *testing.T) {
		// 両テキストとも性別名詞のみで、他の項はすべて0
		if got := scoreTexts(s, "男性", "女性"); !almostEqual(got, w.GenderConflict) {
			t.Errorf("期待値 %v, 実際の値 %v", w.GenderConflict, got)
		}
	})

	t.Run("片側が不明なら性別項は中立であること", func(t *testing.T) {
		if got := scoreTexts(s, "女性", "黑发"); !almostEqual(got, 0) {
			t.Errorf("期待値 0, 実際の値 %v", got)
		}
	})
}

func TestScorer_CategoryTerms(t *testing.T) {
	s := newTestScorer()
	w := DefaultWeights()

	t.Run("髪色の不一致は減点されること", func(t *testing.T) {
		// 双方の唯一のトークンはカテゴリ特徴で説明済みのため、キーワード項は0
		if got := scoreTexts(s, "黑发", "金发"); !almostEqual(got, w.HairColorConflict) {
			t.Errorf("期待値 %v, 実際の値 %v", w.HairColorConflict, got)
		}
	})

	t.Run("髪型には不一致ペナルティが無いこと", func(t *testing.T) {
		if got := scoreTexts(s, "马尾", "短发"); got < 0 {
			t.Errorf("髪型の相違で減点されました: %v", got)
		}
	})

	t.Run("片側に特徴が無ければ不一致扱いにならないこと", func(t *testing.T) {
		if got := scoreTexts(s, "黑发", "长袍"); !almostEqual(got, 0) {
			t.Errorf("期待値 0, 実際の値 %v", got)
		}
	})
}

func TestScorer_EraBonus(t *testing.T) {
	s := newTestScorer()

	// 髪色一致 50 + 時代一致 5 + 同義クラス「古风/古装」のキーワード項 7*0.3
	got := scoreTexts(s, "黑发，古风", "黑发，古装")
	want := 50 + 5 + 7*0.3
	if !almostEqual(got, want) {
		t.Errorf("期待値 %v, 実際の値 %v", want, got)
	}

	// 片側が未分類ならボーナスは付かない
	withBonus := got
	noBonus := scoreTexts(s, "黑发，古风", "黑发")
	if !almostEqual(withBonus-noBonus, 5+7*0.3) {
		t.Errorf("時代ボーナスの差分が期待値と一致しません: %v - %v", withBonus, noBonus)
	}
}

func TestScorer_KeywordTerm(t *testing.T) {
	s := newTestScorer()

	t.Run("キーワードの重なりだけでは負にならないこと", func(t *testing.T) {
		// 先頭2文字一致（星空）× 係数 0.3
		got := scoreTexts(s, "星空夜晚", "星空场景")
		if !almostEqual(got, 2*0.3) {
			t.Errorf("期待値 %v, 実際の値 %v", 2*0.3, got)
		}
	})

	t.Run("カテゴリ特徴で説明済みのトークンは二重計上しないこと", func(t *testing.T) {
		// 「黑发」は髪色項で評価済み。キーワード項まで足すと 50 を超えてしまう
		if got := scoreTexts(s, "黑发", "黑发"); !almostEqual(got, 50) {
			t.Errorf("期待値 50, 実際の値 %v", got)
		}
	})
}

// TestScorer_EndToEndScenario は代表的な照合ケースの全項合算を固定値で検証します。
func TestScorer_EndToEndScenario(t *testing.T) {
	s := newTestScorer()

	query := "黑发，蓝色衣服，女性角色"
	good := "青裙少女\n黑发少女，蓝色长裙\n女性"
	bad := "金发少年\n金发少年，红色外套\n男性"

	// 一致側：性別 50 + 髪色 50 + 衣装色 30 + 「女性角色」⊃「女性」の包含 8*0.3
	goodScore := scoreTexts(s, query, good)
	if !almostEqual(goodScore, 50+50+30+8*0.3) {
		t.Errorf("一致側スコアの期待値 132.4, 実際の値 %v", goodScore)
	}

	// 不一致側：性別 -150 + 髪色 -80 + 衣装色 -25
	badScore := scoreTexts(s, query, bad)
	if !almostEqual(badScore, -150-80-25) {
		t.Errorf("不一致側スコアの期待値 -255, 実際の値 %v", badScore)
	}

	if goodScore-badScore < 150 {
		t.Errorf("一致側と不一致側のスコア差が小さすぎます: %v", goodScore-badScore)
	}
}
