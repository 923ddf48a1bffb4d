package lexicon

import "testing"

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog()

	t.Run("既知のカテゴリで辞書が引けること", func(t *testing.T) {
		set := c.Lookup(HairColor)
		synonyms, ok := set["black hair"]
		if !ok {
			t.Fatal("'black hair' が髪色辞書に存在しません")
		}
		// 記述的な複合語を含む複数の表層形を持つこと
		if len(synonyms) < 5 {
			t.Errorf("'black hair' の表層形が少なすぎます: %d個", len(synonyms))
		}
	})

	t.Run("未知のカテゴリでは空のマッピングが返ること", func(t *testing.T) {
		set := c.Lookup(Category("unknown_category"))
		if len(set) != 0 {
			t.Errorf("期待値 空, 実際の値 %d件", len(set))
		}
	})
}

func TestCatalog_Entries(t *testing.T) {
	c := NewCatalog()
	entries := c.Entries(HairStyle)
	if len(entries) == 0 {
		t.Fatal("髪型カテゴリのエントリが空です")
	}

	// バイト長の降順で並んでいること（長い表層形優先のマスキングの前提）
	for i := 1; i < len(entries); i++ {
		if len(entries[i-1].Surface) < len(entries[i].Surface) {
			t.Fatalf("エントリがバイト長降順になっていません: %q (%d) の後に %q (%d)",
				entries[i-1].Surface, len(entries[i-1].Surface), entries[i].Surface, len(entries[i].Surface))
		}
	}
}

func TestCatalog_SharesClass(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"カテゴリ辞書を横断した同義判定", "黑发", "black hair", true},
		{"補助表の性別名詞", "女性", "girl", true},
		{"補助表の役柄名詞", "公主", "princess", true},
		{"無関係な語", "黑发", "蓝色", false},
		{"未登録の語", "星空", "夜晚", false},
		{"空文字列", "", "女性", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SharesClass(tt.a, tt.b); got != tt.want {
				t.Errorf("SharesClass(%q, %q) = %v, 期待値 %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
