package match

import "testing"

func TestEraClassifier_Classify(t *testing.T) {
	ec := NewEraClassifier()

	tests := []struct {
		name string
		text string
		want Era
	}{
		{"古風キーワード", "古风汉服，宫廷场景", EraHistorical},
		{"現代キーワード", "现代都市，校园", EraContemporary},
		{"英語キーワード", "an ancient dynasty palace", EraHistorical},
		{"同数は未分類", "古代与现代", EraUnclassified},
		{"シグナルなしは未分類", "黑发少女", EraUnclassified},
		{"空文字列は未分類", "", EraUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ec.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, 期待値 %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEra_String(t *testing.T) {
	if EraHistorical.String() != "historical" || EraContemporary.String() != "contemporary" || EraUnclassified.String() != "unclassified" {
		t.Error("Era の表示名が期待値と一致しません")
	}
}
