package prompts

import (
	"strings"
	"testing"
)

func TestNewTextPromptBuilder(t *testing.T) {
	b, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗しました: %v", err)
	}
	for _, mode := range []Mode{ModeCharacter, ModeScene} {
		if _, ok := b.templates[mode]; !ok {
			t.Errorf("モード '%s' のテンプレートが登録されていません", mode)
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Run("既知のモードが解決できること", func(t *testing.T) {
		for s, want := range map[string]Mode{"character": ModeCharacter, "scene": ModeScene} {
			got, err := ParseMode(s)
			if err != nil {
				t.Fatalf("予期しないエラー: %v", err)
			}
			if got != want {
				t.Errorf("ParseMode(%q) = %v, 期待値 %v", s, got, want)
			}
		}
	})

	t.Run("未知のモードはエラーになること", func(t *testing.T) {
		if _, err := ParseMode("panel"); err == nil {
			t.Error("未知のモードでエラーが発生しませんでした")
		}
	})
}

func TestTextPromptBuilder_Build(t *testing.T) {
	b, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗しました: %v", err)
	}

	t.Run("キャラクターモードで原稿と対象名が埋め込まれること", func(t *testing.T) {
		prompt, err := b.Build(ModeCharacter, TemplateData{
			Name:       "青衣",
			SourceText: "黑发少女的故事",
		})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if !strings.Contains(prompt, "黑发少女的故事") {
			t.Error("原稿がプロンプトに含まれていません")
		}
		if !strings.Contains(prompt, "青衣") {
			t.Error("対象キャラクター名がプロンプトに含まれていません")
		}
	})

	t.Run("対象名なしでも構築できること", func(t *testing.T) {
		prompt, err := b.Build(ModeCharacter, TemplateData{SourceText: "原稿"})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if strings.Contains(prompt, "対象キャラクター:") {
			t.Error("対象名が無いのに対象行が出力されています")
		}
	})

	t.Run("シーンモードで原稿が埋め込まれること", func(t *testing.T) {
		prompt, err := b.Build(ModeScene, TemplateData{SourceText: "夜晚的星空"})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if !strings.Contains(prompt, "夜晚的星空") {
			t.Error("原稿がプロンプトに含まれていません")
		}
	})

	t.Run("不明なモードはエラーになること", func(t *testing.T) {
		if _, err := b.Build("unknown", TemplateData{SourceText: "x"}); err == nil {
			t.Error("不明なモードでエラーが発生しませんでした")
		}
	})
}
