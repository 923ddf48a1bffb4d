package prompts

import (
	"fmt"
	"strings"
	"text/template"
)

// PromptBuilder は、AIプロンプトを構築する契約です。
type PromptBuilder interface {
	Build(mode Mode, data TemplateData) (string, error)
}

// TextPromptBuilder は、モード別のクエリ生成テンプレートを解析済みの状態で保持します。
// 構築後は読み取り専用で、複数ゴルーチンから共有できます。
type TextPromptBuilder struct {
	templates map[Mode]*template.Template
}

// NewTextPromptBuilder は両モードのテンプレートを解析し、ビルダーを初期化します。
// どちらかのモードのテンプレートが欠けている場合は起動時点でエラーにするのだ。
func NewTextPromptBuilder() (*TextPromptBuilder, error) {
	b := &TextPromptBuilder{
		templates: make(map[Mode]*template.Template, len(allTemplates)),
	}

	for _, mode := range []Mode{ModeCharacter, ModeScene} {
		content, ok := allTemplates[mode]
		if !ok || content == "" {
			return nil, fmt.Errorf("モード '%s' のテンプレートが定義されていません", mode)
		}

		tmpl, err := template.New(string(mode)).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("モード '%s' のテンプレート解析に失敗しました: %w", mode, err)
		}
		b.templates[mode] = tmpl
	}

	return b, nil
}

// Build は、要求されたモードのテンプレートにデータを埋め込んでプロンプトを返します。
func (b *TextPromptBuilder) Build(mode Mode, data TemplateData) (string, error) {
	tmpl, ok := b.templates[mode]
	if !ok {
		return "", fmt.Errorf("不明なクエリ生成モードです: '%s'", mode)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("モード '%s' のプロンプト構築に失敗しました: %w", mode, err)
	}

	return sb.String(), nil
}
