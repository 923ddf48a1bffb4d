package prompts

import "fmt"

// Mode はクエリ生成テンプレートの選択肢です。
// キャラクター素材向けとシーン素材向けで要求する出力属性が異なるため、型で区別します。
type Mode string

const (
	ModeCharacter Mode = "character"
	ModeScene     Mode = "scene"
)

// ParseMode は CLI フラグ等の文字列をモードへ解決します。未知の値はエラーになります。
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeCharacter, ModeScene:
		return m, nil
	default:
		return "", fmt.Errorf("不明なクエリ生成モードです: '%s' (character / scene のいずれかを指定してほしいのだ)", s)
	}
}

// TemplateData はクエリ生成テンプレートへ埋め込む値を保持します。
type TemplateData struct {
	Name       string // 任意。台本側で名前が既知の場合のみ指定
	SourceText string // 解析対象となる台本・原稿テキスト
}
