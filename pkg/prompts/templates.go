package prompts

// クエリ生成用のプロンプトテンプレート。
// 出力は照合エンジンの Query 形状（JSON）に固定し、中英の二言語プロンプトを要求します。

const characterTemplate = `あなたはコンテンツ制作ツールのキャラクター設定アシスタントです。
以下の原稿から、登場キャラクター1名の外見記述を作成してください。

### 出力形式（JSONのみ、コードブロック可） ###
{
  "name": "キャラクター名",
  "description": "中文の自由記述（髪色・髪型・瞳色・服装の色と種類・性別を必ず含める）",
  "prompt": "画像生成向けの中文プロンプト",
  "prompt_en": "English prompt for image generation",
  "tags": ["短いタグを3〜8個"]
}

### 制約 ###
- 外見に関する語（发型/发色/瞳色/服装）は具体的に書くこと。
- 原稿に無い属性を創作しない。不明な属性は省略してよい。
{{if .Name}}- 対象キャラクター: {{.Name}}
{{end}}
### 原稿 ###
{{.SourceText}}
`

const sceneTemplate = `あなたはコンテンツ制作ツールの背景設定アシスタントです。
以下の原稿から、1つのシーン（背景素材）の記述を作成してください。

### 出力形式（JSONのみ、コードブロック可） ###
{
  "name": "シーン名",
  "description": "中文の自由記述（場所・時代感・色調を含める）",
  "prompt": "画像生成向けの中文プロンプト",
  "prompt_en": "English prompt for image generation",
  "tags": ["短いタグを3〜8個"]
}

### 原稿 ###
{{.SourceText}}
`

// allTemplates はモードとテンプレート本文の対応表です。
var allTemplates = map[Mode]string{
	ModeCharacter: characterTemplate,
	ModeScene:     sceneTemplate,
}
