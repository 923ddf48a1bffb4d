package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Material はカタログに登録済みの視覚素材（立ち絵・背景など）のメタデータを保持します。
type Material struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Prompt       string   `json:"prompt"`        // 生成時に使われた主プロンプト（中文）
	PromptEN     string   `json:"prompt_en"`     // 英語側のサブプロンプト
	Tags         []string `json:"tags"`
	CategoryType string   `json:"category_type"` // "character" / "scene" などの大分類
	SubCategory  string   `json:"sub_category"`
	ReferenceURL string   `json:"reference_url"` // 素材画像本体への参照URL
}

// Materials は素材スライスに対する操作をまとめるための型なのだ。
type Materials []Material

// ScoredMaterial はスコア付けされた素材を保持します。Ranker の出力専用で、永続化はしません。
type ScoredMaterial struct {
	Material Material `json:"material"`
	Score    float64  `json:"score"`
}

// Document は素材の全テキストフィールドを連結した「1つの論理文書」を返します。
// 特徴抽出やキーワード照合はこの文書に対して行われます。
func (m Material) Document() string {
	parts := make([]string, 0, 4+len(m.Tags))
	for _, p := range []string{m.Title, m.Prompt, m.PromptEN, m.SubCategory} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	for _, t := range m.Tags {
		if s := strings.TrimSpace(t); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// String は素材の情報を文字列で返すのだ。
func (m Material) String() string {
	return fmt.Sprintf("%s (%s)", m.Title, m.ID)
}

// ParseMaterials はJSONバイト列から素材スライスをパースして返します。
// この関数はステートレスであり、キャッシュを行いません。
func ParseMaterials(materialsJSON []byte) (Materials, error) {
	var mats Materials
	if err := json.Unmarshal(materialsJSON, &mats); err != nil {
		return nil, fmt.Errorf("素材カタログのJSONパースに失敗しました: %w", err)
	}
	return mats, nil
}

// FilterByCategory は指定された大分類に属する素材だけを残して返します。
// categoryType が空の場合はフィルタせず全件のコピーを返すのだ。
func (ms Materials) FilterByCategory(categoryType string) Materials {
	filtered := make(Materials, 0, len(ms))
	for _, m := range ms {
		if categoryType == "" || strings.EqualFold(m.CategoryType, categoryType) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
