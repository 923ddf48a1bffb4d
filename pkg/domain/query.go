package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Query は照合の起点となる生成済みのキャラクター/シーン記述を保持します。
// 全フィールドは読み取り専用の入力として扱われ、エンジン側で変更されることはありません。
type Query struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Prompt      string   `json:"prompt"`    // AIが生成した主プロンプト（中文）
	PromptEN    string   `json:"prompt_en"` // 英語側のサブプロンプト
	Tags        []string `json:"tags"`
}

// Document はクエリの全テキストフィールドを連結した「1つの論理文書」を返します。
func (q Query) Document() string {
	parts := make([]string, 0, 4+len(q.Tags))
	for _, p := range []string{q.Name, q.Description, q.Prompt, q.PromptEN} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	for _, t := range q.Tags {
		if s := strings.TrimSpace(t); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// ParseQuery はJSONバイト列からクエリをパースして返します。
func ParseQuery(queryJSON []byte) (Query, error) {
	var q Query
	if err := json.Unmarshal(queryJSON, &q); err != nil {
		return Query{}, fmt.Errorf("クエリJSONのパースに失敗しました: %w", err)
	}
	return q, nil
}
