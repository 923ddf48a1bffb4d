package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shouni/go-material-kit/pkg/domain"

	"github.com/shouni/go-http-kit/httpkit"
)

// HTTPSource はホスト済みカタログAPIから素材一覧を取得する Source です。
type HTTPSource struct {
	client   httpkit.HTTPClient
	endpoint string
}

// NewHTTPSource は新しい HTTPSource を生成します。
func NewHTTPSource(client httpkit.HTTPClient, endpoint string) *HTTPSource {
	return &HTTPSource{client: client, endpoint: endpoint}
}

// Fetch はカタログAPIに問い合わせて素材一覧を取得します。
// サーバー側フィルタの有無に依存しないよう、受信後にも大分類で絞り込むのだ。
func (s *HTTPSource) Fetch(ctx context.Context, categoryType string) (domain.Materials, error) {
	endpoint := s.endpoint
	if categoryType != "" {
		endpoint += "?category_type=" + url.QueryEscape(categoryType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("カタログAPIリクエストの生成に失敗しました: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("カタログAPIへの問い合わせに失敗しました (%s): %w", s.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("カタログAPIが異常ステータスを返しました: %s", resp.Status)
	}

	var mats domain.Materials
	if err := json.NewDecoder(resp.Body).Decode(&mats); err != nil {
		return nil, fmt.Errorf("カタログAPI応答のパースに失敗しました: %w", err)
	}

	return mats.FilterByCategory(categoryType), nil
}
