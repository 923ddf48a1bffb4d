package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-material-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// Source は候補プールを供給する外部コラボレーターの契約です。
// 取得のタイムアウトやリトライはこの層の責務で、照合エンジン側には持ち込みません。
type Source interface {
	Fetch(ctx context.Context, categoryType string) (domain.Materials, error)
}

// JSONSource はローカルファイルや gs:// 上のJSONカタログを読み込む Source です。
type JSONSource struct {
	reader remoteio.InputReader
	path   string
}

// NewJSONSource は新しい JSONSource を生成します。
func NewJSONSource(reader remoteio.InputReader, path string) *JSONSource {
	return &JSONSource{reader: reader, path: path}
}

// Fetch はカタログ全体を読み込み、指定の大分類でフィルタして返します。
func (s *JSONSource) Fetch(ctx context.Context, categoryType string) (domain.Materials, error) {
	slog.InfoContext(ctx, "素材カタログを読み込んでいます", "path", s.path)
	rc, err := s.reader.Open(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("カタログファイルのオープンに失敗しました (%s): %w", s.path, err)
	}
	defer rc.Close()

	var mats domain.Materials
	if err := json.NewDecoder(rc).Decode(&mats); err != nil {
		return nil, fmt.Errorf("カタログJSONのパースに失敗しました: %w", err)
	}

	return mats.FilterByCategory(categoryType), nil
}
