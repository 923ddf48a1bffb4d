package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-3-flash-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateLimit    = 30 * time.Second
	DefaultCatalogTTL   = 10 * time.Minute
	DefaultCatalogFile  = "examples/materials.json" // ローカル検証用のサンプルカタログ
	DefaultCategoryType = "character"               // 照合対象の大分類
	DefaultLocalFile    = "output/match_result.json"
)

// Config はアプリケーション全体の環境設定（APIキーやカタログ接続先）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	CatalogBaseURL string // ホスト済みカタログAPIのエンドポイント（空ならファイル読み込み）

	Options MatchOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey:   envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:    envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		CatalogBaseURL: envutil.GetEnv("CATALOG_BASE_URL", ""),
	}
	return cfg
}

// MatchOptions は CLI フラグから渡される実行時のパラメータなのだ。
type MatchOptions struct {
	// クエリ入力関連
	QueryFile  string // --query-file: Query形状のJSONファイル
	QueryText  string // --text: 自由記述テキストを直接クエリにする
	ScriptURL  string // --script-url: クエリ生成の元になるWebページ
	ScriptFile string // --script-file: クエリ生成の元になる原稿ファイル

	// カタログ関連
	CatalogFile  string // --catalog-file: JSONカタログのパス（ローカル or gs://...）
	CategoryType string // --category: "character" / "scene" などの大分類

	// 出力関連
	OutputFile string // --output-file

	// 照合・AI挙動設定
	Limit   int    // --limit: 候補リストモードの件数
	Mode    string // --mode: クエリ生成モード（character / scene）
	AIModel string // --model: クエリ生成に使うGeminiモデル

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
