package match

// Era は衣装・舞台設定の時代区分です。
type Era int

const (
	EraUnclassified Era = iota
	EraHistorical
	EraContemporary
)

// String は時代区分の表示名を返すのだ。
func (e Era) String() string {
	switch e {
	case EraHistorical:
		return "historical"
	case EraContemporary:
		return "contemporary"
	default:
		return "unclassified"
	}
}

var (
	historicalKeywords = []string{
		"古风", "古装", "古代", "汉服", "王朝", "江湖", "武侠", "宫廷", "仙侠", "和风",
		"ancient", "historical", "dynasty",
	}
	contemporaryKeywords = []string{
		"现代", "都市", "当代", "校园", "职场", "西装", "手机",
		"modern", "urban", "contemporary",
	}
)

// EraClassifier はキーワード投票による時代区分の推定器です。
type EraClassifier struct {
	historical   []string
	contemporary []string
}

// NewEraClassifier は組み込みキーワードによる EraClassifier を生成します。
func NewEraClassifier() *EraClassifier {
	return &EraClassifier{historical: historicalKeywords, contemporary: contemporaryKeywords}
}

// Classify は時代キーワードの出現数を数え、厳密に多い側を返します。
// 同数の場合は EraUnclassified です。シグナルが無くてもエラーにはなりません。
func (ec *EraClassifier) Classify(text string) Era {
	normalized := NormalizeText(text)
	historicalVotes := countOccurrences(normalized, ec.historical)
	contemporaryVotes := countOccurrences(normalized, ec.contemporary)

	switch {
	case historicalVotes > contemporaryVotes:
		return EraHistorical
	case contemporaryVotes > historicalVotes:
		return EraContemporary
	default:
		return EraUnclassified
	}
}
