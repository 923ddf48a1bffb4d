package match

import "strings"

// Gender はテキストから推定した性別区分です。
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// String は性別区分の表示名を返すのだ。
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// 性別を示唆するキーワード群。明示的な名詞に加え、この領域で慣習的に
// 性別が紐付く役柄名詞（将军・书生・公主など）も含めています。
var (
	maleKeywords = []string{
		"男性", "男子", "男生", "男人", "男主", "少年",
		"王子", "将军", "武士", "剑客", "书生", "公子",
		"boy", "male",
	}
	femaleKeywords = []string{
		"女性", "女子", "女生", "女人", "女主", "少女",
		"公主", "郡主", "小姐", "姑娘", "巫女", "仙女",
		"girl", "woman", "lady", "princess", "queen",
	}
)

// GenderClassifier はキーワード投票による性別推定器です。状態を持ちません。
type GenderClassifier struct {
	male   []string
	female []string
}

// NewGenderClassifier は組み込みキーワードによる GenderClassifier を生成します。
func NewGenderClassifier() *GenderClassifier {
	return &GenderClassifier{male: maleKeywords, female: femaleKeywords}
}

// Classify は男女それぞれのキーワード出現数を数え、厳密に多い側を返します。
// 同数（0対0を含む）の場合は GenderUnknown になるのだ。
func (gc *GenderClassifier) Classify(text string) Gender {
	normalized := NormalizeText(text)
	femaleVotes := countOccurrences(normalized, gc.female)

	// "female" が "male" を内包するため、女性語を塗りつぶしてから男性票を数える
	maleVotes := countOccurrences(maskKeywords(normalized, gc.female), gc.male)

	switch {
	case maleVotes > femaleVotes:
		return GenderMale
	case femaleVotes > maleVotes:
		return GenderFemale
	default:
		return GenderUnknown
	}
}

func countOccurrences(text string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += strings.Count(text, kw)
	}
	return total
}

func maskKeywords(text string, keywords []string) string {
	for _, kw := range keywords {
		text = strings.ReplaceAll(text, kw, maskedRune)
	}
	return text
}
