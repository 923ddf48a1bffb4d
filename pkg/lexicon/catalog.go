package lexicon

import "sort"

// Category は特徴抽出の対象となる属性ファミリーを表します。
type Category string

const (
	HairColor  Category = "hair_color"
	HairStyle  Category = "hair_style"
	EyeColor   Category = "eye_color"
	ClothColor Category = "cloth_color"
	ClothType  Category = "cloth_type"
)

// AllCategories は全カテゴリを走査用の固定順で返します。
func AllCategories() []Category {
	return []Category{HairColor, HairStyle, EyeColor, ClothColor, ClothType}
}

// SynonymSet は正規化語（canonical term）から表層形シノニム集合へのマッピングです。
type SynonymSet map[string][]string

// Catalog はカテゴリ別シノニム辞書と補助シノニム表を保持する読み取り専用の設定オブジェクトです。
// 起動時に一度だけ構築され、以後は複数ゴルーチンから安全に共有できるのだ。
type Catalog struct {
	entries map[Category]SynonymSet
	classes map[string][]string // 表層形 -> 所属する同義クラスIDの一覧
}

// NewCatalog は組み込み辞書から Catalog を構築します。
func NewCatalog() *Catalog {
	c := &Catalog{
		entries: builtinSynonyms,
		classes: make(map[string][]string),
	}

	// 全カテゴリの (canonical, synonym) と補助表から同義クラスの逆引きを組み立てる
	for cat, set := range builtinSynonyms {
		for canonical, synonyms := range set {
			classID := string(cat) + "/" + canonical
			c.addClassMember(classID, canonical)
			for _, s := range synonyms {
				c.addClassMember(classID, s)
			}
		}
	}
	for group, members := range generalSynonyms {
		classID := "general/" + group
		for _, s := range members {
			c.addClassMember(classID, s)
		}
	}
	return c
}

func (c *Catalog) addClassMember(classID, surface string) {
	c.classes[surface] = append(c.classes[surface], classID)
}

// Lookup は指定カテゴリのシノニム辞書を返します。
// 未知のカテゴリについては空のマッピングを返し、エラーにはなりません。
func (c *Catalog) Lookup(cat Category) SynonymSet {
	if set, ok := c.entries[cat]; ok {
		return set
	}
	return SynonymSet{}
}

// Entries は指定カテゴリの (canonical, synonym) ペアを決定的な順序で返します。
// 抽出時の長い表層形優先のマスキングのため、シノニムのバイト長降順で並べるのだ。
func (c *Catalog) Entries(cat Category) []Entry {
	set := c.Lookup(cat)
	entries := make([]Entry, 0, len(set)*4)
	for canonical, synonyms := range set {
		for _, s := range synonyms {
			entries = append(entries, Entry{Canonical: canonical, Surface: s})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Surface) != len(entries[j].Surface) {
			return len(entries[i].Surface) > len(entries[j].Surface)
		}
		if entries[i].Surface != entries[j].Surface {
			return entries[i].Surface < entries[j].Surface
		}
		return entries[i].Canonical < entries[j].Canonical
	})
	return entries
}

// Entry はカテゴリ辞書の1エントリ（正規化語と表層形の組）です。
type Entry struct {
	Canonical string
	Surface   string
}

// SharesClass は2つの表層形が同一の同義クラスに属するかを判定します。
// 全カテゴリ辞書に加え、性別・時代・役柄などの補助シノニム表も横断して参照します。
func (c *Catalog) SharesClass(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	classesA, ok := c.classes[a]
	if !ok {
		return false
	}
	classesB, ok := c.classes[b]
	if !ok {
		return false
	}
	for _, ca := range classesA {
		for _, cb := range classesB {
			if ca == cb {
				return true
			}
		}
	}
	return false
}
