package lexicon

// builtinSynonyms は素材メタデータで頻出する表層形を正規化語へ束ねる組み込み辞書です。
// 表層形はすべて小文字で登録します（照合前にテキスト側も小文字化されるため）。
//
// 同一カテゴリ内では、ある正規化語のシノニムが別の正規化語のシノニムの部分文字列に
// なる場合、抽出側の「長い表層形優先」のマスキングで二重ヒットを防いでいます。
var builtinSynonyms = map[Category]SynonymSet{
	HairColor: {
		"black hair": {"黑发", "黑色头发", "乌发", "乌黑秀发", "黑色长发", "黒髪", "black hair", "dark hair", "raven hair"},
		"white hair": {"白发", "白色头发", "雪白头发", "白髪", "white hair"},
		"silver hair": {"银发", "银色头发", "银白色头发", "銀髪", "silver hair", "gray hair"},
		"blonde hair": {"金发", "金色头发", "金色长发", "金髪", "blonde hair", "golden hair"},
		"red hair": {"红发", "红色头发", "赤发", "赤髪", "red hair", "crimson hair"},
		"blue hair": {"蓝发", "蓝色头发", "蓝色长发", "青髪", "blue hair"},
		"green hair": {"绿发", "绿色头发", "緑髪", "green hair"},
		"purple hair": {"紫发", "紫色头发", "紫髪", "purple hair"},
		"brown hair": {"棕发", "棕色头发", "褐发", "栗色头发", "茶髪", "brown hair"},
	},
	HairStyle: {
		"long hair":     {"长发", "飘逸长发", "ロングヘア", "long hair"},
		"short hair":    {"短发", "ショートヘア", "short hair"},
		"ponytail":      {"马尾", "马尾辫", "ポニーテール", "ponytail"},
		"twin tails":    {"双马尾", "ツインテール", "twin tails", "twintails"},
		"braid":         {"辫子", "麻花辫", "三つ編み", "braid"},
		"hair bun":      {"丸子头", "发髻", "お団子", "hair bun"},
		"curly hair":    {"卷发", "波浪卷", "curly hair", "wavy hair"},
		"straight hair": {"直发", "straight hair"},
		"bangs":         {"刘海", "齐刘海", "bangs"},
	},
	EyeColor: {
		"blue eyes":   {"蓝瞳", "蓝色眼睛", "蓝眸", "碧眼", "blue eyes"},
		"red eyes":    {"红瞳", "红色眼睛", "红眸", "red eyes"},
		"golden eyes": {"金瞳", "金色眼睛", "金眸", "golden eyes"},
		"black eyes":  {"黑瞳", "黑色眼睛", "黑眸", "black eyes"},
		"green eyes":  {"绿瞳", "绿色眼睛", "翠眸", "green eyes"},
		"purple eyes": {"紫瞳", "紫色眼睛", "紫眸", "purple eyes"},
		"brown eyes":  {"棕色眼睛", "褐瞳", "brown eyes"},
	},
	ClothColor: {
		"blue":   {"蓝色", "蓝衣", "天蓝", "湛蓝", "藏青", "blue"},
		"red":    {"红色", "红衣", "大红", "绯红", "red"},
		"black":  {"黑色", "黑衣", "玄色", "black"},
		"white":  {"白色", "白衣", "素白", "white"},
		"green":  {"绿色", "绿衣", "翠绿", "green"},
		"purple": {"紫色", "紫衣", "purple"},
		"gold":   {"金色", "鎏金", "gold"},
		"yellow": {"黄色", "鹅黄", "yellow"},
		"pink":   {"粉色", "粉红", "樱粉", "pink"},
		"silver": {"银色", "silver"},
	},
	ClothType: {
		"dress":   {"连衣裙", "长裙", "短裙", "裙子", "裙装", "dress"},
		"coat":    {"外套", "大衣", "风衣", "coat"},
		"robe":    {"长袍", "道袍", "袍子", "法袍", "robe"},
		"uniform": {"制服", "校服", "水手服", "uniform"},
		"armor":   {"盔甲", "铠甲", "战甲", "armor"},
		"suit":    {"西装", "燕尾服", "suit"},
		"shirt":   {"衬衫", "t恤", "shirt"},
		"hanfu":   {"汉服", "hanfu"},
		"kimono":  {"和服", "浴衣", "kimono"},
		"cloak":   {"披风", "斗篷", "cloak"},
	},
}

// generalSynonyms はカテゴリ辞書に属さない汎用語（性別名詞・時代名詞・役柄名詞など）の
// 同義クラスです。Word Similarity の同義判定でのみ使われます。
var generalSynonyms = map[string][]string{
	"female":    {"女性", "女子", "女生", "少女", "女主", "girl", "woman", "female", "lady"},
	"male":      {"男性", "男子", "男生", "少年", "男主", "boy", "male"},
	"ancient":   {"古风", "古装", "古代", "ancient", "historical"},
	"modern":    {"现代", "都市", "当代", "modern", "contemporary"},
	"princess":  {"公主", "郡主", "princess"},
	"commander": {"将军", "统领", "general"},
	"scholar":   {"书生", "学者", "scholar"},
	"swordsman": {"剑客", "剑士", "swordsman"},
	"witch":     {"巫女", "魔女", "witch"},
	"character": {"角色", "人物", "character"},
	"scene":     {"场景", "背景", "scene", "background"},
}
