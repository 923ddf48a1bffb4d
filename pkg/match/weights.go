package match

// Weights はスコアリングの全定数を1か所に集めたテーブルです。
// 値は既存挙動との互換性を目標に経験的に調整されたもので、制御フローを
// 触らずにチューニングできるよう構造体として公開しています。
//
// 序列の意図：カテゴリ特徴（髪・瞳・衣装）の一致は汎用キーワードの重なりを
// 常に支配し、顕著な属性での確信的な不一致（性別・髪色）のペナルティは
// 対応する一致ボーナスより大きくしてあります。
type Weights struct {
	GenderMatch    float64 // 性別が両者で判定でき、一致
	GenderConflict float64 // 性別が両者で判定でき、相違

	HairColorMatch     float64 // 一致した髪色1語あたり
	HairColorConflict  float64 // 双方に髪色があり、共通なし
	HairStyleMatch     float64 // 一致した髪型1語あたり
	EyeColorMatch      float64 // 一致した瞳色1語あたり
	EyeColorConflict   float64 // 双方に瞳色があり、共通なし
	ClothColorMatch    float64 // 一致した衣装色1語あたり
	ClothColorConflict float64 // 双方に衣装色があり、共通なし
	ClothTypeMatch     float64 // 一致した衣装種別1語あたり

	EraBonus float64 // 時代区分が両者で判定でき、一致（意図的に低優先）

	KeywordFactor float64 // 汎用キーワード重なりの弱め係数
	MinScore      float64 // Ranker の足切りしきい値（これを超えた候補のみ残す）
}

// DefaultWeights は既定の重みテーブルを返します。
func DefaultWeights() Weights {
	return Weights{
		GenderMatch:    50,
		GenderConflict: -150,

		HairColorMatch:     50,
		HairColorConflict:  -80,
		HairStyleMatch:     35,
		EyeColorMatch:      40,
		EyeColorConflict:   -30,
		ClothColorMatch:    30,
		ClothColorConflict: -25,
		ClothTypeMatch:     30,

		EraBonus: 5,

		KeywordFactor: 0.3,
		MinScore:      15,
	}
}

// DefaultTopK は候補リストモードの既定の結果件数です。
const DefaultTopK = 5
