package content

// kana returns one kana Entry. All kana share the same shape: no readings,
// romaji as the meaning, a single example word as the lone sentence.
func kana(id, character, romaji string, strokes int, example, category, word, wordRomaji, wordEnglish string) Entry {
	return Entry{
		ID:        id,
		Character: character,
		Meaning:   []string{romaji},
		Strokes:   strokes,
		Level:     LevelKana,
		Example:   example,
		Category:  category,
		Sentences: []Sentence{{Text: word, Romaji: wordRomaji, English: wordEnglish}},
	}
}

const (
	hiragana1 = "Hiragana 1: A - So"
	hiragana2 = "Hiragana 2: Ta - N"
	katakana1 = "Katakana 1: A - So"
)

var kanaEntries = []Entry{
	// Hiragana, a through so
	kana("h-a", "あ", "a", 3, "あり (Ant)", hiragana1, "あり", "ari", "Ant"),
	kana("h-i", "い", "i", 2, "い (Stomach)", hiragana1, "い", "i", "Stomach"),
	kana("h-u", "う", "u", 2, "うえ (Up)", hiragana1, "うえ", "ue", "Up / Above"),
	kana("h-e", "え", "e", 2, "え (Picture)", hiragana1, "え", "e", "Picture"),
	kana("h-o", "お", "o", 3, "おい (Nephew)", hiragana1, "おい", "oi", "Nephew"),
	kana("h-ka", "か", "ka", 3, "か (Mosquito)", hiragana1, "か", "ka", "Mosquito"),
	kana("h-ki", "き", "ki", 3, "き (Tree)", hiragana1, "き", "ki", "Tree"),
	kana("h-ku", "く", "ku", 1, "く (Nine)", hiragana1, "く", "ku", "Nine"),
	kana("h-ke", "け", "ke", 3, "け (Hair)", hiragana1, "け", "ke", "Hair / Fur"),
	kana("h-ko", "こ", "ko", 2, "こ (Child)", hiragana1, "こ", "ko", "Child"),
	kana("h-sa", "さ", "sa", 2, "さけ (Salmon)", hiragana1, "さけ", "sake", "Salmon"),
	kana("h-shi", "し", "shi", 1, "し (Four)", hiragana1, "し", "shi", "Four"),
	kana("h-su", "す", "su", 2, "す (Vinegar)", hiragana1, "す", "su", "Vinegar"),
	kana("h-se", "せ", "se", 3, "せ (Back)", hiragana1, "せ", "se", "Back (body)"),
	kana("h-so", "そ", "so", 1, "そと (Outside)", hiragana1, "そと", "soto", "Outside"),

	// Hiragana, ta through n
	kana("h-ta", "た", "ta", 4, "たこ (Octopus)", hiragana2, "たこ", "tako", "Octopus"),
	kana("h-chi", "ち", "chi", 2, "ち (Blood)", hiragana2, "ち", "chi", "Blood"),
	kana("h-tsu", "つ", "tsu", 1, "つき (Moon)", hiragana2, "つき", "tsuki", "Moon"),
	kana("h-te", "て", "te", 1, "て (Hand)", hiragana2, "て", "te", "Hand"),
	kana("h-to", "と", "to", 2, "と (Door)", hiragana2, "と", "to", "Door"),
	kana("h-na", "な", "na", 4, "なつ (Summer)", hiragana2, "なつ", "natsu", "Summer"),
	kana("h-ni", "に", "ni", 3, "にく (Meat)", hiragana2, "にく", "niku", "Meat"),
	kana("h-nu", "ぬ", "nu", 2, "ぬの (Cloth)", hiragana2, "ぬの", "nuno", "Cloth"),
	kana("h-ne", "ね", "ne", 2, "ねこ (Cat)", hiragana2, "ねこ", "neko", "Cat"),
	kana("h-no", "の", "no", 1, "のり (Seaweed)", hiragana2, "のり", "nori", "Seaweed"),
	kana("h-ha", "は", "ha", 3, "はな (Flower)", hiragana2, "はな", "hana", "Flower"),
	kana("h-ma", "ま", "ma", 3, "まち (Town)", hiragana2, "まち", "machi", "Town"),
	kana("h-ya", "や", "ya", 3, "やま (Mountain)", hiragana2, "やま", "yama", "Mountain"),
	kana("h-ra", "ら", "ra", 2, "らいおん (Lion)", hiragana2, "らいおん", "raion", "Lion"),
	kana("h-wa", "わ", "wa", 2, "わたし (I)", hiragana2, "わたし", "watashi", "I / Me"),
	kana("h-n", "ん", "n", 1, "ほん (Book)", hiragana2, "ほん", "hon", "Book"),

	// Katakana, a through so
	kana("k-a", "ア", "a", 2, "ア (A)", katakana1, "アメリカ", "Amerika", "America"),
	kana("k-i", "イ", "i", 2, "イ (I)", katakana1, "インク", "Inku", "Ink"),
	kana("k-u", "ウ", "u", 3, "ウ (U)", katakana1, "ウール", "Uuru", "Wool"),
	kana("k-e", "エ", "e", 3, "エ (E)", katakana1, "エレベーター", "Erebeetaa", "Elevator"),
	kana("k-o", "オ", "o", 3, "オ (O)", katakana1, "オレンジ", "Orenji", "Orange"),
	kana("k-ka", "カ", "ka", 2, "カ (Ka)", katakana1, "カメラ", "Kamera", "Camera"),
	kana("k-ki", "キ", "ki", 3, "キ (Ki)", katakana1, "キロ", "Kiro", "Kilo"),
	kana("k-ku", "ク", "ku", 2, "ク (Ku)", katakana1, "クラス", "Kurasu", "Class"),
	kana("k-ke", "ケ", "ke", 3, "ケ (Ke)", katakana1, "ケーキ", "Keeki", "Cake"),
	kana("k-ko", "コ", "ko", 2, "コ (Ko)", katakana1, "コーヒー", "Koohii", "Coffee"),
	kana("k-sa", "サ", "sa", 3, "サ (Sa)", katakana1, "サッカー", "Sakkaa", "Soccer"),
	kana("k-shi", "シ", "shi", 3, "シ (Shi)", katakana1, "シャツ", "Shatsu", "Shirt"),
	kana("k-su", "ス", "su", 2, "ス (Su)", katakana1, "スキー", "Sukii", "Ski"),
	kana("k-se", "セ", "se", 2, "セ (Se)", katakana1, "セーター", "Seetaa", "Sweater"),
	kana("k-so", "ソ", "so", 2, "ソ (So)", katakana1, "ソックス", "Sokkusu", "Socks"),
}
