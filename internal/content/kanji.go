package content

// kanjiEntries is the bundled N5 kanji corpus, grouped by chapter.
var kanjiEntries = []Entry{
	// Chapter 1: Numbers
	{
		ID: "1", Character: "一", Onyomi: []string{"ichi"}, Kunyomi: []string{"hito(tsu)"},
		Meaning: []string{"One"}, Strokes: 1, Level: LevelN5,
		Example: "一つ (Hitotsu)", Category: "Chapter 1: Numbers",
		Sentences: []Sentence{
			{Text: "リンゴを一つください。", Romaji: "Ringo o hitotsu kudasai.", English: "Please give me one apple."},
			{Text: "一分待ちます。", Romaji: "Ippun machimasu.", English: "I will wait for one minute."},
		},
	},
	{
		ID: "2", Character: "二", Onyomi: []string{"ni"}, Kunyomi: []string{"futa(tsu)"},
		Meaning: []string{"Two"}, Strokes: 2, Level: LevelN5,
		Example: "二月 (Nigatsu)", Category: "Chapter 1: Numbers",
		Sentences: []Sentence{
			{Text: "二時に会いましょう。", Romaji: "Niji ni aimashou.", English: "Let's meet at 2 o'clock."},
			{Text: "これは二千円です。", Romaji: "Kore wa nisen-en desu.", English: "This is 2000 yen."},
		},
	},
	{
		ID: "3", Character: "三", Onyomi: []string{"san"}, Kunyomi: []string{"mit(tsu)"},
		Meaning: []string{"Three"}, Strokes: 3, Level: LevelN5,
		Example: "三日 (Mikka)", Category: "Chapter 1: Numbers",
		Sentences: []Sentence{
			{Text: "三月三日はひな祭りです。", Romaji: "Sangatsu mikka wa hinamatsuri desu.", English: "March 3rd is the Doll Festival."},
		},
	},
	{
		ID: "4", Character: "四", Onyomi: []string{"shi"}, Kunyomi: []string{"yon", "yot(tsu)"},
		Meaning: []string{"Four"}, Strokes: 5, Level: LevelN5,
		Example: "四月 (Shigatsu)", Category: "Chapter 1: Numbers",
		Sentences: []Sentence{
			{Text: "四人の学生がいます。", Romaji: "Yonin no gakusei ga imasu.", English: "There are four students."},
		},
	},
	{
		ID: "5", Character: "五", Onyomi: []string{"go"}, Kunyomi: []string{"itsu(tsu)"},
		Meaning: []string{"Five"}, Strokes: 4, Level: LevelN5,
		Example: "五円 (Goen)", Category: "Chapter 1: Numbers",
		Sentences: []Sentence{
			{Text: "五つ数えてください。", Romaji: "Itsutsu kazoete kudasai.", English: "Please count to five."},
		},
	},
	{
		ID: "10", Character: "十", Onyomi: []string{"juu"}, Kunyomi: []string{"tou"},
		Meaning: []string{"Ten"}, Strokes: 2, Level: LevelN5,
		Example: "十 (Juu)", Category: "Chapter 1: Numbers",
		Sentences: []Sentence{
			{Text: "十分休憩しましょう。", Romaji: "Juppun kyuukei shimashou.", English: "Let's take a 10-minute break."},
		},
	},

	// Chapter 2: Time & Nature
	{
		ID: "11", Character: "日", Onyomi: []string{"nichi", "jitsu"}, Kunyomi: []string{"hi", "ka"},
		Meaning: []string{"Sun", "Day"}, Strokes: 4, Level: LevelN5,
		Example: "日曜日 (Nichiyoubi)", Category: "Chapter 2: Time & Nature",
		Sentences: []Sentence{
			{Text: "今日はいい日ですね。", Romaji: "Kyou wa ii hi desu ne.", English: "Today is a nice day, isn't it?"},
			{Text: "日曜日にテニスをします。", Romaji: "Nichiyoubi ni tenisu o shimasu.", English: "I play tennis on Sunday."},
		},
	},
	{
		ID: "12", Character: "月", Onyomi: []string{"getsu", "gatsu"}, Kunyomi: []string{"tsuki"},
		Meaning: []string{"Moon", "Month"}, Strokes: 4, Level: LevelN5,
		Example: "月曜日 (Getsuyoubi)", Category: "Chapter 2: Time & Nature",
		Sentences: []Sentence{
			{Text: "月が綺麗です。", Romaji: "Tsuki ga kirei desu.", English: "The moon is beautiful."},
			{Text: "来月、日本へ行きます。", Romaji: "Raigetsu, Nihon e ikimasu.", English: "I will go to Japan next month."},
		},
	},
	{
		ID: "15", Character: "木", Onyomi: []string{"moku"}, Kunyomi: []string{"ki"},
		Meaning: []string{"Tree"}, Strokes: 4, Level: LevelN5,
		Example: "木曜日 (Mokuyoubi)", Category: "Chapter 2: Time & Nature",
		Sentences: []Sentence{
			{Text: "木の下で本を読みます。", Romaji: "Ki no shita de hon o yomimasu.", English: "I read a book under the tree."},
		},
	},
	{
		ID: "18", Character: "山", Onyomi: []string{"san"}, Kunyomi: []string{"yama"},
		Meaning: []string{"Mountain"}, Strokes: 3, Level: LevelN5,
		Example: "富士山 (Fujisan)", Category: "Chapter 2: Time & Nature",
		Sentences: []Sentence{
			{Text: "山登りが好きです。", Romaji: "Yamanobori ga suki desu.", English: "I like mountain climbing."},
		},
	},
	{
		ID: "19", Character: "川", Onyomi: []string{"sen"}, Kunyomi: []string{"kawa"},
		Meaning: []string{"River"}, Strokes: 3, Level: LevelN5,
		Example: "川 (Kawa)", Category: "Chapter 2: Time & Nature",
		Sentences: []Sentence{
			{Text: "この川は長いです。", Romaji: "Kono kawa wa nagai desu.", English: "This river is long."},
		},
	},

	// Chapter 3: Directions
	{
		ID: "30", Character: "北", Onyomi: []string{"hoku"}, Kunyomi: []string{"kita"},
		Meaning: []string{"North"}, Strokes: 5, Level: LevelN5,
		Example: "北 (Kita)", Category: "Chapter 3: Directions",
		Sentences: []Sentence{
			{Text: "北風が寒いです。", Romaji: "Kitakaze ga samui desu.", English: "The north wind is cold."},
		},
	},
	{
		ID: "34", Character: "上", Onyomi: []string{"jou"}, Kunyomi: []string{"ue"},
		Meaning: []string{"Up", "Above"}, Strokes: 3, Level: LevelN5,
		Example: "上 (Ue)", Category: "Chapter 3: Directions",
		Sentences: []Sentence{
			{Text: "テーブルの上に猫がいます。", Romaji: "Teeburu no ue ni neko ga imasu.", English: "There is a cat on the table."},
		},
	},
	{
		ID: "35", Character: "下", Onyomi: []string{"ka", "ge"}, Kunyomi: []string{"shita"},
		Meaning: []string{"Down", "Below"}, Strokes: 3, Level: LevelN5,
		Example: "下 (Shita)", Category: "Chapter 3: Directions",
		Sentences: []Sentence{
			{Text: "椅子の下にカバンがあります。", Romaji: "Isu no shita ni kaban ga arimasu.", English: "There is a bag under the chair."},
		},
	},
	{
		ID: "36", Character: "中", Onyomi: []string{"chuu"}, Kunyomi: []string{"naka"},
		Meaning: []string{"Inside", "Middle"}, Strokes: 4, Level: LevelN5,
		Example: "中 (Naka)", Category: "Chapter 3: Directions",
		Sentences: []Sentence{
			{Text: "箱の中を見てください。", Romaji: "Hako no naka o mite kudasai.", English: "Please look inside the box."},
			{Text: "田中さんはいますか。", Romaji: "Tanaka-san wa imasu ka.", English: "Is Mr. Tanaka here?"},
		},
	},

	// Chapter 4: People & School
	{
		ID: "40", Character: "人", Onyomi: []string{"jin", "nin"}, Kunyomi: []string{"hito"},
		Meaning: []string{"Person"}, Strokes: 2, Level: LevelN5,
		Example: "日本人 (Nihonjin)", Category: "Chapter 4: People & School",
		Sentences: []Sentence{
			{Text: "あの人は誰ですか。", Romaji: "Ano hito wa dare desu ka.", English: "Who is that person?"},
			{Text: "三人の学生が来ました。", Romaji: "Sannin no gakusei ga kimashita.", English: "Three students came."},
		},
	},
	{
		ID: "44", Character: "学", Onyomi: []string{"gaku"}, Kunyomi: []string{"mana(bu)"},
		Meaning: []string{"Study"}, Strokes: 8, Level: LevelN5,
		Example: "学生 (Gakusei)", Category: "Chapter 4: People & School",
		Sentences: []Sentence{
			{Text: "日本語を学びます。", Romaji: "Nihongo o manabimasu.", English: "I study Japanese."},
			{Text: "大学へ行きます。", Romaji: "Daigaku e ikimasu.", English: "I go to university."},
		},
	},
	{
		ID: "45", Character: "校", Onyomi: []string{"kou"}, Kunyomi: []string{"-"},
		Meaning: []string{"School"}, Strokes: 10, Level: LevelN5,
		Example: "学校 (Gakkou)", Category: "Chapter 4: People & School",
		Sentences: []Sentence{
			{Text: "学校は八時に始まります。", Romaji: "Gakkou wa hachiji ni hajimarimasu.", English: "School starts at 8 o'clock."},
		},
	},
	{
		ID: "46", Character: "先", Onyomi: []string{"sen"}, Kunyomi: []string{"saki"},
		Meaning: []string{"Before", "Ahead"}, Strokes: 6, Level: LevelN5,
		Example: "先生 (Sensei)", Category: "Chapter 4: People & School",
		Sentences: []Sentence{
			{Text: "先生、質問があります。", Romaji: "Sensei, shitsumon ga arimasu.", English: "Teacher, I have a question."},
			{Text: "お先に失礼します。", Romaji: "Osaki ni shitsurei shimasu.", English: "Excuse me for leaving first."},
		},
	},
	{
		ID: "48", Character: "本", Onyomi: []string{"hon"}, Kunyomi: []string{"moto"},
		Meaning: []string{"Book", "Origin"}, Strokes: 5, Level: LevelN5,
		Example: "日本 (Nihon)", Category: "Chapter 4: People & School",
		Sentences: []Sentence{
			{Text: "これは私の本です。", Romaji: "Kore wa watashi no hon desu.", English: "This is my book."},
			{Text: "日本に行きたいです。", Romaji: "Nihon ni ikitai desu.", English: "I want to go to Japan."},
		},
	},

	// Chapter 5: Verbs
	{
		ID: "60", Character: "行", Onyomi: []string{"kou"}, Kunyomi: []string{"i(ku)"},
		Meaning: []string{"Go"}, Strokes: 6, Level: LevelN5,
		Example: "行きます (Ikimasu)", Category: "Chapter 5: Verbs",
		Sentences: []Sentence{
			{Text: "明日、東京へ行きます。", Romaji: "Ashita, Toukyou e ikimasu.", English: "I will go to Tokyo tomorrow."},
		},
	},
	{
		ID: "62", Character: "食", Onyomi: []string{"shoku"}, Kunyomi: []string{"ta(beru)"},
		Meaning: []string{"Eat"}, Strokes: 9, Level: LevelN5,
		Example: "食べ物 (Tabemono)", Category: "Chapter 5: Verbs",
		Sentences: []Sentence{
			{Text: "寿司を食べます。", Romaji: "Sushi o tabemasu.", English: "I eat sushi."},
			{Text: "食堂はどこですか。", Romaji: "Shokudou wa doko desu ka.", English: "Where is the cafeteria?"},
		},
	},
	{
		ID: "63", Character: "飲", Onyomi: []string{"in"}, Kunyomi: []string{"no(mu)"},
		Meaning: []string{"Drink"}, Strokes: 12, Level: LevelN5,
		Example: "飲みます (Nomimasu)", Category: "Chapter 5: Verbs",
		Sentences: []Sentence{
			{Text: "水を飲んでください。", Romaji: "Mizu o nonde kudasai.", English: "Please drink water."},
		},
	},
	{
		ID: "64", Character: "見", Onyomi: []string{"ken"}, Kunyomi: []string{"mi(ru)"},
		Meaning: []string{"See"}, Strokes: 7, Level: LevelN5,
		Example: "見ます (Mimasu)", Category: "Chapter 5: Verbs",
		Sentences: []Sentence{
			{Text: "映画を見ました。", Romaji: "Eiga o mimashita.", English: "I saw a movie."},
		},
	},
}
