// Package grammar holds the static N5 grammar reference.
package grammar

// Example is one usage example of a grammar point.
type Example struct {
	Japanese string
	Romaji   string
	English  string
}

// Point is one grammar point: a particle or verb form with its usage pattern.
type Point struct {
	ID          string
	Title       string
	Description string
	Structure   string
	Examples    []Example
}

// Section groups related grammar points.
type Section struct {
	Title  string
	Points []Point
}

// Sections returns the full grammar reference in display order.
func Sections() []Section {
	return sections
}

var sections = []Section{
	{
		Title: "Particles",
		Points: []Point{
			{
				ID:          "wa",
				Title:       "は (Wa) - Topic Marker",
				Description: "Marks the topic of the sentence. It tells the listener what you are talking about. Pronounced 'wa' when used as a particle.",
				Structure:   "[Topic] は [Comment]",
				Examples: []Example{
					{Japanese: "私は田中です。", Romaji: "Watashi wa Tanaka desu.", English: "I am Tanaka."},
					{Japanese: "これはペンです。", Romaji: "Kore wa pen desu.", English: "This is a pen."},
				},
			},
			{
				ID:          "ka",
				Title:       "か (Ka) - Question Marker",
				Description: "Added to the end of a sentence to turn it into a question. Works like a question mark.",
				Structure:   "[Sentence] か。",
				Examples: []Example{
					{Japanese: "あなたは学生ですか。", Romaji: "Anata wa gakusei desu ka.", English: "Are you a student?"},
					{Japanese: "これは何ですか。", Romaji: "Kore wa nan desu ka.", English: "What is this?"},
				},
			},
			{
				ID:          "no",
				Title:       "の (No) - Possession",
				Description: "Connects two nouns. Usually indicates possession (like 's in English) or modifies the second noun.",
				Structure:   "[Noun 1] の [Noun 2]",
				Examples: []Example{
					{Japanese: "私の本", Romaji: "Watashi no hon", English: "My book"},
					{Japanese: "日本語の先生", Romaji: "Nihongo no sensei", English: "Japanese teacher"},
				},
			},
			{
				ID:          "wo",
				Title:       "を (Wo/O) - Object Marker",
				Description: "Marks the direct object of a verb. It indicates 'what' receives the action.",
				Structure:   "[Object] を [Verb]",
				Examples: []Example{
					{Japanese: "寿司を食べます。", Romaji: "Sushi o tabemasu.", English: "I eat sushi."},
					{Japanese: "水を飲みます。", Romaji: "Mizu o nomimasu.", English: "I drink water."},
				},
			},
			{
				ID:          "ni",
				Title:       "に (Ni) - Time / Target / Destination",
				Description: "Indicates specific time, the target of an action, or a destination (movement towards).",
				Structure:   "[Time/Place] に [Verb]",
				Examples: []Example{
					{Japanese: "６時に起きます。", Romaji: "Rokuji ni okimasu.", English: "I wake up at 6 o'clock."},
					{Japanese: "東京に行きます。", Romaji: "Toukyou ni ikimasu.", English: "I go to Tokyo."},
					{Japanese: "友達に会います。", Romaji: "Tomodachi ni aimasu.", English: "I meet a friend."},
				},
			},
			{
				ID:          "de",
				Title:       "で (De) - Place of Action / Means",
				Description: "Indicates WHERE an action takes place, or HOW (by what means) something is done.",
				Structure:   "[Place/Tool] で [Verb]",
				Examples: []Example{
					{Japanese: "学校で勉強します。", Romaji: "Gakkou de benkyou shimasu.", English: "I study at school."},
					{Japanese: "バスで行きます。", Romaji: "Basu de ikimasu.", English: "I go by bus."},
				},
			},
			{
				ID:          "ga",
				Title:       "が (Ga) - Subject Marker",
				Description: "Marks the grammatical subject. Used with 'arimasu/imasu' (existence) and adjectives implying likes/dislikes/skills.",
				Structure:   "[Subject] が [Verb/Adjective]",
				Examples: []Example{
					{Japanese: "猫がいます。", Romaji: "Neko ga imasu.", English: "There is a cat."},
					{Japanese: "私は猫が好きです。", Romaji: "Watashi wa neko ga suki desu.", English: "I like cats."},
				},
			},
		},
	},
	{
		Title: "Essential Verbs",
		Points: []Point{
			{
				ID:          "desu",
				Title:       "です (Desu) - To Be",
				Description: "Functions like 'is', 'am', or 'are'. It is polite.",
				Structure:   "A は B です。",
				Examples: []Example{
					{Japanese: "私は学生です。", Romaji: "Watashi wa gakusei desu.", English: "I am a student."},
					{Japanese: "今日はいい天気です。", Romaji: "Kyou wa ii tenki desu.", English: "The weather is good today."},
				},
			},
			{
				ID:          "arimasu",
				Title:       "あります (Arimasu) - Existence (Inanimate)",
				Description: "Used to say 'there is' or 'have' for non-living things (objects, plants, ideas).",
				Structure:   "[Thing] が あります。",
				Examples: []Example{
					{Japanese: "本があります。", Romaji: "Hon ga arimasu.", English: "There is a book."},
					{Japanese: "時間があります。", Romaji: "Jikan ga arimasu.", English: "I have time."},
				},
			},
			{
				ID:          "imasu",
				Title:       "います (Imasu) - Existence (Living)",
				Description: "Used to say 'there is' or 'have' for living things (people, animals).",
				Structure:   "[Living Thing] が います。",
				Examples: []Example{
					{Japanese: "犬がいます。", Romaji: "Inu ga imasu.", English: "There is a dog."},
					{Japanese: "山田さんがいます。", Romaji: "Yamada-san ga imasu.", English: "Mr. Yamada is here."},
				},
			},
			{
				ID:          "masu",
				Title:       "ます (Masu) - Polite Present/Future",
				Description: "The standard polite ending for verbs. Used for habits or future actions.",
				Structure:   "[Verb Stem] + ます",
				Examples: []Example{
					{Japanese: "毎日、コーヒーを飲みます。", Romaji: "Mainichi, koohii o nomimasu.", English: "I drink coffee every day."},
					{Japanese: "明日、勉強します。", Romaji: "Ashita, benkyou shimasu.", English: "I will study tomorrow."},
				},
			},
			{
				ID:          "mashita",
				Title:       "ました (Mashita) - Polite Past",
				Description: "Past tense of -masu verbs.",
				Structure:   "[Verb Stem] + ました",
				Examples: []Example{
					{Japanese: "昨日、映画を見ました。", Romaji: "Kinou, eiga o mimashita.", English: "I watched a movie yesterday."},
				},
			},
		},
	},
}
