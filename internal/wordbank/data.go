package wordbank

// Built-in word sets. Kept small on purpose: each level needs at least 4
// words so the quiz builder can form 3 distractors per question.
var builtinLanguages = []Language{
	{
		Code:       "en",
		Name:       "English",
		NativeName: "English",
		Flag:       "🇺🇸",
		Levels: []Level{
			{
				ID:          "en-beginner",
				Name:        "First Words",
				Emoji:       "🌱",
				Description: "Everyday basics",
				Tier:        TierBeginner,
				Words: []Word{
					{ID: "en-b-1", Word: "apple", Translation: "яблоко", Example: "I eat an apple every day.", ExampleTranslation: "Я ем яблоко каждый день.", Tier: TierBeginner},
					{ID: "en-b-2", Word: "house", Translation: "дом", Example: "Our house is big.", ExampleTranslation: "Наш дом большой.", Tier: TierBeginner},
					{ID: "en-b-3", Word: "water", Translation: "вода", Example: "Please drink some water.", ExampleTranslation: "Пожалуйста, выпей воды.", Tier: TierBeginner},
					{ID: "en-b-4", Word: "sun", Translation: "солнце", Example: "The sun is bright today.", ExampleTranslation: "Сегодня солнце яркое.", Tier: TierBeginner},
					{ID: "en-b-5", Word: "book", Translation: "книга", Example: "She reads a book at night.", ExampleTranslation: "Она читает книгу ночью.", Tier: TierBeginner},
					{ID: "en-b-6", Word: "cat", Translation: "кошка", Example: "The cat sleeps on the chair.", ExampleTranslation: "Кошка спит на стуле.", Tier: TierBeginner},
					{ID: "en-b-7", Word: "friend", Translation: "друг", Example: "He is my best friend.", ExampleTranslation: "Он мой лучший друг.", Tier: TierBeginner},
					{ID: "en-b-8", Word: "school", Translation: "школа", Example: "We walk to school together.", ExampleTranslation: "Мы идём в школу вместе.", Tier: TierBeginner},
				},
			},
			{
				ID:          "en-intermediate",
				Name:        "Growing Up",
				Emoji:       "🌿",
				Description: "School and daily life",
				Tier:        TierIntermediate,
				Words: []Word{
					{ID: "en-i-1", Word: "journey", Translation: "путешествие", Example: "The journey took three hours.", ExampleTranslation: "Путешествие заняло три часа.", Tier: TierIntermediate},
					{ID: "en-i-2", Word: "weather", Translation: "погода", Example: "The weather is cold in winter.", ExampleTranslation: "Зимой погода холодная.", Tier: TierIntermediate},
					{ID: "en-i-3", Word: "library", Translation: "библиотека", Example: "The library opens at nine.", ExampleTranslation: "Библиотека открывается в девять.", Tier: TierIntermediate},
					{ID: "en-i-4", Word: "breakfast", Translation: "завтрак", Example: "Breakfast is ready.", ExampleTranslation: "Завтрак готов.", Tier: TierIntermediate},
					{ID: "en-i-5", Word: "mountain", Translation: "гора", Example: "We climbed the mountain.", ExampleTranslation: "Мы поднялись на гору.", Tier: TierIntermediate},
					{ID: "en-i-6", Word: "science", Translation: "наука", Example: "Science class is fun.", ExampleTranslation: "Урок науки интересный.", Tier: TierIntermediate},
				},
			},
			{
				ID:          "en-advanced",
				Name:        "Word Master",
				Emoji:       "🌳",
				Description: "Rich and rare words",
				Tier:        TierAdvanced,
				Words: []Word{
					{ID: "en-a-1", Word: "curious", Translation: "любопытный", Example: "She is curious about stars.", ExampleTranslation: "Ей любопытны звёзды.", Tier: TierAdvanced},
					{ID: "en-a-2", Word: "courage", Translation: "смелость", Example: "It takes courage to try.", ExampleTranslation: "Нужна смелость, чтобы попробовать.", Tier: TierAdvanced},
					{ID: "en-a-3", Word: "ancient", Translation: "древний", Example: "We saw an ancient castle.", ExampleTranslation: "Мы видели древний замок.", Tier: TierAdvanced},
					{ID: "en-a-4", Word: "whisper", Translation: "шептать", Example: "They whisper in the library.", ExampleTranslation: "Они шепчутся в библиотеке.", Tier: TierAdvanced},
					{ID: "en-a-5", Word: "distant", Translation: "далёкий", Example: "A distant ship appeared.", ExampleTranslation: "Появился далёкий корабль.", Tier: TierAdvanced},
					{ID: "en-a-6", Word: "gather", Translation: "собирать", Example: "We gather berries in summer.", ExampleTranslation: "Летом мы собираем ягоды.", Tier: TierAdvanced},
				},
			},
		},
	},
	{
		Code:       "ru",
		Name:       "Russian",
		NativeName: "русский",
		Flag:       "🇷🇺",
		Levels: []Level{
			{
				ID:          "ru-beginner",
				Name:        "Первые слова",
				Emoji:       "🌱",
				Description: "Everyday basics",
				Tier:        TierBeginner,
				Words: []Word{
					{ID: "ru-b-1", Word: "хлеб", Translation: "bread", Example: "Мы покупаем хлеб утром.", ExampleTranslation: "We buy bread in the morning.", Tier: TierBeginner},
					{ID: "ru-b-2", Word: "молоко", Translation: "milk", Example: "Кот пьёт молоко.", ExampleTranslation: "The cat drinks milk.", Tier: TierBeginner},
					{ID: "ru-b-3", Word: "собака", Translation: "dog", Example: "Собака бежит в парк.", ExampleTranslation: "The dog runs to the park.", Tier: TierBeginner},
					{ID: "ru-b-4", Word: "окно", Translation: "window", Example: "Окно открыто.", ExampleTranslation: "The window is open.", Tier: TierBeginner},
					{ID: "ru-b-5", Word: "стол", Translation: "table", Example: "Книга лежит на столе.", ExampleTranslation: "The book is on the table.", Tier: TierBeginner},
					{ID: "ru-b-6", Word: "небо", Translation: "sky", Example: "Небо сегодня голубое.", ExampleTranslation: "The sky is blue today.", Tier: TierBeginner},
				},
			},
			{
				ID:          "ru-intermediate",
				Name:        "Растём вместе",
				Emoji:       "🌿",
				Description: "School and daily life",
				Tier:        TierIntermediate,
				Words: []Word{
					{ID: "ru-i-1", Word: "расписание", Translation: "schedule", Example: "Расписание висит на стене.", ExampleTranslation: "The schedule hangs on the wall.", Tier: TierIntermediate},
					{ID: "ru-i-2", Word: "праздник", Translation: "holiday", Example: "Завтра большой праздник.", ExampleTranslation: "Tomorrow is a big holiday.", Tier: TierIntermediate},
					{ID: "ru-i-3", Word: "путешествие", Translation: "journey", Example: "Путешествие начинается утром.", ExampleTranslation: "The journey starts in the morning.", Tier: TierIntermediate},
					{ID: "ru-i-4", Word: "рисунок", Translation: "drawing", Example: "Её рисунок висит в классе.", ExampleTranslation: "Her drawing hangs in the classroom.", Tier: TierIntermediate},
					{ID: "ru-i-5", Word: "зеркало", Translation: "mirror", Example: "Зеркало висит в коридоре.", ExampleTranslation: "The mirror hangs in the hallway.", Tier: TierIntermediate},
				},
			},
			{
				ID:          "ru-advanced",
				Name:        "Мастер слова",
				Emoji:       "🌳",
				Description: "Rich and rare words",
				Tier:        TierAdvanced,
				Words: []Word{
					{ID: "ru-a-1", Word: "вдохновение", Translation: "inspiration", Example: "Музыка даёт вдохновение.", ExampleTranslation: "Music gives inspiration.", Tier: TierAdvanced},
					{ID: "ru-a-2", Word: "смелость", Translation: "courage", Example: "Смелость помогает учиться.", ExampleTranslation: "Courage helps you learn.", Tier: TierAdvanced},
					{ID: "ru-a-3", Word: "любопытный", Translation: "curious", Example: "Любопытный ребёнок задаёт вопросы.", ExampleTranslation: "A curious child asks questions.", Tier: TierAdvanced},
					{ID: "ru-a-4", Word: "шептать", Translation: "whisper", Example: "Нельзя шептать на уроке.", ExampleTranslation: "No whispering in class.", Tier: TierAdvanced},
					{ID: "ru-a-5", Word: "древний", Translation: "ancient", Example: "Это древний город.", ExampleTranslation: "This is an ancient city.", Tier: TierAdvanced},
				},
			},
		},
	},
	{
		Code:       "ky",
		Name:       "Kyrgyz",
		NativeName: "кыргыз",
		Flag:       "🇰🇬",
		Levels: []Level{
			{
				ID:          "ky-beginner",
				Name:        "Алгачкы сөздөр",
				Emoji:       "🌱",
				Description: "Everyday basics",
				Tier:        TierBeginner,
				Words: []Word{
					{ID: "ky-b-1", Word: "нан", Translation: "bread", Example: "Нан дасторкондо.", ExampleTranslation: "The bread is on the table.", Tier: TierBeginner},
					{ID: "ky-b-2", Word: "суу", Translation: "water", Example: "Суу таза.", ExampleTranslation: "The water is clean.", Tier: TierBeginner},
					{ID: "ky-b-3", Word: "китеп", Translation: "book", Example: "Китеп кызыктуу.", ExampleTranslation: "The book is interesting.", Tier: TierBeginner},
					{ID: "ky-b-4", Word: "мектеп", Translation: "school", Example: "Мектеп жакын.", ExampleTranslation: "The school is near.", Tier: TierBeginner},
					{ID: "ky-b-5", Word: "күн", Translation: "sun", Example: "Күн жаркырап турат.", ExampleTranslation: "The sun is shining.", Tier: TierBeginner},
				},
			},
			{
				ID:          "ky-intermediate",
				Name:        "Чоңоюп жатабыз",
				Emoji:       "🌿",
				Description: "School and daily life",
				Tier:        TierIntermediate,
				Words: []Word{
					{ID: "ky-i-1", Word: "саякат", Translation: "journey", Example: "Саякат эртең башталат.", ExampleTranslation: "The journey starts tomorrow.", Tier: TierIntermediate},
					{ID: "ky-i-2", Word: "майрам", Translation: "holiday", Example: "Бүгүн майрам.", ExampleTranslation: "Today is a holiday.", Tier: TierIntermediate},
					{ID: "ky-i-3", Word: "аба ырайы", Translation: "weather", Example: "Аба ырайы жакшы.", ExampleTranslation: "The weather is good.", Tier: TierIntermediate},
					{ID: "ky-i-4", Word: "тоо", Translation: "mountain", Example: "Тоо бийик.", ExampleTranslation: "The mountain is tall.", Tier: TierIntermediate},
					{ID: "ky-i-5", Word: "достук", Translation: "friendship", Example: "Достук баалуу.", ExampleTranslation: "Friendship is precious.", Tier: TierIntermediate},
				},
			},
			{
				ID:          "ky-advanced",
				Name:        "Сөз чебери",
				Emoji:       "🌳",
				Description: "Rich and rare words",
				Tier:        TierAdvanced,
				Words: []Word{
					{ID: "ky-a-1", Word: "кайраттуулук", Translation: "courage", Example: "Кайраттуулук керек.", ExampleTranslation: "Courage is needed.", Tier: TierAdvanced},
					{ID: "ky-a-2", Word: "шыктануу", Translation: "inspiration", Example: "Музыка шыктануу берет.", ExampleTranslation: "Music gives inspiration.", Tier: TierAdvanced},
					{ID: "ky-a-3", Word: "байыркы", Translation: "ancient", Example: "Бул байыркы шаар.", ExampleTranslation: "This is an ancient city.", Tier: TierAdvanced},
					{ID: "ky-a-4", Word: "шыбыроо", Translation: "whisper", Example: "Сабакта шыбыроого болбойт.", ExampleTranslation: "No whispering in class.", Tier: TierAdvanced},
					{ID: "ky-a-5", Word: "алыскы", Translation: "distant", Example: "Алыскы айыл көрүндү.", ExampleTranslation: "A distant village appeared.", Tier: TierAdvanced},
				},
			},
		},
	},
}
