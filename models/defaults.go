package models

// DefaultContent returns the built-in seed document. It is used on first
// start, by reset-to-default, and as the backfill base for full imports.
func DefaultContent() ContentDocument {
	return ContentDocument{
		PageTitle: "Лучшие онлайн-курсы по Python в 2025 году",
		MetaData: MetaData{
			Title:        "ТОП курсов по Python 2025 — рейтинг и сравнение",
			Description:  "Рейтинг онлайн-курсов по Python: цены, программы, отзывы. Сравнение школ и промокоды на скидку.",
			Keywords:     "курсы python, обучение python, рейтинг курсов",
			CanonicalUrl: "https://example.com/",
		},
		HeaderStats: HeaderStats{
			ReviewsCount: "2 400+",
			BadgeText:    "4.8 из 5",
			Subtitle:     "Честный рейтинг на основе отзывов выпускников",
		},
		Author: Author{
			Name:        "Редакция каталога",
			Link:        "#",
			Photo:       "",
			Description: "Мы сравниваем программы, цены и отзывы, чтобы собрать объективный рейтинг.",
		},
		IntroText: "Подборка проверенных курсов: сравнили программы, цены и отзывы выпускников.",
		BeforeTableBlock: BeforeTableBlock{
			Title: "Как мы выбирали курсы",
			Paragraphs: []string{
				"В рейтинг попали школы с подтверждёнными отзывами и открытой программой обучения.",
			},
			Criteria: []ListItem{
				{Icon: "✅", Text: "Реальные отзывы выпускников"},
				{Icon: "💰", Text: "Актуальные цены и рассрочка"},
				{Icon: "📚", Text: "Открытая программа курса"},
			},
		},
		Navigation: []NavItem{
			{Label: "Рейтинг", Href: "#courses"},
			{Label: "FAQ", Href: "#faq"},
		},
		Courses: []Course{
			{
				ID:         1,
				Title:      "Python-разработчик",
				School:     "Пример.Школа",
				SchoolLogo: "",
				Url:        "#",
				Price:      0,
				Format:     "Онлайн",
				Duration:   "6 месяцев",
				Document:   "Сертификат",
				ForWhom:    "Для новичков без опыта в программировании",
				Features:   "Практика на реальных проектах и поддержка наставника.",
				Skills:     []string{"Основы Python", "Работа с базами данных"},
				Advantages: []string{"Помощь с трудоустройством"},
				Reviews:    "",
			},
		},
		ContentBlocks: []ContentBlock{
			{
				Title:      "Как выбрать курс",
				Paragraphs: []string{"Смотрите на программу, преподавателей и формат поддержки."},
				List: []ListItem{
					{Icon: "✅", Text: "Сравните программы нескольких школ"},
				},
			},
		},
		FAQData: []FAQItem{
			{Question: "Можно ли учиться с нуля?", Answer: "Да, большинство курсов рассчитаны на новичков."},
		},
		FooterText:  "Информация на сайте не является публичной офертой.",
		FooterEmail: "info@example.com",
		FooterLinks: []FooterLink{},
		LegalPages: []LegalPage{
			{
				ID:           "legal-privacy",
				Slug:         "privacy",
				Title:        "Политика конфиденциальности",
				ShowInFooter: true,
				Sections: []LegalSection{
					{Title: "1. Общие положения", Content: "Настоящая политика определяет порядок обработки персональных данных."},
				},
			},
		},
		Pages:            []SitePage{},
		UpdatedAt:        "",
		AdDisclosureText: "Реклама. Информация о рекламодателях по ссылкам.",
	}
}
