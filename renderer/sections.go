package renderer

import (
	"coursepanel/models"
	"strconv"
	"time"
)

const defaultTableTitle = "Рейтинг курсов"
const faqTitle = "Часто задаваемые вопросы"

// headerWave is the decorative divider at the bottom of the header
const headerWave = `<svg viewBox="0 0 1440 80" fill="none" xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="none"><path d="M0 80L60 74.7C120 69.3 240 58.7 360 53.3C480 48 600 48 720 53.3C840 58.7 960 69.3 1080 69.3C1200 69.3 1320 58.7 1380 53.3L1440 48V80H1380C1320 80 1200 80 1080 80C960 80 840 80 720 80C600 80 480 80 360 80C240 80 120 80 60 80H0Z" fill="hsl(210, 40%, 96%)"/></svg>`

// Renderer maps one content document to static HTML/XML text. It is pure:
// the only inputs are the document copy and the injected clock, so the same
// document always renders to the same bytes.
type Renderer struct {
	doc models.ContentDocument
	now func() time.Time
}

// New builds a renderer over a document with the wall clock
func New(doc models.ContentDocument) *Renderer {
	return NewWithClock(doc, time.Now)
}

// NewWithClock builds a renderer with an explicit clock; tests pin it to
// keep the "updated today" fallback and the copyright year deterministic.
func NewWithClock(doc models.ContentDocument, clock func() time.Time) *Renderer {
	return &Renderer{doc: doc, now: clock}
}

func (r *Renderer) updatedLabel() string {
	if r.doc.UpdatedAt != "" {
		return r.doc.UpdatedAt
	}
	return ruDate(r.now())
}

// header renders the hero block; always present on a rendered page
func (r *Renderer) header(pageTitle string, stats models.HeaderStats) string {
	reviews := stats.ReviewsCount
	if reviews == "" {
		reviews = "0"
	}
	return Serialize(
		Comment("Header"),
		El("header", []Attr{A("class", "header")},
			El("div", []Attr{A("class", "header-bg-circle header-bg-circle--top")}),
			El("div", []Attr{A("class", "header-bg-circle header-bg-circle--bottom")}),
			El("div", []Attr{A("class", "header-content container")},
				El("div", []Attr{A("class", "header-badge")},
					El("span", nil, Raw("📅")),
					El("span", nil, Text("Обновлено: "+r.updatedLabel())),
				),
				El("h1", []Attr{A("class", "header-title")}, Text(pageTitle)),
				El("p", []Attr{A("class", "header-subtitle")}, Text(stats.Subtitle)),
				El("div", []Attr{A("class", "header-stats")},
					El("div", []Attr{A("class", "stat-item")},
						El("div", []Attr{A("class", "stat-icon")}, Raw("⭐")),
						El("div", nil,
							El("div", []Attr{A("class", "stat-value")}, Text(reviews)),
							El("div", []Attr{A("class", "stat-label")}, Text("отзывов")),
						),
					),
					El("div", []Attr{A("class", "stat-item")},
						El("div", []Attr{A("class", "stat-icon")}, Raw("📊")),
						El("div", nil,
							El("div", []Attr{A("class", "stat-value")}, Text(stats.BadgeText)),
							El("div", []Attr{A("class", "stat-label")}, Text("рейтинг")),
						),
					),
				),
			),
			El("div", []Attr{A("class", "header-wave")}, Raw(headerWave)),
		),
	)
}

// navigation renders the menu; skipped entirely when there are no items
func (r *Renderer) navigation(items []models.NavItem) string {
	if len(items) == 0 {
		return ""
	}
	links := make([]Node, 0, len(items))
	for _, item := range items {
		links = append(links, El("li", nil,
			El("a", []Attr{A("href", item.Href), A("class", "nav-link")}, Text(item.Label)),
		))
	}
	return Serialize(
		Comment("Navigation"),
		El("nav", []Attr{A("class", "nav")},
			El("div", []Attr{A("class", "container")},
				El("ul", []Attr{A("class", "nav-list")}, links...),
			),
		),
	)
}

// author renders the bio card; requires a name
func (r *Renderer) author(a models.Author) string {
	if a.Name == "" {
		return ""
	}
	updated := r.doc.UpdatedAt
	if updated == "" {
		updated = "недавно"
	}
	return Serialize(
		Comment("Author"),
		El("section", []Attr{A("class", "author")},
			El("div", []Attr{A("class", "container")},
				El("div", []Attr{A("class", "author-card")},
					If(a.Photo != "",
						El("img", []Attr{A("src", a.Photo), A("alt", a.Name), A("class", "author-avatar")})),
					El("div", []Attr{A("class", "author-info")},
						El("h2", []Attr{A("class", "author-name")}, Text(a.Name)),
						If(a.Link != "" && a.Link != "#",
							El("p", []Attr{A("class", "author-credentials")},
								El("a", []Attr{A("href", a.Link), A("target", "_blank"), A("rel", "noopener")}, Text(a.Name)))),
						If(a.Description != "",
							El("p", []Attr{A("class", "author-bio")}, StrippedText(a.Description))),
						El("p", []Attr{A("class", "author-date")}, Text("Обновлено: "+updated)),
					),
				),
			),
		),
	)
}

func (r *Renderer) intro(text string) string {
	if text == "" {
		return ""
	}
	return Serialize(
		Comment("Intro"),
		El("section", []Attr{A("class", "intro")},
			El("div", []Attr{A("class", "container")},
				El("div", []Attr{A("class", "intro-text")},
					El("p", nil, StrippedText(text)),
				),
			),
		),
	)
}

func (r *Renderer) beforeTable(block models.BeforeTableBlock) string {
	if block.Title == "" {
		return ""
	}
	paragraphs := make([]Node, 0, len(block.Paragraphs))
	for _, p := range block.Paragraphs {
		paragraphs = append(paragraphs, El("p", nil, StrippedText(p)))
	}
	criteria := make([]Node, 0, len(block.Criteria))
	for _, c := range block.Criteria {
		criteria = append(criteria, El("li", []Attr{A("class", "criteria-item")},
			// icon fields are curated data entry; they bypass escaping
			El("span", []Attr{A("class", "criteria-icon")}, Raw(c.Icon)),
			El("span", []Attr{A("class", "criteria-text")}, Text(c.Text)),
		))
	}
	return Serialize(
		Comment("Before Table"),
		El("section", []Attr{A("class", "before-table")},
			El("div", []Attr{A("class", "container")},
				El("div", []Attr{A("class", "before-table-card")},
					El("h2", []Attr{A("class", "before-table-title")}, Text(block.Title)),
					El("div", []Attr{A("class", "before-table-paragraphs")}, paragraphs...),
					El("ul", []Attr{A("class", "criteria-list")}, criteria...),
				),
			),
		),
	)
}

func courseURL(c models.Course) string {
	if c.Url == "" {
		return "#"
	}
	return c.Url
}

// promoInline is the compact promo fragment used in cards and table cells
func promoInline(c models.Course, class string) Node {
	if c.PromoCode == nil || c.PromoCode.Code == "" {
		return nil
	}
	children := []Node{
		Raw("🎁 "),
		El("code", nil, Text(c.PromoCode.Code)),
	}
	if c.PromoCode.DiscountPercent != 0 {
		children = append(children,
			Text(" "),
			El("span", []Attr{A("class", "promo-discount")},
				Text("(-"+strconv.Itoa(c.PromoCode.DiscountPercent)+"%)")))
	}
	return El("div", []Attr{A("class", class)}, children...)
}

// coursesTable renders the ranking. Both the mobile card layout and the
// desktop table are emitted from the same array; responsive CSS picks one.
func (r *Renderer) coursesTable(courses []models.Course, title string) string {
	if len(courses) == 0 {
		return ""
	}
	if title == "" {
		title = defaultTableTitle
	}

	cards := make([]Node, 0, len(courses))
	for i, c := range courses {
		rank := i + 1
		cards = append(cards, El("article", []Attr{A("class", "course-card")},
			El("div", []Attr{A("class", "course-header")},
				El("div", []Attr{A("class", "course-rank")},
					El("span", []Attr{A("class", "course-number")}, Text(strconv.Itoa(rank))),
					El("span", []Attr{A("class", "course-medal")}, Raw(Medal(rank))),
				),
				El("span", []Attr{A("class", "course-price-badge")}, Text(priceBadge(c.Price, c.Installment))),
			),
			El("a", []Attr{A("href", courseURL(c)), A("class", "course-title-link"), A("target", "_blank"), A("rel", "noopener")}, Text(c.Title)),
			El("p", []Attr{A("class", "course-school")}, Text(c.School)),
			promoInline(c, "course-promo-mobile"),
			El("div", []Attr{A("class", "course-buttons")},
				El("a", []Attr{A("href", "#course-"+strconv.Itoa(rank)), A("class", "btn btn-secondary")}, Text("Подробнее")),
				El("a", []Attr{A("href", courseURL(c)), A("class", "btn btn-primary"), A("target", "_blank"), A("rel", "noopener")}, Text("На сайт →")),
			),
		))
	}

	rows := make([]Node, 0, len(courses))
	for i, c := range courses {
		rank := i + 1
		priceCell := []Node{Text(priceBadge(c.Price, c.Installment))}
		if c.PromoCode != nil && c.PromoCode.Code != "" {
			priceCell = append(priceCell, El("br", nil),
				El("span", []Attr{A("class", "table-promo")},
					Raw("🎁 "),
					El("code", nil, Text(c.PromoCode.Code)),
					If(c.PromoCode.DiscountPercent != 0,
						Text(" (-"+strconv.Itoa(c.PromoCode.DiscountPercent)+"%)")),
				))
		}
		rankCell := Text(strconv.Itoa(rank))
		rows = append(rows, El("tr", nil,
			El("td", []Attr{A("style", "text-align:center")}, rankCell, Text(" "), Raw(Medal(rank))),
			El("td", nil, El("a", []Attr{A("href", courseURL(c)), A("target", "_blank"), A("rel", "noopener")}, Text(c.Title))),
			El("td", nil, Text(c.School)),
			El("td", nil, priceCell...),
			El("td", []Attr{A("style", "text-align:center")},
				El("a", []Attr{A("href", courseURL(c)), A("class", "btn btn-primary"), A("target", "_blank"), A("rel", "noopener")}, Text("На сайт →"))),
		))
	}

	return Serialize(
		Comment("Courses Table"),
		El("section", []Attr{A("class", "courses")},
			El("div", []Attr{A("class", "container")},
				El("div", []Attr{A("class", "courses-card")},
					El("h2", []Attr{A("class", "courses-title")}, Text(title)),
					Comment("Mobile Cards"),
					El("div", []Attr{A("class", "course-cards")}, cards...),
					Comment("Desktop Table"),
					El("table", []Attr{A("class", "courses-table")},
						El("thead", nil, El("tr", nil,
							El("th", nil, Text("№")),
							El("th", nil, Text("Курс")),
							El("th", nil, Text("Школа")),
							El("th", nil, Text("Цена")),
							El("th", nil, Text("Действие")),
						)),
						El("tbody", nil, rows...),
					),
				),
			),
		),
	)
}

func detailSection(icon, title string, body ...Node) Node {
	children := []Node{
		El("h4", []Attr{A("class", "detail-section-title")},
			El("span", []Attr{A("class", "detail-icon")}, Raw(icon)),
			Text(" "+title)),
	}
	children = append(children, body...)
	return El("div", []Attr{A("class", "detail-section")}, children...)
}

// courseDetails renders one anchored block per course; the anchor uses the
// display rank, not the stable ID.
func (r *Renderer) courseDetails(courses []models.Course) string {
	if len(courses) == 0 {
		return ""
	}
	blocks := make([]Node, 0, len(courses))
	for i, c := range courses {
		rank := i + 1
		blocks = append(blocks, r.courseDetail(c, rank))
	}
	return Serialize(
		Comment("Course Details"),
		El("section", []Attr{A("class", "course-details")},
			El("div", []Attr{A("class", "container")}, blocks...),
		),
	)
}

func (r *Renderer) courseDetail(c models.Course, rank int) Node {
	duration := c.Duration
	if duration == "" {
		duration = "Не указано"
	}
	document := c.Document
	if document == "" {
		document = "Сертификат"
	}
	format := c.Format
	if format == "" {
		format = "Онлайн"
	}

	priceValue := []Node{Text(FormatPrice(c.Price))}
	if c.OldPrice != nil {
		priceValue = append(priceValue, Text(" "),
			El("s", []Attr{A("style", "color:#999;font-size:0.85em")}, Text(FormatPrice(*c.OldPrice))))
	}
	priceItem := []Node{
		El("p", []Attr{A("class", "info-label")}, Text("Стоимость")),
		El("p", []Attr{A("class", "info-value")}, priceValue...),
	}
	if c.Installment != nil {
		// detail views show both framings: full price plus installment sublabel
		priceItem = append(priceItem,
			El("p", []Attr{A("class", "info-sublabel")}, Text("Рассрочка: "+formatNumber(*c.Installment)+" ₽/мес")))
	}

	infoGrid := []Node{
		infoItem("💰", priceItem...),
		infoItem("⏱️",
			El("p", []Attr{A("class", "info-label")}, Text("Длительность")),
			El("p", []Attr{A("class", "info-value")}, Text(duration))),
		infoItem("📄",
			El("p", []Attr{A("class", "info-label")}, Text("Документ")),
			El("p", []Attr{A("class", "info-value")}, Text(document))),
		infoItem("🎯",
			El("p", []Attr{A("class", "info-label")}, Text("Формат")),
			El("p", []Attr{A("class", "info-value")}, Text(format))),
	}
	if c.PromoCode != nil && c.PromoCode.Code != "" {
		label := c.PromoCode.DiscountText
		if label == "" {
			label = "Скидка"
		}
		if c.PromoCode.DiscountPercent != 0 {
			label += " (-" + strconv.Itoa(c.PromoCode.DiscountPercent) + "%)"
		}
		infoGrid = append(infoGrid,
			El("div", []Attr{A("class", "info-item info-promo")},
				El("span", []Attr{A("class", "info-icon")}, Raw("🎁")),
				El("div", nil,
					El("p", []Attr{A("class", "info-label")}, Text(label)),
					El("div", []Attr{A("class", "promo-code-wrapper")},
						El("span", nil, Text("Промокод:")),
						El("code", nil, Text(c.PromoCode.Code)),
					),
				),
			))
	}

	var content []Node
	if c.ForWhom != "" {
		content = append(content, detailSection("👥", "Для кого",
			El("p", []Attr{A("class", "detail-text")}, StrippedText(c.ForWhom))))
	}
	if c.Features != "" {
		content = append(content, detailSection("📋", "Особенности курса",
			El("p", []Attr{A("class", "detail-text")}, StrippedText(c.Features))))
	}
	if len(c.Teachers) > 0 {
		items := make([]Node, 0, len(c.Teachers))
		for _, t := range c.Teachers {
			items = append(items, El("li", nil,
				El("strong", nil, Text(t.Name)),
				Text(" — "),
				StrippedText(t.Description)))
		}
		content = append(content, detailSection("👨‍🏫", "Преподаватели",
			El("ul", []Attr{A("class", "advantages-list")}, items...)))
	}
	if len(c.Program) > 0 {
		items := make([]Node, 0, len(c.Program))
		for _, p := range c.Program {
			items = append(items, El("li", nil, StrippedText(p)))
		}
		content = append(content, detailSection("📚", "Программа курса",
			El("ul", []Attr{A("class", "program-list")}, items...)))
	}
	if len(c.Skills) > 0 {
		items := make([]Node, 0, len(c.Skills))
		for _, s := range c.Skills {
			items = append(items, El("li", nil,
				El("span", []Attr{A("class", "check-icon")}, Text("✓")),
				Text(" "),
				StrippedText(s)))
		}
		content = append(content, detailSection("🎓", "Чему научитесь",
			El("ul", []Attr{A("class", "skills-list")}, items...)))
	}
	if len(c.Advantages) > 0 {
		items := make([]Node, 0, len(c.Advantages))
		for _, a := range c.Advantages {
			items = append(items, El("li", nil,
				El("span", []Attr{A("class", "adv-icon")}, Text("★")),
				Text(" "+a)))
		}
		content = append(content, detailSection("⭐", "Преимущества",
			El("ul", []Attr{A("class", "advantages-list")}, items...)))
	}
	if c.Reviews != "" || len(c.ReviewLinks) > 0 {
		reviews := []Node{
			El("h4", []Attr{A("class", "detail-section-title")},
				El("span", []Attr{A("class", "detail-icon")}, Raw("💬")),
				Text(" Отзывы")),
		}
		if c.Reviews != "" {
			reviews = append(reviews,
				El("p", []Attr{A("class", "reviews-quote")}, Text(`"`), StrippedText(c.Reviews), Text(`"`)))
		}
		if len(c.ReviewLinks) > 0 {
			links := make([]Node, 0, len(c.ReviewLinks))
			for _, rl := range c.ReviewLinks {
				links = append(links, El("a", []Attr{A("href", rl.Url), A("class", "review-link"), A("target", "_blank"), A("rel", "noopener")},
					El("span", []Attr{A("class", "review-link-platform")}, Text(rl.Platform)),
					El("span", []Attr{A("class", "review-link-rating")}, Raw("⭐ "), Text(rl.Rating)),
					El("span", []Attr{A("class", "review-link-count")}, Text(rl.Count+" отзывов")),
				))
			}
			reviews = append(reviews, El("div", []Attr{A("class", "review-links")}, links...))
		}
		content = append(content, El("div", []Attr{A("class", "reviews-section")}, reviews...))
	}
	content = append(content, El("div", []Attr{A("class", "course-cta")},
		El("a", []Attr{A("href", courseURL(c)), A("class", "btn btn-primary btn-large"), A("target", "_blank"), A("rel", "noopener")},
			Text("Перейти на сайт →"))))

	return El("article", []Attr{A("class", "course-detail-card"), A("id", "course-" + strconv.Itoa(rank))},
		El("div", []Attr{A("class", "course-detail-header")},
			El("h3", []Attr{A("class", "course-detail-title")},
				El("span", []Attr{A("class", "course-detail-number")}, Text(strconv.Itoa(rank)+".")),
				Text(" "),
				El("a", []Attr{A("href", courseURL(c)), A("target", "_blank"), A("rel", "noopener")}, Text(c.Title)),
				Text(" "),
				El("span", []Attr{A("class", "course-detail-school")}, Text("— "+c.School)),
			),
		),
		If(c.SchoolLogo != "",
			El("div", []Attr{A("class", "course-detail-image")},
				El("img", []Attr{A("src", c.SchoolLogo), A("alt", c.School), A("loading", "lazy")}))),
		El("div", []Attr{A("class", "course-info-grid")}, infoGrid...),
		El("div", []Attr{A("class", "course-detail-content")}, content...),
	)
}

func infoItem(icon string, body ...Node) Node {
	return El("div", []Attr{A("class", "info-item")},
		El("span", []Attr{A("class", "info-icon")}, Raw(icon)),
		El("div", nil, body...),
	)
}

func (r *Renderer) contentBlocks(blocks []models.ContentBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	articles := make([]Node, 0, len(blocks))
	for _, block := range blocks {
		paragraphs := make([]Node, 0, len(block.Paragraphs))
		for _, p := range block.Paragraphs {
			paragraphs = append(paragraphs, El("p", nil, StrippedText(p)))
		}
		children := []Node{
			El("h2", []Attr{A("class", "content-block-title")},
				El("span", []Attr{A("class", "content-block-bullet")}, Text("▸")),
				Text(" "+block.Title)),
			El("div", []Attr{A("class", "content-block-paragraphs")}, paragraphs...),
		}
		if len(block.List) > 0 {
			items := make([]Node, 0, len(block.List))
			for _, item := range block.List {
				icon := item.Icon
				if icon == "" {
					icon = "•"
				}
				items = append(items, El("li", nil,
					El("span", []Attr{A("class", "content-block-list-icon")}, Raw(icon)),
					El("span", nil, Text(item.Text)),
				))
			}
			children = append(children, El("ul", []Attr{A("class", "content-block-list")}, items...))
		}
		articles = append(articles, El("article", []Attr{A("class", "content-block")}, children...))
	}
	return Serialize(
		Comment("Content Blocks"),
		El("section", []Attr{A("class", "content-blocks")},
			El("div", []Attr{A("class", "container")}, articles...),
		),
	)
}

func (r *Renderer) faq(items []models.FAQItem) string {
	if len(items) == 0 {
		return ""
	}
	list := make([]Node, 0, len(items))
	for _, item := range items {
		list = append(list, El("article", []Attr{A("class", "faq-item")},
			El("h3", []Attr{A("class", "faq-question")}, Text(item.Question)),
			El("p", []Attr{A("class", "faq-answer")}, StrippedText(item.Answer)),
		))
	}
	return Serialize(
		Comment("FAQ"),
		El("section", []Attr{A("class", "faq")},
			El("div", []Attr{A("class", "container")},
				El("h2", []Attr{A("class", "faq-title")}, Text(faqTitle)),
				El("div", []Attr{A("class", "faq-list")}, list...),
			),
		),
	)
}

// footer always renders and always reads site-wide data; pages cannot
// override it. Links merge footerLinks with legal pages flagged for the
// footer.
func (r *Renderer) footer() string {
	doc := r.doc
	var links []Node
	for _, fl := range doc.FooterLinks {
		attrs := []Attr{A("href", fl.Href)}
		if fl.IsExternal {
			attrs = append(attrs, A("target", "_blank"), A("rel", "noopener"))
		}
		links = append(links, El("a", attrs, Text(fl.Label)))
	}
	for _, lp := range doc.LegalPages {
		if lp.ShowInFooter {
			links = append(links, El("a", []Attr{A("href", "/legal/" + lp.Slug)}, Text(lp.Title)))
		}
	}

	copyright := []Node{Text("© " + strconv.Itoa(r.now().Year()))}
	if doc.FooterEmail != "" {
		copyright = append(copyright,
			Raw(" &nbsp;•&nbsp; "),
			El("a", []Attr{A("href", "mailto:" + doc.FooterEmail)}, Text("Контакты")))
	}

	return Serialize(
		Comment("Footer"),
		El("footer", []Attr{A("class", "footer")},
			El("div", []Attr{A("class", "container")},
				If(doc.AdDisclosureText != "",
					El("p", []Attr{A("class", "footer-text")}, Text(doc.AdDisclosureText))),
				If(doc.FooterText != "",
					El("p", []Attr{A("class", "footer-text")}, Text(doc.FooterText))),
				El("p", []Attr{A("class", "footer-text")}, copyright...),
				If(len(links) > 0,
					El("div", []Attr{A("class", "footer-links")}, links...)),
			),
		),
	)
}
