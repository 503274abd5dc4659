package renderer

import (
	"coursepanel/models"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func testContent() models.ContentDocument {
	monthly := 3500
	doc := models.DefaultContent()
	doc.UpdatedAt = "2025-03-01"
	doc.Courses = []models.Course{
		{
			ID:     1,
			Title:  "Python с нуля",
			School: "Первая школа",
			Url:    "https://school-one.example.com",
			Price:  45000,
			Skills: []string{"Основы Python"},
		},
		{
			ID:          2,
			Title:       "Python PRO",
			School:      "Вторая школа",
			Url:         "https://school-two.example.com",
			Price:       90000,
			Installment: &monthly,
			PromoCode:   &models.PromoCode{Code: "PYTHON10", DiscountText: "Скидка", DiscountPercent: 10},
		},
	}
	return doc
}

func TestMainPageHTML_Deterministic(t *testing.T) {
	content := testContent()

	first := NewWithClock(content, fixedClock).MainPageHTML()
	second := NewWithClock(content, fixedClock).MainPageHTML()

	assert.Equal(t, first, second)
}

func TestMainPageHTML_Structure(t *testing.T) {
	html := NewWithClock(testContent(), fixedClock).MainPageHTML()
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))

	doc := parseHTML(t, html)

	assert.Equal(t, "ТОП курсов по Python 2025 — рейтинг и сравнение", doc.Find("title").Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.com/", canonical)
	ogImage, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	assert.Equal(t, "https://example.com/favicon.png", ogImage)

	// One mobile card and one table row per course
	assert.Equal(t, 2, doc.Find(".course-card").Length())
	assert.Equal(t, 2, doc.Find(".courses-table tbody tr").Length())
	assert.Equal(t, 2, doc.Find(".course-detail-card").Length())

	// Details are anchored by display position
	assert.Equal(t, 1, doc.Find("#course-1").Length())
	assert.Equal(t, 1, doc.Find("#course-2").Length())
}

func TestMainPageHTML_MedalsFollowPosition(t *testing.T) {
	html := NewWithClock(testContent(), fixedClock).MainPageHTML()
	doc := parseHTML(t, html)

	medals := doc.Find(".course-card .course-medal")
	require.Equal(t, 2, medals.Length())
	assert.Equal(t, "🥇", medals.Eq(0).Text())
	assert.Equal(t, "🥈", medals.Eq(1).Text())
}

func TestMainPageHTML_PriceFraming(t *testing.T) {
	html := NewWithClock(testContent(), fixedClock).MainPageHTML()
	doc := parseHTML(t, html)

	badges := doc.Find(".course-card .course-price-badge")
	require.Equal(t, 2, badges.Length())
	assert.Equal(t, "45\u00a0000 ₽", badges.Eq(0).Text())
	// The installment framing supersedes the plain price in lists
	assert.Equal(t, "от 3\u00a0500 ₽/мес", badges.Eq(1).Text())

	// Details show the full price plus the installment sublabel
	detail := doc.Find("#course-2")
	assert.Contains(t, detail.Find(".info-value").Text(), "90\u00a0000 ₽")
	assert.Equal(t, "Рассрочка: 3\u00a0500 ₽/мес", detail.Find(".info-sublabel").Text())
}

func TestMainPageHTML_FreePrice(t *testing.T) {
	content := testContent()
	content.Courses[0].Price = 0

	html := NewWithClock(content, fixedClock).MainPageHTML()
	doc := parseHTML(t, html)

	assert.Equal(t, "Бесплатно", doc.Find(".course-card .course-price-badge").Eq(0).Text())
}

func TestMainPageHTML_FAQOmittedEntirely(t *testing.T) {
	content := testContent()
	content.FAQData = nil

	html := NewWithClock(content, fixedClock).MainPageHTML()

	assert.NotContains(t, html, "Часто задаваемые вопросы")
	assert.Equal(t, 0, parseHTML(t, html).Find(".faq").Length())
}

func TestMainPageHTML_UpdatedDateFallsBackToClock(t *testing.T) {
	content := testContent()
	content.UpdatedAt = ""

	html := NewWithClock(content, fixedClock).MainPageHTML()

	assert.Contains(t, html, "Обновлено: 2 марта 2025 г.")
}

func TestMainPageHTML_EscapesTextFields(t *testing.T) {
	content := testContent()
	content.PageTitle = `Курсы <script>alert("x")</script> & Python`
	content.IntroText = "<p>Текст с <b>разметкой</b></p>"

	html := NewWithClock(content, fixedClock).MainPageHTML()
	doc := parseHTML(t, html)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	// Long-form text fields are stripped of embedded markup, then escaped
	assert.Equal(t, "Текст с разметкой", doc.Find(".intro-text p").Text())
}

func TestMainPageHTML_IconFieldsStayRaw(t *testing.T) {
	content := testContent()
	content.BeforeTableBlock.Criteria = []models.ListItem{
		{Icon: `<svg class="check"></svg>`, Text: "Критерий <b>с разметкой</b>"},
	}

	html := NewWithClock(content, fixedClock).MainPageHTML()

	// Icons are trusted fragments; the neighbouring text is not
	assert.Contains(t, html, `<svg class="check"></svg>`)
	assert.Contains(t, html, "Критерий &lt;b&gt;с разметкой&lt;/b&gt;")
}

func TestMainPageHTML_FooterComposition(t *testing.T) {
	content := testContent()
	content.FooterLinks = []models.FooterLink{
		{Label: "Блог", Href: "https://blog.example.com", IsExternal: true},
	}

	html := NewWithClock(content, fixedClock).MainPageHTML()
	doc := parseHTML(t, html)

	footer := doc.Find(".footer")
	assert.Contains(t, footer.Text(), "© 2025")
	assert.Contains(t, footer.Text(), content.AdDisclosureText)
	assert.Contains(t, footer.Text(), content.FooterText)

	mailto, _ := footer.Find(`a[href="mailto:info@example.com"]`).Attr("href")
	assert.Equal(t, "mailto:info@example.com", mailto)

	// Legal pages flagged for the footer appear after explicit links
	links := footer.Find(".footer-links a")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, "Блог", links.Eq(0).Text())
	href, _ := links.Eq(1).Attr("href")
	assert.Equal(t, "/legal/privacy", href)
}

func TestPageHTML_OverridesAndFallbacks(t *testing.T) {
	content := testContent()
	page := models.SitePage{
		ID:    "page-test",
		Slug:  "dlya-detey",
		Title: "Курсы Python для детей",
		MetaData: models.MetaData{
			Title: "Python для детей — подборка",
		},
		Courses: []models.Course{
			{ID: 1, Title: "Детский курс", School: "Школа", Url: "#", Price: 15000},
		},
	}
	content.Pages = []models.SitePage{page}

	html := NewWithClock(content, fixedClock).PageHTML(page)
	doc := parseHTML(t, html)

	assert.Equal(t, "Python для детей — подборка", doc.Find("title").Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.com/dlya-detey", canonical)

	// The page's own course list replaces the root one
	require.Equal(t, 1, doc.Find(".course-card").Length())
	assert.Contains(t, doc.Find(".course-title-link").Text(), "Детский курс")

	// Sections without an override fall back to root content
	assert.Contains(t, doc.Find(".intro-text").Text(), "Подборка проверенных курсов")

	// Pages never render the navigation; the footer is always site-wide
	assert.Equal(t, 0, doc.Find(".nav").Length())
	assert.Contains(t, doc.Find(".footer").Text(), content.FooterText)
}

func TestPageHTML_EmptyOverrideFallsBack(t *testing.T) {
	content := testContent()
	page := models.SitePage{ID: "p", Slug: "vse-kursy", Title: "Все курсы", Courses: []models.Course{}}

	html := NewWithClock(content, fixedClock).PageHTML(page)
	doc := parseHTML(t, html)

	// An empty override list means "use the root courses", not "render nothing"
	assert.Equal(t, 2, doc.Find(".course-card").Length())
}

func TestPageHTML_DisabledBlocks(t *testing.T) {
	off := false
	content := testContent()
	page := models.SitePage{
		ID:    "p",
		Slug:  "bez-faq",
		Title: "Без FAQ",
		Blocks: models.PageBlocks{
			ShowFAQ:    &off,
			ShowAuthor: &off,
		},
	}

	html := NewWithClock(content, fixedClock).PageHTML(page)
	doc := parseHTML(t, html)

	assert.Equal(t, 0, doc.Find(".faq").Length())
	assert.Equal(t, 0, doc.Find(".author").Length())
	// Unset flags default to enabled
	assert.Equal(t, 1, doc.Find(".header").Length())
	assert.Equal(t, 2, doc.Find(".course-card").Length())
}

func TestMainPageHTML_TwoCourseScenario(t *testing.T) {
	monthly := 3500
	content := models.DefaultContent()
	content.MetaData.Title = `Рейтинг курсов "2025"`
	content.FAQData = []models.FAQItem{}
	content.Courses = []models.Course{
		{ID: 1, Title: "Python Basics", School: "Acme", Url: "https://acme.example.com/python", Price: 0},
		{ID: 2, Title: "Advanced Go", School: "Acme", Url: "https://acme.example.com/go", Price: 45000, Installment: &monthly},
	}

	html := NewWithClock(content, fixedClock).MainPageHTML()
	doc := parseHTML(t, html)

	cards := doc.Find(".course-card")
	require.Equal(t, 2, cards.Length())

	first := cards.Eq(0)
	assert.Equal(t, "🥇", first.Find(".course-medal").Text())
	assert.Equal(t, "Бесплатно", first.Find(".course-price-badge").Text())

	second := cards.Eq(1)
	assert.Equal(t, "🥈", second.Find(".course-medal").Text())
	assert.Equal(t, "от 3\u00a0500 ₽/мес", second.Find(".course-price-badge").Text())

	assert.Equal(t, 0, doc.Find(".faq").Length())
	assert.Contains(t, html, `<title>Рейтинг курсов &quot;2025&quot;</title>`)
}

func TestLegalPageHTML(t *testing.T) {
	content := testContent()

	html := NewWithClock(content, fixedClock).LegalPageHTML(content.LegalPages[0])
	doc := parseHTML(t, html)

	assert.Equal(t, "Политика конфиденциальности", doc.Find("title").Text())
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://example.com/legal/privacy", canonical)
	assert.Equal(t, 1, doc.Find(".legal-section").Length())
	assert.Contains(t, doc.Find(".footer").Text(), "© 2025")
}
