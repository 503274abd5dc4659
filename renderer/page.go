package renderer

import (
	"coursepanel/models"
	"strings"
)

const fallbackCanonical = "https://example.com/"
const manropeCSS = "https://fonts.googleapis.com/css2?family=Manrope:wght@400;500;600;700;800&display=swap"

func baseURL(doc models.ContentDocument) string {
	canonical := doc.MetaData.CanonicalUrl
	if canonical == "" {
		canonical = fallbackCanonical
	}
	return strings.TrimSuffix(canonical, "/")
}

// headShell renders the <head> markup shared by every generated page
func headShell(title, description, keywords, author, canonicalUrl, ogImage string, mobileCapable bool) []Node {
	head := []Node{
		El("meta", []Attr{A("charset", "UTF-8")}),
		El("meta", []Attr{A("name", "viewport"), A("content", "width=device-width, initial-scale=1.0, maximum-scale=5")}),
		El("title", nil, Text(title)),
		El("meta", []Attr{A("name", "description"), A("content", description)}),
		El("meta", []Attr{A("name", "keywords"), A("content", keywords)}),
	}
	if author != "" {
		head = append(head, El("meta", []Attr{A("name", "author"), A("content", author)}))
	}
	head = append(head,
		El("meta", []Attr{A("name", "robots"), A("content", "index, follow")}),
		Comment("Favicon"),
		El("link", []Attr{A("rel", "icon"), A("type", "image/png"), A("href", "/favicon.png")}),
		El("link", []Attr{A("rel", "apple-touch-icon"), A("href", "/favicon.png")}),
		El("link", []Attr{A("rel", "canonical"), A("href", canonicalUrl)}),
		Comment("Open Graph"),
		El("meta", []Attr{A("property", "og:type"), A("content", "article")}),
		El("meta", []Attr{A("property", "og:title"), A("content", title)}),
		El("meta", []Attr{A("property", "og:description"), A("content", description)}),
		El("meta", []Attr{A("property", "og:url"), A("content", canonicalUrl)}),
		El("meta", []Attr{A("property", "og:image"), A("content", ogImage)}),
		El("meta", []Attr{A("property", "og:locale"), A("content", "ru_RU")}),
		Comment("Twitter"),
		El("meta", []Attr{A("name", "twitter:card"), A("content", "summary_large_image")}),
		El("meta", []Attr{A("name", "twitter:title"), A("content", title)}),
		El("meta", []Attr{A("name", "twitter:description"), A("content", description)}),
		El("meta", []Attr{A("name", "twitter:image"), A("content", ogImage)}),
		Comment("Mobile"),
		El("meta", []Attr{A("name", "theme-color"), A("content", "#1d7bf5")}),
	)
	if mobileCapable {
		head = append(head, El("meta", []Attr{A("name", "mobile-web-app-capable"), A("content", "yes")}))
	}
	head = append(head,
		Comment("Fonts"),
		El("link", []Attr{A("rel", "preconnect"), A("href", "https://fonts.googleapis.com")}),
		El("link", []Attr{A("rel", "preconnect"), A("href", "https://fonts.gstatic.com"), A("crossorigin", "")}),
		El("link", []Attr{A("href", manropeCSS), A("rel", "stylesheet")}),
		Comment("Styles"),
		El("link", []Attr{A("rel", "stylesheet"), A("href", "/styles-static.css")}),
	)
	return head
}

func htmlDocument(head []Node, body string) string {
	return "<!DOCTYPE html>\n" + Serialize(
		El("html", []Attr{A("lang", "ru")},
			El("head", nil, head...),
			El("body", nil, Raw(body)),
		),
	)
}

// MainPageHTML renders the root page from the site-wide document
func (r *Renderer) MainPageHTML() string {
	doc := r.doc
	canonical := doc.MetaData.CanonicalUrl
	if canonical == "" {
		canonical = fallbackCanonical
	}
	ogImage := strings.TrimSuffix(canonical, "/") + "/favicon.png"

	head := headShell(
		doc.MetaData.Title,
		doc.MetaData.Description,
		doc.MetaData.Keywords,
		doc.Author.Name,
		canonical,
		ogImage,
		true,
	)

	var body strings.Builder
	body.WriteString(r.header(doc.PageTitle, doc.HeaderStats))
	body.WriteString(r.navigation(doc.Navigation))
	body.WriteString(r.author(doc.Author))
	body.WriteString(r.intro(doc.IntroText))
	body.WriteString(r.beforeTable(doc.BeforeTableBlock))
	body.WriteString(r.coursesTable(doc.Courses, ""))
	body.WriteString(r.courseDetails(doc.Courses))
	body.WriteString(r.contentBlocks(doc.ContentBlocks))
	body.WriteString(r.faq(doc.FAQData))
	body.WriteString(r.footer())

	return htmlDocument(head, body.String())
}

// PageHTML renders a section page. Each block resolves its data against the
// page override first and falls back to the site-wide document when the
// override is absent or empty; the navigation never appears and the footer
// is always the site-wide one.
func (r *Renderer) PageHTML(page models.SitePage) string {
	doc := r.doc

	title := page.MetaData.Title
	if title == "" {
		title = page.Title
	}
	canonical := page.MetaData.CanonicalUrl
	if canonical == "" {
		canonical = baseURL(doc) + "/" + page.Slug
	}
	ogImage := baseURL(doc) + "/favicon.png"

	head := headShell(
		title,
		page.MetaData.Description,
		page.MetaData.Keywords,
		"",
		canonical,
		ogImage,
		false,
	)

	author := doc.Author
	if page.Author != nil {
		author = *page.Author
	}
	stats := doc.HeaderStats
	if page.HeaderStats != nil {
		stats = *page.HeaderStats
	}
	intro := page.IntroText
	if intro == "" {
		intro = doc.IntroText
	}
	beforeTable := doc.BeforeTableBlock
	if page.BeforeTableBlock != nil {
		beforeTable = *page.BeforeTableBlock
	}
	courses := page.Courses
	if len(courses) == 0 {
		courses = doc.Courses
	}
	contentBlocks := page.ContentBlocks
	if len(contentBlocks) == 0 {
		contentBlocks = doc.ContentBlocks
	}
	faq := page.FAQData
	if len(faq) == 0 {
		faq = doc.FAQData
	}

	var body strings.Builder
	if models.Enabled(page.Blocks.ShowHeader) {
		body.WriteString(r.header(page.Title, stats))
	}
	if models.Enabled(page.Blocks.ShowAuthor) {
		body.WriteString(r.author(author))
	}
	if models.Enabled(page.Blocks.ShowIntro) {
		body.WriteString(r.intro(intro))
	}
	if models.Enabled(page.Blocks.ShowBeforeTable) {
		body.WriteString(r.beforeTable(beforeTable))
	}
	if models.Enabled(page.Blocks.ShowCoursesList) {
		body.WriteString(r.coursesTable(courses, ""))
	}
	if models.Enabled(page.Blocks.ShowCourseDetails) {
		body.WriteString(r.courseDetails(courses))
	}
	if models.Enabled(page.Blocks.ShowContentBlocks) {
		body.WriteString(r.contentBlocks(contentBlocks))
	}
	if models.Enabled(page.Blocks.ShowFAQ) {
		body.WriteString(r.faq(faq))
	}
	body.WriteString(r.footer())

	return htmlDocument(head, body.String())
}

// LegalPageHTML renders a legal document (privacy policy, terms) as plain
// titled sections under the shared shell.
func (r *Renderer) LegalPageHTML(page models.LegalPage) string {
	doc := r.doc
	canonical := baseURL(doc) + "/legal/" + page.Slug
	ogImage := baseURL(doc) + "/favicon.png"

	head := headShell(page.Title, "", "", "", canonical, ogImage, false)

	sections := make([]Node, 0, len(page.Sections))
	for _, s := range page.Sections {
		sections = append(sections, El("section", []Attr{A("class", "legal-section")},
			El("h2", nil, Text(s.Title)),
			El("p", nil, StrippedText(s.Content)),
		))
	}

	var body strings.Builder
	body.WriteString(Serialize(
		Comment("Legal"),
		El("main", []Attr{A("class", "legal container")},
			El("h1", []Attr{A("class", "legal-title")}, Text(page.Title)),
			Frag(sections...),
		),
	))
	body.WriteString(r.footer())

	return htmlDocument(head, body.String())
}
