package models

// MetaData holds the SEO fields of a page
type MetaData struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Keywords     string `json:"keywords"`
	CanonicalUrl string `json:"canonicalUrl"`
}

// HeaderStats feeds the badges in the page header
type HeaderStats struct {
	ReviewsCount string `json:"reviewsCount"`
	BadgeText    string `json:"badgeText"`
	Subtitle     string `json:"subtitle"`
}

// Author describes the bio block under the header
type Author struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

// ListItem is an icon + text pair used by criteria and content-block lists.
// The icon is curated data entry (emoji), not free text.
type ListItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// BeforeTableBlock is the selection-criteria card above the courses table
type BeforeTableBlock struct {
	Title      string     `json:"title"`
	Paragraphs []string   `json:"paragraphs"`
	Criteria   []ListItem `json:"criteria"`
}

// NavItem is a single navigation menu entry
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ContentBlock is a free-form article section below the course details
type ContentBlock struct {
	Title      string     `json:"title"`
	Paragraphs []string   `json:"paragraphs"`
	List       []ListItem `json:"list,omitempty"`
}

// FAQItem is a single question/answer pair
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FooterLink is an extra link rendered in the footer
type FooterLink struct {
	Label      string `json:"label"`
	Href       string `json:"href"`
	IsExternal bool   `json:"isExternal"`
}

// ContentDocument is the single root record holding all site content.
// It is persisted as one JSON blob; the JSON keys below are the storage format.
type ContentDocument struct {
	PageTitle        string           `json:"pageTitle"`
	MetaData         MetaData         `json:"metaData"`
	HeaderStats      HeaderStats      `json:"headerStats"`
	Author           Author           `json:"author"`
	IntroText        string           `json:"introText"`
	BeforeTableBlock BeforeTableBlock `json:"beforeTableBlock"`
	Navigation       []NavItem        `json:"navigation"`
	Courses          []Course         `json:"courses"`
	ContentBlocks    []ContentBlock   `json:"contentBlocks"`
	FAQData          []FAQItem        `json:"faqData"`
	FooterText       string           `json:"footerText"`
	FooterEmail      string           `json:"footerEmail"`
	FooterLinks      []FooterLink     `json:"footerLinks"`
	LegalPages       []LegalPage      `json:"legalPages"`
	Pages            []SitePage       `json:"pages"`
	UpdatedAt        string           `json:"updatedAt"`
	AdDisclosureText string           `json:"adDisclosureText"`
}

// ContentPatch is a partial ContentDocument for shallow merges.
// Nil fields are left untouched; set fields replace the whole value.
type ContentPatch struct {
	PageTitle        *string           `json:"pageTitle,omitempty"`
	MetaData         *MetaData         `json:"metaData,omitempty"`
	HeaderStats      *HeaderStats      `json:"headerStats,omitempty"`
	Author           *Author           `json:"author,omitempty"`
	IntroText        *string           `json:"introText,omitempty"`
	BeforeTableBlock *BeforeTableBlock `json:"beforeTableBlock,omitempty"`
	Navigation       *[]NavItem        `json:"navigation,omitempty"`
	Courses          *[]Course         `json:"courses,omitempty"`
	ContentBlocks    *[]ContentBlock   `json:"contentBlocks,omitempty"`
	FAQData          *[]FAQItem        `json:"faqData,omitempty"`
	FooterText       *string           `json:"footerText,omitempty"`
	FooterEmail      *string           `json:"footerEmail,omitempty"`
	FooterLinks      *[]FooterLink     `json:"footerLinks,omitempty"`
	LegalPages       *[]LegalPage      `json:"legalPages,omitempty"`
	Pages            *[]SitePage       `json:"pages,omitempty"`
	UpdatedAt        *string           `json:"updatedAt,omitempty"`
	AdDisclosureText *string           `json:"adDisclosureText,omitempty"`
}

// Apply returns a copy of the document with the patch shallow-merged in
func (d ContentDocument) Apply(p ContentPatch) ContentDocument {
	if p.PageTitle != nil {
		d.PageTitle = *p.PageTitle
	}
	if p.MetaData != nil {
		d.MetaData = *p.MetaData
	}
	if p.HeaderStats != nil {
		d.HeaderStats = *p.HeaderStats
	}
	if p.Author != nil {
		d.Author = *p.Author
	}
	if p.IntroText != nil {
		d.IntroText = *p.IntroText
	}
	if p.BeforeTableBlock != nil {
		d.BeforeTableBlock = *p.BeforeTableBlock
	}
	if p.Navigation != nil {
		d.Navigation = *p.Navigation
	}
	if p.Courses != nil {
		d.Courses = *p.Courses
	}
	if p.ContentBlocks != nil {
		d.ContentBlocks = *p.ContentBlocks
	}
	if p.FAQData != nil {
		d.FAQData = *p.FAQData
	}
	if p.FooterText != nil {
		d.FooterText = *p.FooterText
	}
	if p.FooterEmail != nil {
		d.FooterEmail = *p.FooterEmail
	}
	if p.FooterLinks != nil {
		d.FooterLinks = *p.FooterLinks
	}
	if p.LegalPages != nil {
		d.LegalPages = *p.LegalPages
	}
	if p.Pages != nil {
		d.Pages = *p.Pages
	}
	if p.UpdatedAt != nil {
		d.UpdatedAt = *p.UpdatedAt
	}
	if p.AdDisclosureText != nil {
		d.AdDisclosureText = *p.AdDisclosureText
	}
	return d
}
