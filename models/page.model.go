package models

// PageBlocks toggles which sections a SitePage renders.
// Nil flags count as enabled, so freshly imported pages render everything.
type PageBlocks struct {
	ShowHeader        *bool `json:"showHeader,omitempty"`
	ShowAuthor        *bool `json:"showAuthor,omitempty"`
	ShowIntro         *bool `json:"showIntro,omitempty"`
	ShowBeforeTable   *bool `json:"showBeforeTable,omitempty"`
	ShowCoursesList   *bool `json:"showCoursesList,omitempty"`
	ShowCourseDetails *bool `json:"showCourseDetails,omitempty"`
	ShowContentBlocks *bool `json:"showContentBlocks,omitempty"`
	ShowFAQ           *bool `json:"showFAQ,omitempty"`
}

// Enabled reports whether a block flag is on; unset means on
func Enabled(flag *bool) bool {
	return flag == nil || *flag
}

// SitePage is an auxiliary page with its own slug and optional overrides
// layered over the root document. Override fields are copies of root data,
// never live references; nil/empty overrides fall back to the root values.
type SitePage struct {
	ID         string     `json:"id"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	MenuLabel  string     `json:"menuLabel"`
	ShowInMenu *bool      `json:"showInMenu,omitempty"`
	MetaData   MetaData   `json:"metaData"`
	Blocks     PageBlocks `json:"blocks"`

	Author           *Author           `json:"author,omitempty"`
	HeaderStats      *HeaderStats      `json:"headerStats,omitempty"`
	IntroText        string            `json:"introText,omitempty"`
	BeforeTableBlock *BeforeTableBlock `json:"beforeTableBlock,omitempty"`
	Courses          []Course          `json:"courses,omitempty"`
	ContentBlocks    []ContentBlock    `json:"contentBlocks,omitempty"`
	FAQData          []FAQItem         `json:"faqData,omitempty"`
}

// InMenu reports whether the page appears in menus and the sitemap
func (p SitePage) InMenu() bool {
	return p.ShowInMenu == nil || *p.ShowInMenu
}

// LegalSection is one titled section of a legal page
type LegalSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// LegalPage is a standalone policy document, independent of SitePage.
// Only its footer-link projection participates in page rendering.
type LegalPage struct {
	ID           string         `json:"id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	ShowInFooter bool           `json:"showInFooter"`
	Sections     []LegalSection `json:"sections"`
}
