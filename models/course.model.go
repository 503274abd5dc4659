package models

// TeacherInfo is one course teacher entry
type TeacherInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ReviewLink points to a third-party review platform.
// Count and Rating are display strings, not numbers.
type ReviewLink struct {
	Platform string `json:"platform"`
	Count    string `json:"count"`
	Rating   string `json:"rating"`
	Url      string `json:"url"`
}

// PromoCode is an embedded value object on Course. Presence of Code is the
// sole gate for rendering promo UI; the other fields are cosmetic.
type PromoCode struct {
	Code            string `json:"code"`
	DiscountText    string `json:"discountText"`
	DiscountPercent int    `json:"discountPercent"`
}

// Course represents one listed course. ID is stable identity used for
// reordering and must never be renumbered; display rank is the array position.
type Course struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	School      string        `json:"school"`
	SchoolLogo  string        `json:"schoolLogo"`
	Url         string        `json:"url"`
	Price       int           `json:"price"`
	OldPrice    *int          `json:"oldPrice,omitempty"`
	Installment *int          `json:"installment,omitempty"`
	Format      string        `json:"format"`
	Duration    string        `json:"duration"`
	Document    string        `json:"document"`
	ForWhom     string        `json:"forWhom"`
	Features    string        `json:"features"`
	Skills      []string      `json:"skills"`
	Advantages  []string      `json:"advantages"`
	Teachers    []TeacherInfo `json:"teachers,omitempty"`
	Program     []string      `json:"program,omitempty"`
	Reviews     string        `json:"reviews"`
	ReviewLinks []ReviewLink  `json:"reviewLinks"`
	Badge       string        `json:"badge,omitempty"`
	Discount    string        `json:"discount,omitempty"`
	PromoCode   *PromoCode    `json:"promoCode,omitempty"`
}
