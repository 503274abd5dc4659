package session

import (
	"coursepanel/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBulkURLs_Positional(t *testing.T) {
	s := newTestSession(t)
	s.AddCourse()
	s.AddCourse()

	err := s.ApplyBulkURLs("https://a.example.com\n#\nhttps://c.example.com", ImportTargetMain)
	require.NoError(t, err)

	courses := s.Content().Courses
	assert.Equal(t, "https://a.example.com", courses[0].Url)
	assert.Equal(t, "#", courses[1].Url)
	assert.Equal(t, "https://c.example.com", courses[2].Url)
}

func TestApplyBulkURLs_SurplusCoursesKeepURL(t *testing.T) {
	s := newTestSession(t)
	added := s.AddCourse()

	err := s.ApplyBulkURLs("https://only-first.example.com", ImportTargetMain)
	require.NoError(t, err)

	courses := s.Content().Courses
	assert.Equal(t, "https://only-first.example.com", courses[0].Url)
	assert.Equal(t, added.Url, courses[1].Url)
}

func TestApplyBulkURLs_AtomicOnInvalidLine(t *testing.T) {
	s := newTestSession(t)
	s.AddCourse()
	before := s.Content()

	err := s.ApplyBulkURLs("https://ok.example.com\nftp://bad.example.com", ImportTargetMain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	// One bad line rejects the whole batch
	assert.Equal(t, before, s.Content())
	assert.False(t, s.IsModified())
}

func TestApplyBulkURLs_RejectsRelativeURL(t *testing.T) {
	s := newTestSession(t)

	assert.Error(t, s.ApplyBulkURLs("/just/a/path", ImportTargetMain))
	assert.Error(t, s.ApplyBulkURLs("not a url", ImportTargetMain))
}

func TestApplyBulkURLs_PageTargets(t *testing.T) {
	s := newTestSession(t)
	page := s.AddPage()

	// A page without its own course list cannot take bulk URLs
	err := s.ApplyBulkURLs("https://a.example.com", page.Slug)
	assert.Error(t, err)

	page.Courses = []models.Course{{ID: 1, Title: "Курс", School: "Школа", Url: "#"}}
	require.True(t, s.UpdatePage(page.ID, page))

	require.NoError(t, s.ApplyBulkURLs("https://a.example.com", page.Slug))
	assert.Equal(t, "https://a.example.com", s.Content().Pages[0].Courses[0].Url)

	assert.Error(t, s.ApplyBulkURLs("https://a.example.com", "no-such-page"))
}

func TestParsePromoLine(t *testing.T) {
	promo := ParsePromoLine("CODE10", "Скидка на курс", 10)
	assert.Equal(t, models.PromoCode{Code: "CODE10", DiscountText: "Скидка на курс", DiscountPercent: 10}, promo)

	promo = ParsePromoLine("CODE20 | Специальная цена | 20", "Скидка", 10)
	assert.Equal(t, models.PromoCode{Code: "CODE20", DiscountText: "Специальная цена", DiscountPercent: 20}, promo)

	// A blank middle field falls back to the default text
	promo = ParsePromoLine("CODE30||30", "Скидка", 10)
	assert.Equal(t, models.PromoCode{Code: "CODE30", DiscountText: "Скидка", DiscountPercent: 30}, promo)

	// An unparsable percent keeps the default
	promo = ParsePromoLine("CODE40|Текст|percent", "Скидка", 10)
	assert.Equal(t, 10, promo.DiscountPercent)
}

func TestApplyBulkPromos_Positional(t *testing.T) {
	s := newTestSession(t)
	s.AddCourse()

	err := s.ApplyBulkPromos("FIRST\nSECOND|Другой текст|25", ImportTargetMain, "Скидка на курс", 10)
	require.NoError(t, err)

	courses := s.Content().Courses
	require.NotNil(t, courses[0].PromoCode)
	assert.Equal(t, "FIRST", courses[0].PromoCode.Code)
	assert.Equal(t, "Скидка на курс", courses[0].PromoCode.DiscountText)
	require.NotNil(t, courses[1].PromoCode)
	assert.Equal(t, "SECOND", courses[1].PromoCode.Code)
	assert.Equal(t, 25, courses[1].PromoCode.DiscountPercent)
}

func TestApplyBulkPromos_UnknownPage(t *testing.T) {
	s := newTestSession(t)

	assert.Error(t, s.ApplyBulkPromos("CODE", "missing-page", "Скидка", 10))
}
