package session

import (
	"coursepanel/models"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// isAssignableURL accepts empty lines and "#" placeholders; everything else
// must parse as an absolute http/https URL.
func isAssignableURL(u string) bool {
	if u == "" || u == "#" {
		return true
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// assignURLs maps input lines onto courses positionally; courses beyond the
// input keep their current URL.
func assignURLs(courses []models.Course, urls []string) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	for i := range out {
		if i < len(urls) && urls[i] != "" {
			out[i].Url = urls[i]
		}
	}
	return out
}

// ParsePromoLine parses "code" or "code|discountText|discountPercent";
// missing tail fields fall back to the supplied defaults.
func ParsePromoLine(line, defaultText string, defaultPercent int) models.PromoCode {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	promo := models.PromoCode{Code: parts[0], DiscountText: defaultText, DiscountPercent: defaultPercent}
	if len(parts) > 1 && parts[1] != "" {
		promo.DiscountText = parts[1]
	}
	if len(parts) > 2 {
		if percent, err := strconv.Atoi(parts[2]); err == nil && percent != 0 {
			promo.DiscountPercent = percent
		}
	}
	return promo
}

func assignPromos(courses []models.Course, lines []string, defaultText string, defaultPercent int) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	for i := range out {
		if i < len(lines) && lines[i] != "" {
			promo := ParsePromoLine(lines[i], defaultText, defaultPercent)
			out[i].PromoCode = &promo
		}
	}
	return out
}

// ApplyBulkURLs assigns newline-separated URLs positionally to the target's
// course list ("main" or a page slug). The batch is atomic: one invalid
// line rejects everything with zero mutation.
func (s *Session) ApplyBulkURLs(text, target string) error {
	urls := splitLines(text)
	for i, u := range urls {
		if !isAssignableURL(u) {
			return fmt.Errorf("invalid URL on line %d: %s", i+1, u)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if target == ImportTargetMain {
		s.doc.Courses = assignURLs(s.doc.Courses, urls)
		s.modified = true
		return nil
	}

	for i := range s.doc.Pages {
		if s.doc.Pages[i].Slug == target {
			if len(s.doc.Pages[i].Courses) == 0 {
				return fmt.Errorf("page %q has no course list of its own", target)
			}
			s.doc.Pages[i].Courses = assignURLs(s.doc.Pages[i].Courses, urls)
			s.modified = true
			return nil
		}
	}
	return fmt.Errorf("page not found: %s", target)
}

// ApplyBulkPromos assigns newline-separated promo-code lines positionally;
// courses without a corresponding line keep their existing promo code.
func (s *Session) ApplyBulkPromos(text, target, defaultText string, defaultPercent int) error {
	lines := splitLines(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if target == ImportTargetMain {
		s.doc.Courses = assignPromos(s.doc.Courses, lines, defaultText, defaultPercent)
		s.modified = true
		return nil
	}

	for i := range s.doc.Pages {
		if s.doc.Pages[i].Slug == target {
			if len(s.doc.Pages[i].Courses) == 0 {
				return fmt.Errorf("page %q has no course list of its own", target)
			}
			s.doc.Pages[i].Courses = assignPromos(s.doc.Pages[i].Courses, lines, defaultText, defaultPercent)
			s.modified = true
			return nil
		}
	}
	return fmt.Errorf("page not found: %s", target)
}
