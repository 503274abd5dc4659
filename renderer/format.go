package renderer

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ruPrinter = message.NewPrinter(language.Russian)

// formatNumber renders an integer with Russian digit grouping
// (non-breaking-space separated thousands)
func formatNumber(n int) string {
	return ruPrinter.Sprintf("%d", n)
}

// FormatPrice renders a price in rubles; a zero or absent price is free
func FormatPrice(price int) string {
	if price == 0 {
		return "Бесплатно"
	}
	return formatNumber(price) + " ₽"
}

// installmentLabel is the "from N/month" framing used in list views
func installmentLabel(monthly int) string {
	return "от " + formatNumber(monthly) + " ₽/мес"
}

// priceBadge picks the cheapest framing for list contexts: an installment
// always supersedes the plain price there.
func priceBadge(price int, installment *int) string {
	if installment != nil {
		return installmentLabel(*installment)
	}
	return FormatPrice(price)
}

// Medal returns the glyph for top-3 display positions, empty otherwise
func Medal(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// ruDate formats a date the way the header badge expects: "2 марта 2025 г."
func ruDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + " " + ruMonths[t.Month()-1] + " " + strconv.Itoa(t.Year()) + " г."
}
