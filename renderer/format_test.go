package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Бесплатно", FormatPrice(0))
	assert.Equal(t, "990 ₽", FormatPrice(990))
	assert.Equal(t, "45\u00a0000 ₽", FormatPrice(45000))
	assert.Equal(t, "1\u00a0250\u00a0000 ₽", FormatPrice(1250000))
}

func TestPriceBadge(t *testing.T) {
	monthly := 3500

	// An installment supersedes the plain price in list contexts
	assert.Equal(t, "от 3\u00a0500 ₽/мес", priceBadge(45000, &monthly))
	assert.Equal(t, "45\u00a0000 ₽", priceBadge(45000, nil))
	assert.Equal(t, "Бесплатно", priceBadge(0, nil))
}

func TestMedal(t *testing.T) {
	assert.Equal(t, "🥇", Medal(1))
	assert.Equal(t, "🥈", Medal(2))
	assert.Equal(t, "🥉", Medal(3))
	assert.Equal(t, "", Medal(4))
	assert.Equal(t, "", Medal(0))
}

func TestRuDate(t *testing.T) {
	assert.Equal(t, "2 марта 2025 г.", ruDate(time.Date(2025, time.March, 2, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 декабря 2024 г.", ruDate(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;&amp;&quot;&#039;", EscapeHTML(`<b>&"'`))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "жирный текст", StripTags("  <b>жирный</b> текст "))
	assert.Equal(t, "чистый", StripTags("чистый"))
}
