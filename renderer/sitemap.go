package renderer

import "strings"

type sitemapEntry struct {
	loc      string
	priority string
}

// Sitemap renders sitemap.xml: the root page at priority 1.0 plus every
// menu-visible section page at 0.8, all stamped with the current date.
func (r *Renderer) Sitemap() string {
	base := baseURL(r.doc)

	entries := []sitemapEntry{{loc: base + "/", priority: "1.0"}}
	for _, page := range r.doc.Pages {
		if page.InMenu() {
			entries = append(entries, sitemapEntry{loc: base + "/" + page.Slug, priority: "0.8"})
		}
	}

	lastmod := r.now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, e := range entries {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + EscapeHTML(e.loc) + "</loc>\n")
		b.WriteString("    <lastmod>" + lastmod + "</lastmod>\n")
		b.WriteString("    <changefreq>weekly</changefreq>\n")
		b.WriteString("    <priority>" + e.priority + "</priority>\n")
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>")
	return b.String()
}
