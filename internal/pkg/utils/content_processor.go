package utils

import (
	"html"
	"html/template"
	"strings"
)

// FormatArticleContent turns plain-text article content into display HTML.
// The input is escaped first, then blank-line separated blocks become
// paragraphs and single newlines become line breaks.
func FormatArticleContent(content string) template.HTML {
	escaped := html.EscapeString(strings.TrimSpace(content))
	if escaped == "" {
		return ""
	}

	blocks := strings.Split(strings.ReplaceAll(escaped, "\r\n", "\n"), "\n\n")

	var b strings.Builder
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(block, "\n", "<br>"))
		b.WriteString("</p>\n")
	}

	return template.HTML(b.String())
}
