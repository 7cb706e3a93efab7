package utils

import (
	"regexp"
	"strings"
)

var (
	headingRe       = regexp.MustCompile(`(?m)^#{1,6}\s*(.+)$`)
	extraNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// FormatMarkdown tidies model or template output before sending: trims,
// collapses runs of blank lines and closes an unbalanced bold marker that
// would otherwise break rendering on the transport side.
func FormatMarkdown(text string) string {
	if text == "" {
		return ""
	}

	text = extraNewlinesRe.ReplaceAllString(strings.TrimSpace(text), "\n\n")

	if strings.Count(text, "**")%2 != 0 {
		text += "**"
	}

	return strings.TrimSpace(text)
}

// FlattenHeadings rewrites markdown headings as bold lines; chat transports
// typically render "# ..." literally.
func FlattenHeadings(text string) string {
	return headingRe.ReplaceAllString(text, "**$1**")
}
