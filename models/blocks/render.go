package blocks

import (
	"fmt"
	"html/template"
	"strings"
)

// RenderHTML renders a persisted block sequence into escaped HTML, one
// element per block, in sequence order.
func RenderHTML(s Sequence) string {
	var sb strings.Builder
	for _, b := range s {
		renderBlock(&sb, b)
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, b Block) {
	switch v := b.(type) {
	case Heading:
		level := v.Level
		if level < 2 || level > 4 {
			level = 2
		}
		fmt.Fprintf(sb, "<h%d>%s</h%d>\n", level, esc(v.Text), level)
	case Paragraph:
		fmt.Fprintf(sb, "<p>%s</p>\n", esc(v.Text))
	case Image:
		sb.WriteString("<figure>")
		fmt.Fprintf(sb, `<img src="%s" alt="%s">`, esc(v.Src), esc(v.Caption))
		if v.Caption != "" {
			fmt.Fprintf(sb, "<figcaption>%s</figcaption>", esc(v.Caption))
		}
		sb.WriteString("</figure>\n")
	case Code:
		fmt.Fprintf(sb, "<pre><code class=\"language-%s\">%s</code></pre>\n", esc(v.Language), esc(v.Code))
	case LinkList:
		sb.WriteString("<ul>\n")
		for _, link := range v.Links {
			fmt.Fprintf(sb, "<li><a href=\"%s\">%s</a></li>\n", esc(link.URL), esc(link.Title))
		}
		sb.WriteString("</ul>\n")
	}
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}
