// Package render maps a post's block tree into an HTML fragment. It is a
// pure mapping with no I/O; unknown block kinds render to nothing rather
// than failing.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/noobdev/site-api/internal/models"
)

// MetaDescriptionLimit caps the length of the derived meta description.
const MetaDescriptionLimit = 150

// Blocks renders an ordered block sequence to an HTML fragment.
func Blocks(blocks []models.Block) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(Block(block))
	}
	return b.String()
}

// Block renders a single block. The switch is exhaustive over the closed
// tag set; the default case is the ignore-unknown policy.
func Block(b models.Block) string {
	switch b.Type {
	case models.BlockParagraph:
		return "<p>" + spans(richText(b)) + "</p>"
	case models.BlockHeading1:
		return "<h1>" + escapeFirst(b) + "</h1>"
	case models.BlockHeading2:
		return "<h2>" + escapeFirst(b) + "</h2>"
	case models.BlockHeading3:
		return "<h3>" + escapeFirst(b) + "</h3>"
	case models.BlockBulletedListItem, models.BlockNumberedListItem:
		return "<li>" + escapeFirst(b) + "</li>"
	case models.BlockCode:
		return "<pre><code>" + escapeFirst(b) + "</code></pre>"
	case models.BlockImage:
		return image(b.Image)
	case models.BlockQuote:
		return "<blockquote>" + escapeFirst(b) + "</blockquote>"
	default:
		return ""
	}
}

// MetaDescription derives a description from the first paragraph's leading
// text, truncated to MetaDescriptionLimit runes.
func MetaDescription(blocks []models.Block) string {
	for _, b := range blocks {
		if b.Type != models.BlockParagraph {
			continue
		}
		text := firstText(richText(b))
		runes := []rune(text)
		if len(runes) > MetaDescriptionLimit {
			return string(runes[:MetaDescriptionLimit])
		}
		return text
	}
	return ""
}

// spans renders each text span with at most one styling tag, in priority
// order bold > italic > code.
func spans(rt []models.RichText) string {
	var b strings.Builder
	for _, t := range rt {
		text := html.EscapeString(t.PlainText)
		switch {
		case t.Annotations.Bold:
			b.WriteString("<strong>" + text + "</strong>")
		case t.Annotations.Italic:
			b.WriteString("<em>" + text + "</em>")
		case t.Annotations.Code:
			b.WriteString("<code>" + text + "</code>")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

func image(img *models.ImageBlock) string {
	if img == nil {
		return ""
	}
	src := img.URL()
	if src == "" {
		return ""
	}

	caption := firstText(img.Caption)
	alt := caption
	if alt == "" {
		alt = "Blog Image"
	}

	out := fmt.Sprintf("<figure><img src=%q alt=%q>", src, html.EscapeString(alt))
	if caption != "" {
		out += "<figcaption>" + html.EscapeString(caption) + "</figcaption>"
	}
	return out + "</figure>"
}

func richText(b models.Block) []models.RichText {
	if v := b.Text(); v != nil {
		return v.RichText
	}
	return nil
}

func escapeFirst(b models.Block) string {
	return html.EscapeString(firstText(richText(b)))
}

func firstText(rt []models.RichText) string {
	if len(rt) == 0 {
		return ""
	}
	return rt[0].PlainText
}
