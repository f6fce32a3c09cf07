package render

import (
	"strings"
	"testing"

	"github.com/noobdev/site-api/internal/models"
)

func rich(spans ...models.RichText) *models.RichTextBlock {
	return &models.RichTextBlock{RichText: spans}
}

func plain(text string) models.RichText {
	return models.RichText{PlainText: text}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name  string
		block models.Block
		want  string
	}{
		{
			name:  "paragraph",
			block: models.Block{Type: models.BlockParagraph, Paragraph: rich(plain("hello"))},
			want:  "<p>hello</p>",
		},
		{
			name:  "heading 1",
			block: models.Block{Type: models.BlockHeading1, Heading1: rich(plain("Top"))},
			want:  "<h1>Top</h1>",
		},
		{
			name:  "heading 2",
			block: models.Block{Type: models.BlockHeading2, Heading2: rich(plain("Mid"))},
			want:  "<h2>Mid</h2>",
		},
		{
			name:  "heading 3",
			block: models.Block{Type: models.BlockHeading3, Heading3: rich(plain("Low"))},
			want:  "<h3>Low</h3>",
		},
		{
			name:  "bulleted item",
			block: models.Block{Type: models.BlockBulletedListItem, BulletedListItem: rich(plain("item"))},
			want:  "<li>item</li>",
		},
		{
			name:  "numbered item",
			block: models.Block{Type: models.BlockNumberedListItem, NumberedListItem: rich(plain("step"))},
			want:  "<li>step</li>",
		},
		{
			name:  "code escapes markup",
			block: models.Block{Type: models.BlockCode, Code: rich(plain("a < b"))},
			want:  "<pre><code>a &lt; b</code></pre>",
		},
		{
			name:  "quote",
			block: models.Block{Type: models.BlockQuote, Quote: rich(plain("wisdom"))},
			want:  "<blockquote>wisdom</blockquote>",
		},
		{
			name:  "unknown kind renders nothing",
			block: models.Block{Type: "toggle"},
			want:  "",
		},
		{
			name:  "empty payload renders empty element",
			block: models.Block{Type: models.BlockParagraph},
			want:  "<p></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Block(tt.block); got != tt.want {
				t.Errorf("Block() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpans_AnnotationPriority(t *testing.T) {
	// Bold wins over italic wins over code; the source never composes them,
	// but a composed span must still pick exactly one style.
	block := models.Block{
		Type: models.BlockParagraph,
		Paragraph: rich(
			models.RichText{PlainText: "b", Annotations: models.Annotations{Bold: true, Italic: true}},
			models.RichText{PlainText: "i", Annotations: models.Annotations{Italic: true, Code: true}},
			models.RichText{PlainText: "c", Annotations: models.Annotations{Code: true}},
			plain("p"),
		),
	}

	got := Block(block)
	want := "<p><strong>b</strong><em>i</em><code>c</code>p</p>"
	if got != want {
		t.Errorf("Block() = %q, want %q", got, want)
	}
}

func TestImageBlock(t *testing.T) {
	block := models.Block{
		Type: models.BlockImage,
		Image: &models.ImageBlock{
			Type:     "external",
			External: &models.FileRef{URL: "https://img.example/pic.png"},
			Caption:  []models.RichText{plain("A picture")},
		},
	}

	got := Block(block)
	if !strings.Contains(got, `src="https://img.example/pic.png"`) {
		t.Errorf("Expected image source, got %q", got)
	}
	if !strings.Contains(got, "<figcaption>A picture</figcaption>") {
		t.Errorf("Expected caption, got %q", got)
	}
}

func TestImageBlock_HostedFile(t *testing.T) {
	block := models.Block{
		Type: models.BlockImage,
		Image: &models.ImageBlock{
			Type: "file",
			File: &models.FileRef{URL: "https://files.example/hosted.png"},
		},
	}

	got := Block(block)
	if !strings.Contains(got, "hosted.png") {
		t.Errorf("Expected hosted file url, got %q", got)
	}
	if strings.Contains(got, "figcaption") {
		t.Errorf("Expected no caption element, got %q", got)
	}
}

func TestBlocks_OrderAndSilence(t *testing.T) {
	blocks := []models.Block{
		{Type: models.BlockHeading1, Heading1: rich(plain("Title"))},
		{Type: "callout"}, // ignored
		{Type: models.BlockParagraph, Paragraph: rich(plain("Body"))},
	}

	got := Blocks(blocks)
	if got != "<h1>Title</h1><p>Body</p>" {
		t.Errorf("Blocks() = %q", got)
	}
}

func TestMetaDescription(t *testing.T) {
	long := strings.Repeat("x", 200)
	blocks := []models.Block{
		{Type: models.BlockHeading1, Heading1: rich(plain("Title"))},
		{Type: models.BlockParagraph, Paragraph: rich(plain(long))},
		{Type: models.BlockParagraph, Paragraph: rich(plain("second paragraph"))},
	}

	got := MetaDescription(blocks)
	if len([]rune(got)) != MetaDescriptionLimit {
		t.Errorf("Expected %d runes, got %d", MetaDescriptionLimit, len([]rune(got)))
	}
	if !strings.HasPrefix(long, got) {
		t.Error("Expected description from the first paragraph")
	}

	if MetaDescription(nil) != "" {
		t.Error("Expected empty description for no blocks")
	}
}
