package models

// Post represents one blog post as exposed by the API. The source of truth
// is the Notion database; these fields are the normalized projection of a
// Notion page's properties.
type Post struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Excerpt  string  `json:"excerpt,omitempty"`
	ReadTime string  `json:"readTime,omitempty"`
	Image    string  `json:"image,omitempty"`
	Content  []Block `json:"content,omitempty"`
}

// Defaults applied when an optional Notion property is missing. A page with
// holes in it still maps to a complete post.
const (
	DefaultTitle    = "Untitled"
	DefaultCategory = "General"
	DefaultReadTime = "5 min read"
	DefaultImage    = "https://picsum.photos/800/400"
)

// BlockType tags a content block. The set is closed; anything else the
// source returns is carried by tag only and renders to nothing.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockCode             BlockType = "code"
	BlockImage            BlockType = "image"
	BlockQuote            BlockType = "quote"
)

// Block is one content unit of a post. It keeps the Notion wire shape so
// that block lists pass through the API and the static export unmodified.
type Block struct {
	ID               string         `json:"id,omitempty"`
	Type             BlockType      `json:"type"`
	Paragraph        *RichTextBlock `json:"paragraph,omitempty"`
	Heading1         *RichTextBlock `json:"heading_1,omitempty"`
	Heading2         *RichTextBlock `json:"heading_2,omitempty"`
	Heading3         *RichTextBlock `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBlock `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBlock `json:"numbered_list_item,omitempty"`
	Code             *RichTextBlock `json:"code,omitempty"`
	Image            *ImageBlock    `json:"image,omitempty"`
	Quote            *RichTextBlock `json:"quote,omitempty"`
}

// RichTextBlock carries the rich_text payload shared by every textual
// block kind.
type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// RichText is one styled span of plain text.
type RichText struct {
	PlainText   string      `json:"plain_text"`
	Annotations Annotations `json:"annotations"`
}

// Annotations are the styling flags a span can carry. The source never
// composes them; at most one applies per span.
type Annotations struct {
	Bold   bool `json:"bold"`
	Italic bool `json:"italic"`
	Code   bool `json:"code"`
}

// ImageBlock holds either an externally hosted or a Notion-hosted image.
type ImageBlock struct {
	Type     string     `json:"type"`
	External *FileRef   `json:"external,omitempty"`
	File     *FileRef   `json:"file,omitempty"`
	Caption  []RichText `json:"caption,omitempty"`
}

// FileRef points at a hosted file.
type FileRef struct {
	URL string `json:"url"`
}

// Text returns the payload of a rich-text block kind, or nil for image and
// unknown kinds.
func (b *Block) Text() *RichTextBlock {
	switch b.Type {
	case BlockParagraph:
		return b.Paragraph
	case BlockHeading1:
		return b.Heading1
	case BlockHeading2:
		return b.Heading2
	case BlockHeading3:
		return b.Heading3
	case BlockBulletedListItem:
		return b.BulletedListItem
	case BlockNumberedListItem:
		return b.NumberedListItem
	case BlockCode:
		return b.Code
	case BlockQuote:
		return b.Quote
	default:
		return nil
	}
}

// URL resolves the external-or-hosted image location.
func (i *ImageBlock) URL() string {
	if i.Type == "external" && i.External != nil {
		return i.External.URL
	}
	if i.File != nil {
		return i.File.URL
	}
	if i.External != nil {
		return i.External.URL
	}
	return ""
}
