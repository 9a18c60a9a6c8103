package catalog

import "slices"

// ContentType is the closed set of media kinds an item can have.
type ContentType string

const (
	Article  ContentType = "ARTICLE"
	Video    ContentType = "VIDEO"
	Image    ContentType = "IMAGE"
	Document ContentType = "DOCUMENT"
)

// ContentTypes lists every valid ContentType in sidebar order.
var ContentTypes = []ContentType{Article, Video, Image, Document}

// Valid reports whether t is one of the four known types.
func (t ContentType) Valid() bool {
	switch t {
	case Article, Video, Image, Document:
		return true
	}
	return false
}

// Label is the plural display name used by type filters ("Videos").
func (t ContentType) Label() string {
	switch t {
	case Article:
		return "Articles"
	case Video:
		return "Videos"
	case Image:
		return "Images"
	case Document:
		return "Documents"
	}
	return string(t)
}

// Item is one catalog entry. Items are read-only after Load.
type Item struct {
	ID           string      `yaml:"id" json:"id"`
	Title        string      `yaml:"title" json:"title"`
	Excerpt      string      `yaml:"excerpt" json:"excerpt"`
	Content      string      `yaml:"content" json:"content"`
	Type         ContentType `yaml:"type" json:"type"`
	Tags         []string    `yaml:"tags" json:"tags"`
	ThumbnailURL string      `yaml:"thumbnail_url" json:"thumbnailUrl"`
	Author       string      `yaml:"author" json:"author"`
	Date         string      `yaml:"date" json:"date"`
	VideoURL     string      `yaml:"video_url,omitempty" json:"videoUrl,omitempty"`
	DocURL       string      `yaml:"doc_url,omitempty" json:"docUrl,omitempty"`
}

// HasTag reports whether the item carries tag exactly.
func (it Item) HasTag(tag string) bool {
	return slices.Contains(it.Tags, tag)
}

func (it Item) clone() Item {
	it.Tags = slices.Clone(it.Tags)
	return it
}

// Category is a tag-based grouping. Count is an advisory label from the
// dataset and is not kept in sync with the items.
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count" json:"count"`
}

// Attachment is the type-specific part of an item. Exactly one concrete
// attachment exists per ContentType.
type Attachment interface {
	contentType() ContentType
}

// ArticleBody marks text-only items.
type ArticleBody struct{}

// VideoPlayer carries the playable media reference, which may be empty.
type VideoPlayer struct{ URL string }

// ImageFrame shows the item's thumbnail as the primary media.
type ImageFrame struct{ URL string }

// DocumentPreview carries the document reference. An empty URL means no
// preview is available.
type DocumentPreview struct{ URL string }

func (ArticleBody) contentType() ContentType     { return Article }
func (VideoPlayer) contentType() ContentType     { return Video }
func (ImageFrame) contentType() ContentType      { return Image }
func (DocumentPreview) contentType() ContentType { return Document }

// Attachment returns the variant for the item's explicit type tag, or nil
// when the tag is not a known ContentType.
func (it Item) Attachment() Attachment {
	switch it.Type {
	case Article:
		return ArticleBody{}
	case Video:
		return VideoPlayer{URL: it.VideoURL}
	case Image:
		return ImageFrame{URL: it.ThumbnailURL}
	case Document:
		return DocumentPreview{URL: it.DocURL}
	}
	return nil
}
