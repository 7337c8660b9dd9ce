package course

import "gorm.io/gorm"

// Content item kinds. The set is closed: anything else is rejected before
// it reaches the database.
const (
	KindText  = "text"
	KindVideo = "video"
	KindImage = "image"
	KindFile  = "file"
)

// IsAllowedKind reports whether name is one of the four content kinds.
func IsAllowedKind(name string) bool {
	switch name {
	case KindText, KindVideo, KindImage, KindFile:
		return true
	}
	return false
}

// ItemBase carries the fields every item kind shares. Owner and the
// timestamps are stamped by the server, never taken from request payloads.
type ItemBase struct {
	gorm.Model
	OwnerID uint   `json:"owner_id" gorm:"index;not null"`
	Title   string `json:"title"`
}

// Rendered is the uniform display representation of any item kind.
type Rendered struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Item is what every concrete kind satisfies. Rendering lives with the
// kind; nothing outside this file knows what a kind looks like inside.
type Item interface {
	Kind() string
	ItemID() uint
	Render() Rendered
}

type TextItem struct {
	ItemBase
	Body string `json:"body" gorm:"type:text"`
}

func (t *TextItem) Kind() string { return KindText }
func (t *TextItem) ItemID() uint { return t.ID }
func (t *TextItem) Render() Rendered {
	return Rendered{Kind: KindText, Title: t.Title, Body: t.Body}
}

type VideoItem struct {
	ItemBase
	URL string `json:"url"`
}

func (v *VideoItem) Kind() string { return KindVideo }
func (v *VideoItem) ItemID() uint { return v.ID }
func (v *VideoItem) Render() Rendered {
	return Rendered{Kind: KindVideo, Title: v.Title, URL: v.URL}
}

type ImageItem struct {
	ItemBase
	FilePath string `json:"file_path"`
}

func (i *ImageItem) Kind() string { return KindImage }
func (i *ImageItem) ItemID() uint { return i.ID }
func (i *ImageItem) Render() Rendered {
	return Rendered{Kind: KindImage, Title: i.Title, URL: "/uploads/" + i.FilePath}
}

type FileItem struct {
	ItemBase
	FilePath string `json:"file_path"`
}

func (f *FileItem) Kind() string { return KindFile }
func (f *FileItem) ItemID() uint { return f.ID }
func (f *FileItem) Render() Rendered {
	return Rendered{Kind: KindFile, Title: f.Title, URL: "/uploads/" + f.FilePath}
}
