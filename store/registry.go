package store

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"cab/models/course"
)

var validate = validator.New()

// ItemAttrs is the caller-supplied attribute set for creating or editing a
// content item. Which fields matter depends on the kind; the rest are
// ignored. Owner, position and timestamps are never part of this — they
// are stamped server-side.
type ItemAttrs struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	URL      string `json:"url"`
	FilePath string `json:"file_path"`
}

// Per-kind schemas. Validation errors are reported against the json field
// names the client sent.
type textSchema struct {
	Title string `validate:"required,max=255"`
	Body  string `validate:"required"`
}

type videoSchema struct {
	Title string `validate:"required,max=255"`
	URL   string `validate:"required,url,max=200"`
}

type blobSchema struct {
	Title    string `validate:"required,max=255"`
	FilePath string `validate:"required,max=100"`
}

var schemaFieldNames = map[string]string{
	"Title":    "title",
	"Body":     "body",
	"URL":      "url",
	"FilePath": "file_path",
}

func schemaCheck(schema interface{}) error {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		name := schemaFieldNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required!"
		case "url":
			fields[name] = "Must be a valid URL!"
		case "max":
			fields[name] = "Value is too long!"
		default:
			fields[name] = "Invalid value!"
		}
	}
	return &ValidationError{Fields: fields}
}

func checkAttrs(kind string, attrs ItemAttrs) error {
	switch kind {
	case course.KindText:
		return schemaCheck(textSchema{Title: attrs.Title, Body: attrs.Body})
	case course.KindVideo:
		return schemaCheck(videoSchema{Title: attrs.Title, URL: attrs.URL})
	case course.KindImage, course.KindFile:
		return schemaCheck(blobSchema{Title: attrs.Title, FilePath: attrs.FilePath})
	}
	return ErrInvalidKind
}

// ResolveItem loads the concrete record behind a (kind, id) reference.
func (s *Store) ResolveItem(kind string, id uint) (course.Item, error) {
	switch kind {
	case course.KindText:
		var it course.TextItem
		if err := s.db.First(&it, id).Error; err != nil {
			return nil, notFound(err)
		}
		return &it, nil
	case course.KindVideo:
		var it course.VideoItem
		if err := s.db.First(&it, id).Error; err != nil {
			return nil, notFound(err)
		}
		return &it, nil
	case course.KindImage:
		var it course.ImageItem
		if err := s.db.First(&it, id).Error; err != nil {
			return nil, notFound(err)
		}
		return &it, nil
	case course.KindFile:
		var it course.FileItem
		if err := s.db.First(&it, id).Error; err != nil {
			return nil, notFound(err)
		}
		return &it, nil
	}
	return nil, ErrInvalidKind
}

// CreateOrUpdateItem validates attrs against the kind's schema and either
// creates a fresh item owned by ownerID or updates existingID. Updates are
// scoped to the owner: editing someone else's item reads as not found.
func (s *Store) CreateOrUpdateItem(kind string, ownerID uint, attrs ItemAttrs, existingID *uint) (course.Item, error) {
	if !course.IsAllowedKind(kind) {
		return nil, ErrInvalidKind
	}
	if err := checkAttrs(kind, attrs); err != nil {
		return nil, err
	}

	if existingID == nil {
		return createItem(s.db, kind, ownerID, attrs)
	}
	return s.updateItem(kind, ownerID, attrs, *existingID)
}

func createItem(tx *gorm.DB, kind string, ownerID uint, attrs ItemAttrs) (course.Item, error) {
	base := course.ItemBase{OwnerID: ownerID, Title: attrs.Title}

	var item course.Item
	switch kind {
	case course.KindText:
		item = &course.TextItem{ItemBase: base, Body: attrs.Body}
	case course.KindVideo:
		item = &course.VideoItem{ItemBase: base, URL: attrs.URL}
	case course.KindImage:
		item = &course.ImageItem{ItemBase: base, FilePath: attrs.FilePath}
	case course.KindFile:
		item = &course.FileItem{ItemBase: base, FilePath: attrs.FilePath}
	}
	if err := tx.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) updateItem(kind string, ownerID uint, attrs ItemAttrs, id uint) (course.Item, error) {
	owned := s.db.Where("id = ? AND owner_id = ?", id, ownerID)

	switch kind {
	case course.KindText:
		var it course.TextItem
		if err := owned.First(&it).Error; err != nil {
			return nil, notFound(err)
		}
		it.Title, it.Body = attrs.Title, attrs.Body
		if err := s.db.Save(&it).Error; err != nil {
			return nil, err
		}
		return &it, nil
	case course.KindVideo:
		var it course.VideoItem
		if err := owned.First(&it).Error; err != nil {
			return nil, notFound(err)
		}
		it.Title, it.URL = attrs.Title, attrs.URL
		if err := s.db.Save(&it).Error; err != nil {
			return nil, err
		}
		return &it, nil
	case course.KindImage:
		var it course.ImageItem
		if err := owned.First(&it).Error; err != nil {
			return nil, notFound(err)
		}
		it.Title, it.FilePath = attrs.Title, attrs.FilePath
		if err := s.db.Save(&it).Error; err != nil {
			return nil, err
		}
		return &it, nil
	case course.KindFile:
		var it course.FileItem
		if err := owned.First(&it).Error; err != nil {
			return nil, notFound(err)
		}
		it.Title, it.FilePath = attrs.Title, attrs.FilePath
		if err := s.db.Save(&it).Error; err != nil {
			return nil, err
		}
		return &it, nil
	}
	return nil, ErrInvalidKind
}
