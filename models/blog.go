package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
)

// Blog represents a blog post with Markdown content
type Blog struct {
	ID            bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string        `json:"title" bson:"title"`
	Slug          string        `json:"slug" bson:"slug"`
	Summary       string        `json:"summary" bson:"summary"`
	Content       string        `json:"content" bson:"content"`
	CoverImage    string        `json:"coverImage" bson:"cover_image"`
	Tags          []string      `json:"tags" bson:"tags"`
	PublishedDate time.Time     `json:"publishedDate" bson:"published_date"`
}

func (b *Blog) GetID() bson.ObjectID { return b.ID }

func (b *Blog) SetID(id bson.ObjectID) { b.ID = id }

func (b *Blog) ApplyDefaults() {
	if b.ID.IsZero() {
		b.ID = bson.NewObjectID()
	}
	b.Slug = strings.ToLower(strings.TrimSpace(b.Slug))
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.PublishedDate.IsZero() {
		b.PublishedDate = time.Now().UTC()
	}
}

func (b *Blog) Validate() error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return errs.NewMissingRequiredFieldError("title")
	case b.Slug == "":
		return errs.NewMissingRequiredFieldError("slug")
	case strings.TrimSpace(b.Summary) == "":
		return errs.NewMissingRequiredFieldError("summary")
	case strings.TrimSpace(b.Content) == "":
		return errs.NewMissingRequiredFieldError("content")
	case strings.TrimSpace(b.CoverImage) == "":
		return errs.NewMissingRequiredFieldError("coverImage")
	}
	return nil
}
