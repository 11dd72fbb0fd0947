package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
)

// Project represents a portfolio project with descriptions and metadata
type Project struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string        `json:"title" bson:"title"`
	Slug         string        `json:"slug" bson:"slug"`
	Summary      string        `json:"summary" bson:"summary"`
	Description  string        `json:"description" bson:"description"`
	CoverImage   string        `json:"coverImage" bson:"cover_image"`
	Technologies []string      `json:"technologies" bson:"technologies"`
	LiveURL      string        `json:"liveUrl,omitempty" bson:"live_url,omitempty"`
	GithubURL    string        `json:"githubUrl,omitempty" bson:"github_url,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
}

func (p *Project) GetID() bson.ObjectID { return p.ID }

func (p *Project) SetID(id bson.ObjectID) { p.ID = id }

func (p *Project) ApplyDefaults() {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
}

func (p *Project) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return errs.NewMissingRequiredFieldError("title")
	case p.Slug == "":
		return errs.NewMissingRequiredFieldError("slug")
	case strings.TrimSpace(p.Summary) == "":
		return errs.NewMissingRequiredFieldError("summary")
	case strings.TrimSpace(p.Description) == "":
		return errs.NewMissingRequiredFieldError("description")
	case strings.TrimSpace(p.CoverImage) == "":
		return errs.NewMissingRequiredFieldError("coverImage")
	case len(p.Technologies) == 0:
		return errs.NewMissingRequiredFieldError("technologies")
	}
	return nil
}
