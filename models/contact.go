package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
)

// Contact represents a social media link or other contact information
type Contact struct {
	ID       bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Sitename string        `json:"sitename" bson:"sitename"`
	Link     string        `json:"link" bson:"link"`
}

func (c *Contact) GetID() bson.ObjectID { return c.ID }

func (c *Contact) SetID(id bson.ObjectID) { c.ID = id }

func (c *Contact) ApplyDefaults() {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	c.Sitename = strings.TrimSpace(c.Sitename)
	c.Link = strings.TrimSpace(c.Link)
}

func (c *Contact) Validate() error {
	if c.Sitename == "" {
		return errs.NewMissingRequiredFieldError("sitename")
	}
	if c.Link == "" {
		return errs.NewMissingRequiredFieldError("link")
	}
	return nil
}
