package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
)

// Achievement represents a certification, award, or achievement. Date is a
// free-text label ("Aug 2025") rather than a timestamp.
type Achievement struct {
	ID              bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string        `json:"title" bson:"title"`
	Issuer          string        `json:"issuer,omitempty" bson:"issuer,omitempty"`
	URL             string        `json:"url,omitempty" bson:"url,omitempty"`
	IsCertification bool          `json:"isCertification" bson:"is_certification"`
	Date            string        `json:"date,omitempty" bson:"date,omitempty"`
}

func (a *Achievement) GetID() bson.ObjectID { return a.ID }

func (a *Achievement) SetID(id bson.ObjectID) { a.ID = id }

func (a *Achievement) ApplyDefaults() {
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	a.Title = strings.TrimSpace(a.Title)
}

func (a *Achievement) Validate() error {
	if a.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	return nil
}
