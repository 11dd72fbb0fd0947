package database

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio-backend/models"
)

type ContactRepo struct {
	*Repo[models.Contact]
}

// NewContactRepo creates the contact repository. Contacts list in creation
// order via _id.
func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{&Repo[models.Contact]{
		col:    db.Collection(ColContacts),
		entity: "Contact",
		sort:   bson.D{{Key: "_id", Value: 1}},
	}}
}
