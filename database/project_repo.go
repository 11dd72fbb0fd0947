package database

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio-backend/models"
)

type ProjectRepo struct {
	*Repo[models.Project]
}

// NewProjectRepo creates the project repository. Projects list newest first.
func NewProjectRepo(db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{&Repo[models.Project]{
		col:    db.Collection(ColProjects),
		entity: "Project",
		sort:   bson.D{{Key: "created_at", Value: -1}},
	}}
}
