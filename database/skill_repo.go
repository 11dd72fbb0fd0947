package database

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio-backend/models"
)

type SkillRepo struct {
	*Repo[models.Skill]
}

// NewSkillRepo creates the skill repository. Skills list by category then
// name, both ascending.
func NewSkillRepo(db *mongo.Database) *SkillRepo {
	return &SkillRepo{&Repo[models.Skill]{
		col:    db.Collection(ColSkills),
		entity: "Skill",
		sort:   bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}},
	}}
}
