package database

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio-backend/models"
)

type AchievementRepo struct {
	*Repo[models.Achievement]
}

// NewAchievementRepo creates the achievement repository. Achievements list in
// insertion order (ObjectIDs are time-prefixed, so _id order is stable
// creation order).
func NewAchievementRepo(db *mongo.Database) *AchievementRepo {
	return &AchievementRepo{&Repo[models.Achievement]{
		col:    db.Collection(ColAchievements),
		entity: "Achievement",
		sort:   bson.D{{Key: "_id", Value: 1}},
	}}
}
