package database

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio-backend/models"
)

type BlogRepo struct {
	*Repo[models.Blog]
}

// NewBlogRepo creates the blog repository. Blogs list newest first by publish
// date.
func NewBlogRepo(db *mongo.Database) *BlogRepo {
	return &BlogRepo{&Repo[models.Blog]{
		col:    db.Collection(ColBlogs),
		entity: "Blog",
		sort:   bson.D{{Key: "published_date", Value: -1}},
	}}
}
