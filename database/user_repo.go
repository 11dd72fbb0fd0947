package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"portfolio-backend/models"
)

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(ColUsers)}
}

// FindByUsername returns the user with the given username, or (nil, nil) when
// no such user exists.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return findOne[models.User](ctx, r.col, "User", bson.D{{Key: "username", Value: username}})
}

// Add inserts a new user. A duplicate username surfaces as an already-exists
// error via the unique index.
func (r *UserRepo) Add(ctx context.Context, user *models.User) error {
	return insertOne(ctx, r.col, "User", user)
}
