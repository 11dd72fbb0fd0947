package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Repo provides the uniform CRUD surface shared by every entity collection.
// Per-entity repos embed it, supplying their collection and default sort.
type Repo[T any] struct {
	col    *mongo.Collection
	entity string
	sort   bson.D
}

// FindAll returns every document in the collection in the entity's default
// order.
func (r *Repo[T]) FindAll(ctx context.Context) ([]*T, error) {
	opts := options.Find()
	if r.sort != nil {
		opts = opts.SetSort(r.sort)
	}
	return findMany[T](ctx, r.col, r.entity, bson.D{}, opts)
}

// FindByID returns the document with the given id, or (nil, nil) when absent.
func (r *Repo[T]) FindByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	return findOne[T](ctx, r.col, r.entity, bson.D{{Key: "_id", Value: id}})
}

// Add inserts a new document. Unique index violations surface as an
// already-exists error.
func (r *Repo[T]) Add(ctx context.Context, doc *T) error {
	return insertOne(ctx, r.col, r.entity, doc)
}

// Replace overwrites the document with the given id.
func (r *Repo[T]) Replace(ctx context.Context, id bson.ObjectID, doc *T) error {
	return replaceByID(ctx, r.col, r.entity, id, doc)
}

// Delete permanently removes the document with the given id.
func (r *Repo[T]) Delete(ctx context.Context, id bson.ObjectID) error {
	return deleteByID(ctx, r.col, r.entity, id)
}
