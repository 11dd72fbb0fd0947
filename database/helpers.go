package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"portfolio-backend/errs"
)

// wrapError translates driver errors into the errs taxonomy so handlers never
// see opaque low-level errors.
func wrapError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NewNotFound(entity)
	}
	if mongo.IsDuplicateKeyError(err) {
		return errs.NewAlreadyExists(entity)
	}
	return err
}

// findOne decodes a single document. A missing document returns (nil, nil) so
// callers can distinguish absence from failure.
func findOne[T any](ctx context.Context, col *mongo.Collection, entity string, filter bson.D) (*T, error) {
	var result T
	err := col.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapError(entity, err)
	}
	return &result, nil
}

func findMany[T any](ctx context.Context, col *mongo.Collection, entity string, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]*T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapError(entity, err)
	}
	defer cursor.Close(ctx)

	var results []*T
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if results == nil {
		results = []*T{}
	}
	return results, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, entity string, doc any) error {
	_, err := col.InsertOne(ctx, doc)
	return wrapError(entity, err)
}

func replaceByID(ctx context.Context, col *mongo.Collection, entity string, id bson.ObjectID, doc any) error {
	res, err := col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc)
	if err != nil {
		return wrapError(entity, err)
	}
	if res.MatchedCount == 0 {
		return errs.NewNotFound(entity)
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, entity string, id bson.ObjectID) error {
	res, err := col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return wrapError(entity, err)
	}
	if res.DeletedCount == 0 {
		return errs.NewNotFound(entity)
	}
	return nil
}
