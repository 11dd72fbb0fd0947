package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names
const (
	ColUsers        = "users"
	ColProjects     = "projects"
	ColBlogs        = "blogs"
	ColSkills       = "skills"
	ColAchievements = "achievements"
	ColContacts     = "contacts"
)

// Database aggregates the per-entity repositories over a shared MongoDB
// connection.
type Database struct {
	client *mongo.Client
	db     *mongo.Database

	userRepo        *UserRepo
	projectRepo     *ProjectRepo
	blogRepo        *BlogRepo
	skillRepo       *SkillRepo
	achievementRepo *AchievementRepo
	contactRepo     *ContactRepo
}

// Connect opens a MongoDB connection, verifies it, and initializes all
// repositories and indexes.
func Connect(ctx context.Context, uri, dbName string) (*Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database: connect failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("database: ping failed: %w", err)
	}

	db := client.Database(dbName)
	d := &Database{
		client:          client,
		db:              db,
		userRepo:        NewUserRepo(db),
		projectRepo:     NewProjectRepo(db),
		blogRepo:        NewBlogRepo(db),
		skillRepo:       NewSkillRepo(db),
		achievementRepo: NewAchievementRepo(db),
		contactRepo:     NewContactRepo(db),
	}

	if err := d.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("database: ensure indexes failed: %w", err)
	}

	return d, nil
}

// Close disconnects from MongoDB.
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Database) UserRepo() *UserRepo               { return d.userRepo }
func (d *Database) ProjectRepo() *ProjectRepo         { return d.projectRepo }
func (d *Database) BlogRepo() *BlogRepo               { return d.blogRepo }
func (d *Database) SkillRepo() *SkillRepo             { return d.skillRepo }
func (d *Database) AchievementRepo() *AchievementRepo { return d.achievementRepo }
func (d *Database) ContactRepo() *ContactRepo         { return d.contactRepo }

// ensureIndexes creates the unique and sort indexes backing the uniqueness
// constraints and default list orders.
func (d *Database) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "username", Value: 1}}, true},
		{ColProjects, bson.D{{Key: "slug", Value: 1}}, true},
		{ColProjects, bson.D{{Key: "created_at", Value: -1}}, false},
		{ColBlogs, bson.D{{Key: "slug", Value: 1}}, true},
		{ColBlogs, bson.D{{Key: "published_date", Value: -1}}, false},
		{ColSkills, bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := d.db.Collection(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
