package models

import "go.mongodb.org/mongo-driver/v2/bson"

// User stores the admin credentials. The password hash is never serialized in
// API responses.
type User struct {
	ID           bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string        `json:"username" bson:"username"`
	PasswordHash string        `json:"-" bson:"password_hash"`
}
