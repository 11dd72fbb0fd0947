package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Resource is implemented by every publicly served record type. Handlers and
// repositories are generic over it so the per-entity field lists live in the
// model structs, not in copy-pasted handler logic.
type Resource interface {
	GetID() bson.ObjectID
	SetID(id bson.ObjectID)
	// ApplyDefaults fills server-assigned values (identifier, timestamps) and
	// normalizes fields (slug lowercasing) before validation.
	ApplyDefaults()
	// Validate checks required-field presence and enum membership. It returns
	// an *errs.ApiErr so handlers can write it directly.
	Validate() error
}
