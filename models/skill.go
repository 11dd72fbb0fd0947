package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
)

// SkillCategory groups technical skills on the public site
type SkillCategory string

const (
	SkillCategoryProgramming    SkillCategory = "Programming"
	SkillCategoryWebDevelopment SkillCategory = "Web Development"
	SkillCategoryDatabases      SkillCategory = "Databases"
	SkillCategoryTools          SkillCategory = "Tools & Platforms"
)

func (c SkillCategory) IsValid() bool {
	switch c {
	case SkillCategoryProgramming, SkillCategoryWebDevelopment, SkillCategoryDatabases, SkillCategoryTools:
		return true
	}
	return false
}

// Skill represents a technical skill organized by category
type Skill struct {
	ID       bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string        `json:"name" bson:"name"`
	Category SkillCategory `json:"category" bson:"category"`
}

func (s *Skill) GetID() bson.ObjectID { return s.ID }

func (s *Skill) SetID(id bson.ObjectID) { s.ID = id }

func (s *Skill) ApplyDefaults() {
	if s.ID.IsZero() {
		s.ID = bson.NewObjectID()
	}
	s.Name = strings.TrimSpace(s.Name)
}

func (s *Skill) Validate() error {
	if s.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if s.Category == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if !s.Category.IsValid() {
		return errs.NewInvalidFieldError("category", "must be one of Programming, Web Development, Databases, Tools & Platforms")
	}
	return nil
}
