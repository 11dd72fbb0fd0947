package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/errs"
)

func validProject() *Project {
	return &Project{
		Title:        "Portfolio Site",
		Slug:         "Portfolio-Site",
		Summary:      "A personal portfolio",
		Description:  "Full description in Markdown",
		CoverImage:   "https://cdn.example.com/cover.png",
		Technologies: []string{"Go", "MongoDB"},
	}
}

func TestProjectApplyDefaults(t *testing.T) {
	p := validProject()
	p.ApplyDefaults()

	assert.False(t, p.ID.IsZero())
	assert.Equal(t, "portfolio-site", p.Slug)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProjectApplyDefaultsKeepsExistingID(t *testing.T) {
	p := validProject()
	p.ApplyDefaults()
	id := p.ID
	created := p.CreatedAt

	p.ApplyDefaults()
	assert.Equal(t, id, p.ID)
	assert.Equal(t, created, p.CreatedAt)
}

func TestProjectValidate(t *testing.T) {
	p := validProject()
	p.ApplyDefaults()
	require.NoError(t, p.Validate())

	tests := []struct {
		name   string
		mutate func(*Project)
	}{
		{"title", func(p *Project) { p.Title = "" }},
		{"slug", func(p *Project) { p.Slug = "" }},
		{"summary", func(p *Project) { p.Summary = "  " }},
		{"description", func(p *Project) { p.Description = "" }},
		{"coverImage", func(p *Project) { p.CoverImage = "" }},
		{"technologies", func(p *Project) { p.Technologies = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			p.ApplyDefaults()
			tt.mutate(p)

			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsMissingRequiredField(err))
		})
	}
}

func TestBlogApplyDefaults(t *testing.T) {
	b := &Blog{
		Title:      "First Post",
		Slug:       "First-Post",
		Summary:    "summary",
		Content:    "content",
		CoverImage: "https://cdn.example.com/post.png",
	}
	b.ApplyDefaults()

	assert.Equal(t, "first-post", b.Slug)
	assert.NotNil(t, b.Tags, "tags should default to an empty list")
	assert.Empty(t, b.Tags)
	assert.False(t, b.PublishedDate.IsZero())
	require.NoError(t, b.Validate())
}

func TestSkillValidate(t *testing.T) {
	s := &Skill{Name: "Go", Category: SkillCategoryProgramming}
	s.ApplyDefaults()
	require.NoError(t, s.Validate())

	s = &Skill{Name: "Go", Category: "Cooking"}
	s.ApplyDefaults()
	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsInvalidField(err))

	s = &Skill{Category: SkillCategoryDatabases}
	s.ApplyDefaults()
	err = s.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredField(err))
}

func TestSkillCategoryIsValid(t *testing.T) {
	for _, c := range []SkillCategory{
		SkillCategoryProgramming,
		SkillCategoryWebDevelopment,
		SkillCategoryDatabases,
		SkillCategoryTools,
	} {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, SkillCategory("Gardening").IsValid())
}

func TestAchievementValidate(t *testing.T) {
	a := &Achievement{Title: "AWS Certified", IsCertification: true, Date: "Aug 2025"}
	a.ApplyDefaults()
	require.NoError(t, a.Validate())

	a = &Achievement{Issuer: "AWS"}
	a.ApplyDefaults()
	require.Error(t, a.Validate())
}

func TestContactValidate(t *testing.T) {
	c := &Contact{Sitename: "GitHub", Link: "https://github.com/someone"}
	c.ApplyDefaults()
	require.NoError(t, c.Validate())

	c = &Contact{Sitename: "GitHub"}
	c.ApplyDefaults()
	require.Error(t, c.Validate())
}

func TestUserPasswordHashNeverSerialized(t *testing.T) {
	u := User{Username: "admin", PasswordHash: "$2a$10$secret"}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), "admin")
}
