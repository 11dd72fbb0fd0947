package api

import (
	"time"

	"github.com/patrickmn/go-cache"

	"portfolio-backend/database"
	"portfolio-backend/media"
	"portfolio-backend/models"
	"portfolio-backend/security"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db *database.Database, tokens *security.TokenService, uploader media.Uploader) *routeHandlers {
	// Public list responses are cached until the next mutation or expiry.
	listCache := cache.New(5*time.Minute, 10*time.Minute)

	return &routeHandlers{
		index:  newIndexHandler(),
		auth:   newAuthHandler(db.UserRepo(), tokens),
		upload: newUploadHandler(uploader),
		projects: newResourceHandler[models.Project, *models.Project](
			"Project", "Project slug already exists", db.ProjectRepo(), listCache),
		blogs: newResourceHandler[models.Blog, *models.Blog](
			"Blog", "Blog slug already exists", db.BlogRepo(), listCache),
		skills: newResourceHandler[models.Skill, *models.Skill](
			"Skill", "Skill already exists", db.SkillRepo(), listCache),
		achievements: newResourceHandler[models.Achievement, *models.Achievement](
			"Achievement", "Achievement already exists", db.AchievementRepo(), listCache),
		contacts: newResourceHandler[models.Contact, *models.Contact](
			"Contact", "Contact already exists", db.ContactRepo(), listCache),
	}
}
