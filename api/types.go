package api

import "portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	index        indexHandler
	auth         authHandler
	upload       uploadHandler
	projects     *resourceHandler[models.Project, *models.Project]
	blogs        *resourceHandler[models.Blog, *models.Blog]
	skills       *resourceHandler[models.Skill, *models.Skill]
	achievements *resourceHandler[models.Achievement, *models.Achievement]
	contacts     *resourceHandler[models.Contact, *models.Contact]
}
