// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	blogRoute "jobportal_backend/internals/features/home/blogs/route"
	companyRoute "jobportal_backend/internals/features/home/companies/route"
	contactRoute "jobportal_backend/internals/features/home/contact/route"
	feedRoute "jobportal_backend/internals/features/home/feed/route"
	"jobportal_backend/internals/features/jobs/cascade"

	applicationRoute "jobportal_backend/internals/features/jobs/applications/route"
	geographyRoute "jobportal_backend/internals/features/jobs/geography/route"
	postingRoute "jobportal_backend/internals/features/jobs/postings/route"
	taxonomyRoute "jobportal_backend/internals/features/jobs/taxonomy/route"
	accountRoute "jobportal_backend/internals/features/users/account/route"
	"jobportal_backend/internals/middlewares"
	"jobportal_backend/internals/middlewares/auth"
)

// =======================
// ROUTE GROUPS
// =======================
//
// /api/public — no auth
// /api/auth   — register / login / refresh
// /api/u      — any authenticated user
// /api/a      — authenticated, role-guarded per feature
// /ajax       — dependent-dropdown endpoints (no auth, no envelope)

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	resolver := cascade.NewResolver(db, rdb)

	app.Use(middlewares.DBMiddleware(db))

	api := app.Group("/api")
	public := api.Group("/public")
	user := api.Group("/u", auth.AuthMiddleware())
	admin := api.Group("/a", auth.AuthMiddleware())

	// Auth
	accountRoute.AuthRoutes(api, db)
	accountRoute.AccountUserRoutes(user, db)

	// Registries + cascade (the /ajax endpoints hang off the app root)
	geographyRoute.AllGeographyRoutes(public, app, db, resolver)
	geographyRoute.GeographyAdminRoutes(admin, db, resolver)
	taxonomyRoute.AllTaxonomyRoutes(public, app, db, resolver)
	taxonomyRoute.TaxonomyAdminRoutes(admin, db, resolver)

	// Postings + applications
	postingRoute.AllJobPostRoutes(public, db)
	postingRoute.JobPostUserRoutes(user, db)
	postingRoute.JobPostAdminRoutes(admin, db)
	applicationRoute.AllApplicationRoutes(public, db)
	applicationRoute.ApplicationAdminRoutes(admin, db)

	// Site content
	feedRoute.AllFeedRoutes(public, db)
	blogRoute.AllBlogRoutes(public, db)
	blogRoute.BlogAdminRoutes(admin, db)
	contactRoute.AllContactRoutes(public, db)
	contactRoute.ContactAdminRoutes(admin, db)
	companyRoute.AllCompanyRoutes(public, db)
	companyRoute.CompanyAdminRoutes(admin, db)
}
