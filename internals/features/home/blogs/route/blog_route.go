// internals/features/home/blogs/route/blog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobportal_backend/internals/constants"
	"jobportal_backend/internals/features/home/blogs/controller"
	"jobportal_backend/internals/middlewares/auth"
)

// AllBlogRoutes mounts the public blog reads.
func AllBlogRoutes(public fiber.Router, db *gorm.DB) {
	h := controller.NewBlogController(db)

	public.Get("/blogs", h.ListBlogs)
	public.Get("/blogs/:slug", h.GetBlogBySlug)
}

// BlogAdminRoutes mounts the admin blog CRUD.
func BlogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewBlogController(db)

	blogs := admin.Group("/blogs",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("manage blog posts"), constants.AdminOnly),
	)
	blogs.Post("/", h.CreateBlog)
	blogs.Patch("/:id", h.UpdateBlog)
	blogs.Delete("/:id", h.DeleteBlog)
}
