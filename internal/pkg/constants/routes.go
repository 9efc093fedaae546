package constants

// Route constants shared by the router, controllers and services
const (
	HomeRoute           = "/"
	BlogRoute           = "/blog"
	LoginRoute          = "/login"
	LogoutRoute         = "/logout"
	AdminDashboardRoute = "/admin/dashboard"
	AdminBlogRoute      = "/admin/blog"
)
