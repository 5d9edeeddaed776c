package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteBlog is the blog route.
	RouteBlog = "/blog"
	// RouteProjects is the public projects route.
	RouteProjects = "/projects"

	// RoutePosts is the posts admin route.
	RoutePosts = "/posts"
	// RouteProfile is the profile admin route.
	RouteProfile = "/profile"

	// RoutePostsID is the posts ID route pattern.
	RoutePostsID = RoutePosts + RouteParamID
	// RouteProjectsID is the projects ID route pattern.
	RouteProjectsID = RouteProjects + RouteParamID
)

const (
	redirectAdmin            = "/admin"
	redirectAdminPosts       = redirectAdmin + RoutePosts
	redirectAdminPostsNew    = redirectAdminPosts + RouteSuffixNew
	redirectAdminProjects    = redirectAdmin + RouteProjects
	redirectAdminProjectsNew = redirectAdminProjects + RouteSuffixNew
	redirectAdminProfile     = redirectAdmin + RouteProfile
	redirectLogin            = RouteLogin

	redirectAdminPostsID    = redirectAdminPosts + "/%d"
	redirectAdminProjectsID = redirectAdminProjects + "/%d"
)
