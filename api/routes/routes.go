package routes

import (
	"path/filepath"

	"getexposure/api/handler"
	"getexposure/api/middleware"

	"github.com/labstack/echo/v4"
)

type Router struct {
	Echo      *echo.Echo
	Guard     middleware.SessionGuard
	LoginRate *middleware.RateLimiter

	Auth      *handler.AuthHandler
	Home      *handler.HomeHandler
	Positions *handler.PositionHandler
	Studies   *handler.CaseStudyHandler
	Solutions *handler.SolutionHandler
	Contact   *handler.ContactHandler
	Stats     *handler.StatsHandler
	Logos     *handler.LogoHandler
	Images    *handler.ImageHandler
	Settings  *handler.SettingsHandler

	// WebDir holds the static admin shell (login.html, admin.html).
	WebDir string
	// UploadDir backs the /uploads file tree.
	UploadDir string
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	guard := r.Guard
	if r.LoginRate == nil {
		r.LoginRate = middleware.NewLoginRateLimiter()
	}

	// Auth.
	e.POST("/api/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/api/auth/logout", r.Auth.Logout, guard.OptionalSession)
	e.GET("/api/auth/me", r.Auth.Me, guard.RequireSession)

	// Home page copy (singleton).
	e.GET("/api/home", r.Home.Get)
	e.PUT("/api/home", r.Home.Put, guard.RequireSession)

	// Open positions.
	e.GET("/api/positions", r.Positions.List)
	e.GET("/api/positions/:id", r.Positions.Get)
	e.POST("/api/positions", r.Positions.Create, guard.RequireSession)
	e.PUT("/api/positions/:id", r.Positions.Update, guard.RequireSession)
	e.DELETE("/api/positions/:id", r.Positions.Delete, guard.RequireSession)

	// Case studies.
	e.GET("/api/case-studies", r.Studies.List)
	e.GET("/api/case-studies/:id", r.Studies.Get)
	e.POST("/api/case-studies", r.Studies.Create, guard.RequireSession)
	e.PUT("/api/case-studies/:id", r.Studies.Update, guard.RequireSession)
	e.DELETE("/api/case-studies/:id", r.Studies.Delete, guard.RequireSession)

	// Solution types and their steps.
	e.GET("/api/solutions", r.Solutions.List)
	e.GET("/api/solutions/:id", r.Solutions.Get)
	e.POST("/api/solutions", r.Solutions.Create, guard.RequireSession)
	e.PUT("/api/solutions/:id", r.Solutions.Update, guard.RequireSession)
	e.DELETE("/api/solutions/:id", r.Solutions.Delete, guard.RequireSession)
	e.POST("/api/solutions/:id/steps", r.Solutions.CreateStep, guard.RequireSession)
	e.PUT("/api/solutions/steps/:stepId", r.Solutions.UpdateStep, guard.RequireSession)
	e.DELETE("/api/solutions/steps/:stepId", r.Solutions.DeleteStep, guard.RequireSession)

	// Contact page copy and grouped items.
	e.GET("/api/contact", r.Contact.Get)
	e.PUT("/api/contact", r.Contact.PutContent, guard.RequireSession)
	e.POST("/api/contact/info", r.Contact.CreateInfo, guard.RequireSession)
	e.PUT("/api/contact/info/:id", r.Contact.UpdateInfo, guard.RequireSession)
	e.DELETE("/api/contact/info/:id", r.Contact.DeleteInfo, guard.RequireSession)

	// Stats section.
	e.GET("/api/stats", r.Stats.Get)
	e.PUT("/api/stats", r.Stats.PutContent, guard.RequireSession)
	e.POST("/api/stats/items", r.Stats.CreateItem, guard.RequireSession)
	e.PUT("/api/stats/items/:id", r.Stats.UpdateItem, guard.RequireSession)
	e.DELETE("/api/stats/items/:id", r.Stats.DeleteItem, guard.RequireSession)

	// Client logo strip.
	e.GET("/api/logos", r.Logos.List)
	e.POST("/api/logos", r.Logos.Upload, guard.RequireSession)
	e.PUT("/api/logos/:id", r.Logos.Update, guard.RequireSession)
	e.DELETE("/api/logos/:id", r.Logos.Delete, guard.RequireSession)

	// Media library, admin only including reads.
	e.GET("/api/images", r.Images.List, guard.RequireSession)
	e.POST("/api/images", r.Images.Upload, guard.RequireSession)
	e.DELETE("/api/images/:id", r.Images.Delete, guard.RequireSession)

	// Site settings and the site logo.
	e.GET("/api/settings", r.Settings.Get)
	e.PUT("/api/settings", r.Settings.Update, guard.RequireSession)
	e.GET("/api/upload-logo", r.Settings.GetSiteLogo)
	e.POST("/api/upload-logo", r.Settings.UploadSiteLogo, guard.RequireSession)

	// Admin shell pages and uploaded files.
	if r.WebDir != "" {
		e.GET("/login", r.servePage("login.html"), guard.RedirectAuthenticated("/admin"))
		e.GET("/admin", r.servePage("admin.html"), guard.RedirectUnauthenticated("/login"))
		e.GET("/admin/*", r.servePage("admin.html"), guard.RedirectUnauthenticated("/login"))
	}
	if r.UploadDir != "" {
		e.Static("/uploads", r.UploadDir)
	}
}

func (r *Router) servePage(name string) echo.HandlerFunc {
	page := filepath.Join(r.WebDir, name)
	return func(c echo.Context) error {
		return c.File(page)
	}
}
