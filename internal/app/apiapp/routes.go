package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/syberke1354/exion-sub001/internal/config"
	"github.com/syberke1354/exion-sub001/internal/domain/enums"
	authsvc "github.com/syberke1354/exion-sub001/internal/services/adminauth"
	contactsvc "github.com/syberke1354/exion-sub001/internal/services/contact"
	contentsvc "github.com/syberke1354/exion-sub001/internal/services/content"
	docssvc "github.com/syberke1354/exion-sub001/internal/services/docs"
	mediasvc "github.com/syberke1354/exion-sub001/internal/services/media"
	"github.com/syberke1354/exion-sub001/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService    *authsvc.Service
	MediaService   *mediasvc.Service
	ContentService *contentsvc.Service
	ContactService *contactsvc.Service
	DocsService    *docssvc.Service
	Logger         *zap.Logger
	Config         config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.Logger)
	mediaHandler := handlers.NewMediaHandler(deps.MediaService, deps.Config.Cloudinary, deps.Logger)
	contentHandler := handlers.NewContentHandler(deps.ContentService)
	contactHandler := handlers.NewContactHandler(deps.ContactService)
	docsHandler := handlers.NewDocsHandler(deps.DocsService)

	authMW := AuthMiddleware(deps.AuthService, deps.Logger)
	anyAdminMW := RequireRole(enums.RoleNames()...)
	superAdminMW := RequireRole(string(enums.RoleSuperAdmin))

	r.Get("/healthz", healthHandler.Get)

	r.Route("/api", func(r chi.Router) {
		// Public site surface.
		r.Get("/extracurriculars", contentHandler.ListExtracurriculars)
		r.Get("/extracurriculars/{slug}", contentHandler.GetExtracurricular)
		r.Get("/achievements", contentHandler.ListAchievements)
		r.Post("/contact", contactHandler.Submit)
		r.Get("/documents", docsHandler.List)
		r.Get("/documents/{id}/url", docsHandler.Download)

		// Media proxy. Kept auth-free: the unsigned upload path relies
		// on the host-side preset, the signed path on server credentials.
		r.Route("/media", func(r chi.Router) {
			r.Get("/config", mediaHandler.Config)
			r.Post("/upload", mediaHandler.Upload)
			r.Post("/delete", mediaHandler.Destroy)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.With(authMW).Post("/logout", authHandler.Logout)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW, anyAdminMW)

			r.Post("/extracurriculars", contentHandler.CreateExtracurricular)
			r.Put("/extracurriculars/{id}", contentHandler.UpdateExtracurricular)
			r.Delete("/extracurriculars/{id}", contentHandler.DeleteExtracurricular)

			r.Post("/achievements", contentHandler.CreateAchievement)
			r.Put("/achievements/{id}", contentHandler.UpdateAchievement)
			r.Delete("/achievements/{id}", contentHandler.DeleteAchievement)

			r.Post("/documents", docsHandler.Upload)
			r.Delete("/documents/{id}", docsHandler.Delete)

			r.With(superAdminMW).Get("/contact-messages", contactHandler.List)
		})
	})
}
