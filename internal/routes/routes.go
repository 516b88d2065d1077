package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/auth"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/config"
	"github.com/BruksfildServices01/barbershop-site/internal/handlers"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barbershop-site/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-site/internal/middleware"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
	"github.com/BruksfildServices01/barbershop-site/internal/storage"
	ucContact "github.com/BruksfildServices01/barbershop-site/internal/usecase/contact"
	ucGallery "github.com/BruksfildServices01/barbershop-site/internal/usecase/gallery"
	ucMaster "github.com/BruksfildServices01/barbershop-site/internal/usecase/master"
)

// Deps are the long-lived singletons built by main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Files    storage.FileStore
	Janitor  *storage.Janitor
	Cache    cache.Cache
	Recorder audit.Recorder
	Bridge   *notify.Bridge
}

// NewEngine builds the gin engine with global middleware and every route.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(d.Config.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if _, ok := d.Files.(*storage.LocalStore); ok {
		r.Static(d.Config.UploadsPublicPrefix, d.Config.UploadsDir)
	}

	RegisterRoutes(r, d)

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "Not found")
	})

	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// INFRA
	// ======================================================
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	masterRepo := infraRepo.NewMasterGormRepository(d.DB)
	galleryRepo := infraRepo.NewGalleryGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	settingRepo := infraRepo.NewSettingGormRepository(d.DB)
	adminRepo := infraRepo.NewAdminGormRepository(d.DB)

	authSvc := auth.NewService(adminRepo, cfg.JWTSecret)

	// ======================================================
	// USE CASES
	// ======================================================
	galleryUC := ucGallery.New(galleryRepo, masterRepo, d.Files, d.Janitor)
	masterUC := ucMaster.New(masterRepo, galleryRepo, d.Files, d.Janitor, cfg.MasterPhotoMaxPx)
	contactUC := ucContact.NewSubmitter(settingRepo, d.Bridge)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authSvc, d.Recorder)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, d.Cache, d.Recorder)
	masterHandler := handlers.NewMasterHandler(masterUC, cfg.UploadMaxBytes, d.Cache, d.Recorder)
	galleryHandler := handlers.NewGalleryHandler(galleryUC, cfg.UploadMaxBytes, d.Cache, d.Recorder)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, d.Cache, d.Recorder)
	settingHandler := handlers.NewSettingHandler(settingRepo, d.Cache, d.Recorder)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, d.Recorder)
	contactHandler := handlers.NewContactHandler(contactUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB))

	requireAdmin := middleware.RequireAdmin(authSvc)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/masters", masterHandler.List)
		api.GET("/gallery", galleryHandler.List)
		api.GET("/reviews", reviewHandler.List)
		api.GET("/settings", settingHandler.Get)

		api.POST("/contact", contactHandler.Submit)
		api.POST("/bookings", bookingHandler.Create)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("")
		admin.Use(requireAdmin)
		{
			admin.GET("/auth/me", authHandler.Me)

			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.POST("/masters", masterHandler.Create)
			admin.PUT("/masters/:id", masterHandler.Update)
			admin.DELETE("/masters/:id", masterHandler.Delete)
			admin.POST("/upload-master-photo", masterHandler.UploadPhoto)

			admin.POST("/gallery", galleryHandler.Upload)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.POST("/reviews", reviewHandler.Create)
			admin.PUT("/reviews/:id", reviewHandler.Update)
			admin.DELETE("/reviews/:id", reviewHandler.Delete)

			admin.PUT("/settings", settingHandler.Update)

			admin.GET("/bookings", bookingHandler.List)
			admin.PUT("/bookings/:id", bookingHandler.Update)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
