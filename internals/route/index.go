package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "virgimotor_backend/internals/features/analytics/route"
	productRoute "virgimotor_backend/internals/features/catalog/products/route"
	galleryRoute "virgimotor_backend/internals/features/content/gallery/route"
	heroRoute "virgimotor_backend/internals/features/content/hero_slides/route"
	teamRoute "virgimotor_backend/internals/features/content/team/route"
	testimonialRoute "virgimotor_backend/internals/features/content/testimonials/route"
	settingRoute "virgimotor_backend/internals/features/settings/route"
	authRoute "virgimotor_backend/internals/features/users/auth/route"
	authAdmin "virgimotor_backend/internals/middlewares/auth_admin"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Tanpa JWT; dikonsumsi langsung oleh halaman marketing.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	productRoute.ProductPublicRoutes(public, db)
	teamRoute.TeamPublicRoutes(public, db)
	testimonialRoute.TestimonialPublicRoutes(public, db)
	galleryRoute.GalleryPublicRoutes(public, db)
	heroRoute.HeroSlidePublicRoutes(public, db)
	settingRoute.SettingPublicRoutes(public, db)
	analyticsRoute.AnalyticsPublicRoutes(public, db)

	// ===================== ADMIN =====================
	// Seluruh grup di belakang sesi JWT super_admin.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin", authAdmin.AdminOnly())
	productRoute.ProductAdminRoutes(admin, db)
	teamRoute.TeamAdminRoutes(admin, db)
	testimonialRoute.TestimonialAdminRoutes(admin, db)
	galleryRoute.GalleryAdminRoutes(admin, db)
	heroRoute.HeroSlideAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)

	// ===================== BASE =====================
	BaseRoutes(app, db)
}
