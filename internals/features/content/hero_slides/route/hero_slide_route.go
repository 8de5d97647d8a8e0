package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/hero_slides/controller"
)

func HeroSlideAdminRoutes(api fiber.Router, db *gorm.DB) {
	slideCtrl := controller.NewHeroSlideController(db)

	slides := api.Group("/hero-slides")
	slides.Get("/", slideCtrl.GetAllHeroSlides)     // 📄 Semua slide
	slides.Post("/", slideCtrl.CreateHeroSlide)     // ➕ Buat slide
	slides.Get("/:id", slideCtrl.GetHeroSlideByID)  // 🔍 Detail slide
	slides.Put("/:id", slideCtrl.UpdateHeroSlide)   // 🔄 Perbarui slide
	slides.Delete("/:id", slideCtrl.DeleteHeroSlide) // 🗑️ Hapus slide
}

func HeroSlidePublicRoutes(api fiber.Router, db *gorm.DB) {
	slideCtrl := controller.NewHeroSlideController(db)

	api.Get("/hero-slides", slideCtrl.GetPublicHeroSlides) // 🎡 Slide aktif
}
