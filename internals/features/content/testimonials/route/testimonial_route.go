package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/testimonials/controller"
)

func TestimonialAdminRoutes(api fiber.Router, db *gorm.DB) {
	testimonialCtrl := controller.NewTestimonialController(db)

	testimonials := api.Group("/testimonials")
	testimonials.Get("/", testimonialCtrl.GetAllTestimonials)     // 📄 Semua testimoni
	testimonials.Post("/", testimonialCtrl.CreateTestimonial)     // ➕ Tambah testimoni
	testimonials.Get("/:id", testimonialCtrl.GetTestimonialByID)  // 🔍 Detail testimoni
	testimonials.Put("/:id", testimonialCtrl.UpdateTestimonial)   // 🔄 Perbarui testimoni
	testimonials.Delete("/:id", testimonialCtrl.DeleteTestimonial) // 🗑️ Hapus testimoni
}

func TestimonialPublicRoutes(api fiber.Router, db *gorm.DB) {
	testimonialCtrl := controller.NewTestimonialController(db)

	api.Get("/testimonials", testimonialCtrl.GetPublicTestimonials) // ⭐ Testimoni aktif
}
