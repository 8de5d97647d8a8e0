package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/gallery/controller"
)

func GalleryAdminRoutes(api fiber.Router, db *gorm.DB) {
	galleryCtrl := controller.NewGalleryController(db)

	gallery := api.Group("/gallery")
	gallery.Get("/", galleryCtrl.GetAllGalleryImages)     // 📄 Semua foto (termasuk non-aktif)
	gallery.Post("/", galleryCtrl.CreateGalleryImage)     // ➕ Tambah foto
	gallery.Get("/:id", galleryCtrl.GetGalleryImageByID)  // 🔍 Detail foto
	gallery.Put("/:id", galleryCtrl.UpdateGalleryImage)   // 🔄 Perbarui foto
	gallery.Delete("/:id", galleryCtrl.DeleteGalleryImage) // 🗑️ Hapus foto
}

func GalleryPublicRoutes(api fiber.Router, db *gorm.DB) {
	galleryCtrl := controller.NewGalleryController(db)

	api.Get("/gallery", galleryCtrl.GetPublicGallery) // 🖼️ Galeri publik (aktif saja)
}
