package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/features/content/team/controller"
)

func TeamAdminRoutes(api fiber.Router, db *gorm.DB) {
	teamCtrl := controller.NewTeamController(db)

	team := api.Group("/team")
	team.Get("/", teamCtrl.GetAllTeamMembers)     // 📄 Semua anggota tim
	team.Post("/", teamCtrl.CreateTeamMember)     // ➕ Tambah anggota
	team.Get("/:id", teamCtrl.GetTeamMemberByID)  // 🔍 Detail anggota
	team.Put("/:id", teamCtrl.UpdateTeamMember)   // 🔄 Perbarui anggota
	team.Delete("/:id", teamCtrl.DeleteTeamMember) // 🗑️ Hapus anggota
}

func TeamPublicRoutes(api fiber.Router, db *gorm.DB) {
	teamCtrl := controller.NewTeamController(db)

	api.Get("/team", teamCtrl.GetPublicTeam) // 👥 Tim aktif
}
