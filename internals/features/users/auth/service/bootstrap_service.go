package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"virgimotor_backend/internals/configs"
	"virgimotor_backend/internals/features/users/auth/model"
)

// EnsureAdminUser membuat akun admin dari ENV kalau belum ada.
// Dipanggil sekali saat boot, setelah migrasi.
func EnsureAdminUser(db *gorm.DB) error {
	email := configs.AdminEmail
	password := configs.AdminPassword
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD belum diset, skip bootstrap admin")
		return nil
	}

	var existing model.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := model.UserModel{
		Email:    email,
		Password: hashed,
		Name:     "Admin Virgi Motor",
		Role:     "super_admin",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin user dibuat: %s", email)
	return nil
}
