package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"virgimotor_backend/internals/configs"
	"virgimotor_backend/internals/features/users/auth/dto"
	"virgimotor_backend/internals/features/users/auth/model"
	"virgimotor_backend/internals/features/users/auth/service"
	helper "virgimotor_backend/internals/helpers"
)

// Pesan sengaja sama untuk email tak terdaftar maupun password salah,
// supaya tidak bocor kredensial mana yang keliru.
const invalidCredentialsMsg = "Email atau password salah"

const sessionCookieName = "admin_session"

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔐 Login (email + password)
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("email = ? AND is_active = TRUE", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentialsMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login gagal")
	}

	if err := service.CheckPasswordHash(user.Password, body.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentialsMsg)
	}

	token, err := service.CreateSessionToken(configs.JWTSecret, user.ID.String(), user.Name, user.Role, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token sesi")
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(service.SessionTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		User: dto.UserDTO{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}

// =============================
// 🚪 Logout (hapus cookie sesi)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// =============================
// 👤 Me (claims sesi aktif)
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	userName, _ := c.Locals("user_name").(string)
	role, _ := c.Locals("role").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"id":   userID,
		"name": userName,
		"role": role,
	})
}
