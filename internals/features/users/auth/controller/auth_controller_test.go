package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"virgimotor_backend/internals/features/users/auth/service"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

// Email tak terdaftar dan password salah harus menghasilkan response
// 401 yang byte-identik; body tidak boleh membocorkan kredensial mana
// yang keliru.
func TestLoginUniformUnauthorizedBody(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/api/auth/login", ctrl.Login)

	hash, err := service.HashPassword("password-benar")
	require.NoError(t, err)
	userID := uuid.New().String()

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "email", "password", "name", "role", "is_active"}).
			AddRow(userID, "admin@virgimotor.com", hash, "Admin", "super_admin", true)
	}

	// 1) email tidak terdaftar
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	unknownStatus, unknownBody := postLogin(t, app, `{"email":"ghost@virgimotor.com","password":"apapun"}`)

	// 2) password salah, percobaan pertama
	mock.ExpectQuery(`SELECT .+ FROM "users"`).WillReturnRows(userRows())
	wrongStatus1, wrongBody1 := postLogin(t, app, `{"email":"admin@virgimotor.com","password":"password-salah"}`)

	// 3) password salah, percobaan kedua
	mock.ExpectQuery(`SELECT .+ FROM "users"`).WillReturnRows(userRows())
	wrongStatus2, wrongBody2 := postLogin(t, app, `{"email":"admin@virgimotor.com","password":"password-salah"}`)

	assert.Equal(t, fiber.StatusUnauthorized, unknownStatus)
	assert.Equal(t, fiber.StatusUnauthorized, wrongStatus1)
	assert.Equal(t, fiber.StatusUnauthorized, wrongStatus2)
	assert.Equal(t, wrongBody1, wrongBody2)
	assert.Equal(t, unknownBody, wrongBody1)
	assert.Contains(t, unknownBody, "Email atau password salah")
	assert.NotContains(t, unknownBody, "ghost@virgimotor.com")

	assert.NoError(t, mock.ExpectationsWereMet())
}
