package controller

import (
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

// Upsert key yang sudah ada harus ikut menyentuh updated_at, bukan
// hanya value; dan seluruh batch berjalan dalam SATU transaksi.
func TestUpsertSettingsBumpsUpdatedAt(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewSettingController(db)
	app.Put("/api/admin/settings", ctrl.UpsertSettings)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "settings" .+ ON CONFLICT \("key"\) DO UPDATE SET "updated_at"=.+,"value"=.+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	req := httptest.NewRequest("PUT", "/api/admin/settings", strings.NewReader(`{"whatsapp_number":"6289900112233"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Key kosong membatalkan seluruh batch (rollback), tidak ada commit.
func TestUpsertSettingsEmptyKeyRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewSettingController(db)
	app.Put("/api/admin/settings", ctrl.UpsertSettings)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := httptest.NewRequest("PUT", "/api/admin/settings", strings.NewReader(`{"":"nilai"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}
