package controller

import (
	"encoding/json"
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

	"virgimotor_backend/internals/features/catalog/products/model"
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

func newProductApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewProductController(db)
	app.Get("/api/admin/products/:id", ctrl.GetProductByID)
	app.Put("/api/admin/products/:id", ctrl.UpdateProduct)
	app.Delete("/api/admin/products/:id", ctrl.DeleteProduct)
	app.Post("/api/admin/products/:id/toggle-promo", ctrl.TogglePromo)
	return app
}

// Slug adalah id publik produk: rename lewat update TIDAK boleh
// mengubahnya. Kalau handler kembali meregenerasi slug, query cek
// keunikan tambahan akan membuat ekspektasi mock gagal.
func TestUpdateProductKeepsSlugOnRename(t *testing.T) {
	db, mock := newMockDB(t)
	app := newProductApp(db)

	productID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "slug", "category", "price", "dp_min", "cc", "image", "features", "order", "promo_active", "promo_highlights",
		}).AddRow(
			productID.String(), "Vario 160", "vario-160", "Matic", int64(27420000), int64(3000000), "160cc", "/all_bike/vario.webp", "{}", 0, false, "{}",
		))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"name":"Vario 160 ABS Baru","category":"Matic","price":27420000,"dpMin":3000000,"cc":"160cc","image":"/all_bike/vario.webp","features":[],"order":0,"promoActive":false}`
	req := httptest.NewRequest("PUT", "/api/admin/products/"+productID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope struct {
		Data model.ProductModel `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "vario-160", envelope.Data.Slug)
	assert.Equal(t, "Vario 160 ABS Baru", envelope.Data.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// id yang bukan UUID tidak boleh sampai ke Postgres (cast uuid gagal
// = 500); kontraknya 404, dan database tidak disentuh sama sekali.
func TestProductHandlersMalformedIDIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	app := newProductApp(db)

	requests := []*struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/products/bukan-uuid"},
		{"PUT", "/api/admin/products/bukan-uuid"},
		{"DELETE", "/api/admin/products/bukan-uuid"},
		{"POST", "/api/admin/products/bukan-uuid/toggle-promo"},
	}
	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "%s %s", r.method, r.path)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "NOT_FOUND")
	}

	// tidak ada satu pun query yang boleh jalan
	assert.NoError(t, mock.ExpectationsWereMet())
}
