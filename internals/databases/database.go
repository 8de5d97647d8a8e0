package databases

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"virgimotor_backend/internals/configs"
	analyticsModel "virgimotor_backend/internals/features/analytics/model"
	productModel "virgimotor_backend/internals/features/catalog/products/model"
	galleryModel "virgimotor_backend/internals/features/content/gallery/model"
	heroModel "virgimotor_backend/internals/features/content/hero_slides/model"
	teamModel "virgimotor_backend/internals/features/content/team/model"
	testimonialModel "virgimotor_backend/internals/features/content/testimonials/model"
	settingModel "virgimotor_backend/internals/features/settings/model"
	userModel "virgimotor_backend/internals/features/users/auth/model"
)

// Connect membuka koneksi PostgreSQL dan mengembalikan handle-nya.
// Handle dipegang main dan di-inject ke controller, bukan global tersembunyi.
func Connect() (*gorm.DB, error) {
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=virgimotor&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT"),
		configs.GetEnv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}
	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan auto-migration untuk seluruh tabel.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&productModel.ProductModel{},
		&teamModel.TeamMemberModel{},
		&testimonialModel.TestimonialModel{},
		&galleryModel.GalleryImageModel{},
		&heroModel.HeroSlideModel{},
		&settingModel.SettingModel{},
		&analyticsModel.PageViewModel{},
	)
}
