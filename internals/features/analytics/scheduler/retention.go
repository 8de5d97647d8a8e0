package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"virgimotor_backend/internals/features/analytics/model"
)

// StartPageViewRetentionScheduler menghapus baris page_views yang lebih
// tua dari masa retensi (default: 365 hari), sekali sehari.
func StartPageViewRetentionScheduler(db *gorm.DB) {
	go func() {
		retentionDays := 365
		if val := os.Getenv("PAGE_VIEW_RETENTION_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				retentionDays = parsed
			}
		}

		for {
			log.Println("[RETENTION] Menjalankan pembersihan page_views...")

			deleteBefore := time.Now().AddDate(0, 0, -retentionDays).Format("2006-01-02")

			res := db.Where("view_date < ?", deleteBefore).Delete(&model.PageViewModel{})
			if res.Error != nil {
				log.Printf("[RETENTION ERROR] Gagal hapus page_views lama: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[RETENTION] %d baris page_views lama dihapus", res.RowsAffected)
			} else {
				log.Println("[RETENTION] Tidak ada baris yang memenuhi syarat dihapus")
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
