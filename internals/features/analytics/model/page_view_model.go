package model

import (
	"gorm.io/datatypes"
)

// PageViewModel merepresentasikan tabel page_views (counter kunjungan
// harian). (path, view_date) unik; increment dilakukan lewat upsert
// atomik di level database, bukan read-modify-write aplikasi.
type PageViewModel struct {
	ID       uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Path     string         `gorm:"size:255;not null;uniqueIndex:idx_page_views_path_date" json:"path"`
	ViewDate datatypes.Date `gorm:"column:view_date;not null;uniqueIndex:idx_page_views_path_date" json:"viewDate"`
	Count    int64          `gorm:"not null;default:0" json:"count"`
}

func (PageViewModel) TableName() string {
	return "page_views"
}
