package models

import "time"

type Store struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	CoverImage  string    `json:"cover_image"`
	Rating      float64   `json:"rating"`
	TotalSales  int       `json:"total_sales"`
	CategoryID  *uint     `json:"-"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
