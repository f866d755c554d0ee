package models

import "time"

// Property is a real-estate listing. Listings are browse-only: there is
// no cart or checkout path for them.
type Property struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Location  string    `json:"location"`
	Type      string    `gorm:"index" json:"type"` // e.g. "house", "condo", "land"
	Price     float64   `json:"price"`
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	Size      float64   `json:"size"` // square meters
	Image     string    `json:"image"`
	Featured  bool      `gorm:"index" json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}
