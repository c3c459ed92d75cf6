package entities

import "time"

type Depense struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Date        string   `gorm:"not null" json:"date"`
	Fournisseur string   `json:"fournisseur"`
	Categorie   string   `json:"categorie"`
	Total       float64  `json:"total"`
	Articles    []string `gorm:"serializer:json" json:"articles"`
	Notes       string   `json:"notes"`
	ScanAI      bool     `gorm:"default:false" json:"scan_ai"`
	CreatedAt   time.Time
}
