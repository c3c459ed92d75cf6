package entities

import "time"

type Stock struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nom         string  `gorm:"not null" json:"nom"`
	Qte         float64 `gorm:"default:0" json:"qte"`
	QteMax      float64 `gorm:"default:100" json:"qte_max"`
	Unite       string  `gorm:"default:kg" json:"unite"`
	Prix        float64 `gorm:"default:0" json:"prix"`
	Fournisseur string  `json:"fournisseur"`
	CreatedAt   time.Time
}

type Vente struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Date      string  `gorm:"not null" json:"date"`
	Produit   string  `json:"produit"`
	Qte       float64 `json:"qte"`
	PrixUnit  float64 `json:"prix_unit"`
	Unite     string  `json:"unite"`
	Client    string  `json:"client"`
	CreatedAt time.Time
}
