package entities

import "time"

type Culture struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Plante      string  `gorm:"not null" json:"plante"`
	Variete     string  `json:"variete"`
	Type        string  `json:"type"`       // semis|plant|bouture
	ModeSemis   string  `json:"mode_semis"` // godet|pleine terre|plaque
	Statut      string  `gorm:"default:En cours" json:"statut"` // En cours|En attente|Terminé|Abandonné
	Date        string  `json:"date"`       // YYYY-MM-DD
	DatePrevue  string  `json:"date_prevue"`
	Emplacement string  `json:"emplacement"`
	Surface     float64 `json:"surface"`
	Notes       string  `json:"notes"`
	CreatedAt   time.Time
}

type Entretien struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Date        string  `gorm:"not null" json:"date"`
	Type        string  `json:"type"`
	Zone        string  `json:"zone"`
	Duree       float64 `json:"duree"` // hours
	Description string  `json:"description"`
	CreatedAt   time.Time
}
