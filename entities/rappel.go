package entities

import "time"

type Rappel struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Date      string `gorm:"not null" json:"date"` // YYYY-MM-DD
	Label     string `json:"label"`
	Icon      string `gorm:"default:📌" json:"icon"`
	Done      bool   `gorm:"default:false" json:"done"`
	Auto      bool   `gorm:"default:false" json:"auto"`
	CreatedAt time.Time
}
