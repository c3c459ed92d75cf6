package entities

type Serre struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Nom string `gorm:"uniqueIndex;not null" json:"nom"`
}

type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"` // JSON-encoded
}
