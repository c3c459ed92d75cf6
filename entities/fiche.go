package entities

type Fiche struct {
	ID                    uint     `gorm:"primaryKey" json:"id"`
	Nom                   string   `gorm:"uniqueIndex;not null" json:"nom"`
	Categorie             string   `json:"categorie"` // Fruit|Mini|Feuille|Racine|Herbe|Brassica|Allium|Légumineuse|Élevage
	Varietes              []string `gorm:"serializer:json" json:"varietes"`
	TempMin               float64  `json:"temp_min"`
	TempOpt               float64  `json:"temp_opt"`
	TempMax               float64  `json:"temp_max"`
	DureeGermination      int      `json:"duree_germination"`
	DureeSemisRepiquage   int      `json:"duree_semis_repiquage"`
	DureeSemisRecolte     int      `json:"duree_semis_recolte"`
	DureeRepiquageRecolte int      `json:"duree_repiquage_recolte"`
	Espacement            float64  `json:"espacement"`
	Profondeur            float64  `json:"profondeur"`
	Unite                 string   `json:"unite"`
	Notes                 string   `json:"notes"`
	SourceURL             string   `json:"source_url"`
}
