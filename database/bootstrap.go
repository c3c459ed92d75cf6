// database/bootstrap.go
package database

import (
	"encoding/json"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zbalo/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Culture{},
		&entities.Entretien{},
		&entities.Stock{},
		&entities.Vente{},
		&entities.Depense{},
		&entities.Rappel{},
		&entities.Fiche{},
		&entities.Serre{},
		&entities.Setting{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	return db
}

// Seed inserts the default serres and settings; existing rows are left alone.
func Seed(db *gorm.DB) error {
	for _, nom := range []string{"Serre 1", "Serre 2", "Serre 3", "Serre 4", "Serre 5"} {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.Serre{Nom: nom}).Error; err != nil {
			return err
		}
	}

	defaults := map[string][]string{
		"types_entretien": {"Arrosage", "Taille", "Fertilisation", "Désherbage",
			"Traitement bio", "Buttage", "Paillage", "Récolte", "Semis", "Tuteurage",
			"Éclaircissage", "Binage", "Élevage", "Autre"},
		"statuts_culture": {"En cours", "En attente", "Terminé", "Abandonné"},
		"categories_legume": {"Fruit", "Mini", "Feuille", "Racine", "Herbe",
			"Brassica", "Allium", "Légumineuse", "Élevage"},
		"unites_vente": {"kg", "pièce", "botte", "barquette", "sachet",
			"pot", "tête", "graine", "litre", "caisse", "douzaine"},
	}
	for k, v := range defaults {
		b, _ := json.Marshal(v)
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.Setting{Key: k, Value: string(b)}).Error; err != nil {
			return err
		}
	}
	return nil
}
