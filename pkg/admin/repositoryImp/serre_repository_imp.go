package repositoryImp

import (
	"zbalo/entities"
	"zbalo/pkg/admin/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type serreRepo struct{ db *gorm.DB }

func NewSerre(db *gorm.DB) repository.SerreRepository { return &serreRepo{db} }

func (r *serreRepo) Names() ([]string, error) {
	var out []string
	if err := r.db.Model(&entities.Serre{}).Order("nom ASC").Pluck("nom", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *serreRepo) Ensure(nom string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.Serre{Nom: nom}).Error
}

func (r *serreRepo) DeleteByName(nom string) error {
	return r.db.Where("nom = ?", nom).Delete(&entities.Serre{}).Error
}
